package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
doc2md converts structured docstrings into GitHub-flavored Markdown. Point it at a
Go package and it harvests every doc comment, recognizes section labels like Args:
and Returns:, promotes them to headings, and fences interactive examples
(stripping >>> prompts when a block is pure code). The generated document carries
a table of contents built from the rendered headings.

  • Render a package:            doc2md ./mypkg
  • Convert one raw docstring:   doc2md --file doc.txt --title Widget --kind class
  • Tune heading depths/labels:  doc2md --config doc2md.yaml ./mypkg

Shell completion and CLI reference docs are available via the completion and
gen-docs subcommands.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "doc2md [flags] [package]",
		Short:         "Convert structured docstrings to Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write output Markdown to file instead of stdout")
	flags.StringVar(&app.opts.filePath, "file", "", "convert a raw docstring from a file (\"-\" for stdin) instead of a package")
	flags.StringVar(&app.opts.title, "title", "", "title for the generated document (default: package <name>)")
	flags.StringVar(&app.opts.kindName, "kind", "class", "docstring kind for --file mode: class or function")
	flags.StringVar(&app.opts.apiTitle, "api-title", "API", "heading for the per-symbol section (empty to omit)")
	flags.StringVar(&app.opts.configPath, "config", "", "YAML config overriding heading depths and section labels")
	flags.BoolVar(&app.opts.withTOC, "toc", true, "include a table of contents")
	flags.BoolVarP(&app.opts.unexported, "unexported", "u", false, "include unexported symbols")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for doc2md.

The output should be evaluated by your shell. For example:

  # bash
  doc2md completion bash > /usr/local/etc/bash_completion.d/doc2md

  # zsh
  doc2md completion zsh > "${fpath[1]}/_doc2md"

  # fish
  doc2md completion fish | source

  # PowerShell
  doc2md completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  doc2md gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
