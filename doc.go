// # doc2md
//
// `doc2md` is a lightweight docstring-to-Markdown converter. It takes
// structured docstrings — free-form text with recognized section labels such
// as `Args:` and `Returns:`, interactive-session examples, and heading lines —
// and renders GitHub-flavored Markdown suitable for small-project `README.md`
// files.
//
// Key capabilities:
//
//   - harvest doc comments from a Go package (via `go/doc` and
//     `golang.org/x/tools/go/packages`) and emit one Markdown fragment per
//     documented symbol.
//   - promote recognized section labels to headings at configurable depths
//     (class 2, function 3, section 4 by default).
//   - fence `>>> ` interactive sessions as `python` and `$ ` command lines as
//     `bash`; when every line of a session is prompted, the prompts are
//     stripped so the fenced block reads as plain code.
//   - build a table of contents from the rendered headings, linked through
//     HTML anchors on class-style titles.
//   - convert a single raw docstring from a file or stdin with `--file`,
//     without any Go introspection.
//   - ship a Cobra-powered CLI with shell completion and a `gen-docs` helper
//     for publishing the CLI reference itself.
//
// ## Usage
//
//	doc2md [flags] [package]
//
// Examples:
//
//   - Render the current package and print to stdout:
//
//     doc2md
//
//   - Write a package's documentation to a README:
//
//     doc2md -o README.md ./mypkg
//
//   - Convert one raw docstring:
//
//     doc2md --file widget.txt --title Widget --kind class
//
// ## Supported Flags
//
//   - `-o FILE`: write Markdown to `FILE` (stdout when omitted).
//   - `--file PATH`: convert a raw docstring from `PATH` (`-` for stdin)
//     instead of loading a package; requires `--title`.
//   - `--title TITLE`: document title (defaults to `package <name>`).
//   - `--kind class|function`: how to render the title in `--file` mode.
//   - `--api-title TITLE`: heading for the per-symbol section (empty to omit).
//   - `--config FILE`: YAML file overriding heading depths and the recognized
//     section-label set.
//   - `--toc`: include a table of contents (default true).
//   - `-u`: include unexported symbols.
//
// ## Configuration
//
// Heading depths and section labels are configuration, not constants:
//
//	levels:
//	  class: 2
//	  function: 3
//	  section: 4
//	sections:
//	  - "Args:"
//	  - "Returns:"
//
// Label matching is exact and case-sensitive against the fully stripped line;
// `Args: extra text` stays prose.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	doc2md completion bash        # bash
//	doc2md completion zsh         # zsh
//	doc2md completion fish | source
//	doc2md completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `doc2md` can generate Markdown for each CLI command via `gen-docs`:
//
//	doc2md gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
