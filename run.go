package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/doc"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

type options struct {
	title      string
	kindName   string
	filePath   string
	outputPath string
	apiTitle   string
	configPath string
	withTOC    bool
	unexported bool
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := app.opts
	cfg := DefaultConfig()
	if opts.configPath != "" {
		loaded, err := LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	conv := NewConverter(cfg)

	if opts.filePath != "" {
		if len(positionals) > 0 {
			return errors.New("--file cannot be combined with a package argument")
		}
		return app.convertFile(conv, opts)
	}
	if len(positionals) > 1 {
		return errors.New("too many positional arguments")
	}
	pattern := "."
	if len(positionals) == 1 {
		pattern = positionals[0]
	}
	pkgInfo, err := loadPackage(ctx, pattern)
	if err != nil {
		return err
	}
	docPkg, err := buildDocPackage(pkgInfo, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	renderer := markdownRenderer{conv: conv, opts: opts, pkg: docPkg}
	if err := renderer.render(&buf); err != nil {
		return err
	}
	return writeOutput(opts.outputPath, app.stdout, buf.Bytes())
}

// convertFile runs one raw docstring through the converter without any
// Go introspection. The docstring comes from a file, or stdin for "-".
func (app *cliApp) convertFile(conv *Converter, opts options) error {
	if opts.title == "" {
		return errors.New("--file requires --title")
	}
	kind, err := parseKind(opts.kindName)
	if err != nil {
		return err
	}
	docstr, err := readInput(opts.filePath)
	if err != nil {
		return err
	}
	frag, err := conv.Convert(docstr, opts.title, kind)
	if err != nil {
		return err
	}
	return writeOutput(opts.outputPath, app.stdout, []byte(frag+"\n"))
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func parseKind(name string) (Kind, error) {
	switch name {
	case "", "class", "module":
		return ClassLike, nil
	case "function", "func":
		return FunctionLike, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (expected class or function)", name)
	}
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var legacyLongFlagSet = map[string]struct{}{
	"file":       {},
	"title":      {},
	"kind":       {},
	"toc":        {},
	"api-title":  {},
	"config":     {},
	"output":     {},
	"unexported": {},
}

// normalizeLegacyArgs rewrites single-dash long flags (-title, -file)
// into the double-dash form so go-doc-style invocations keep working.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, arg)
			converted = append(converted, args[i+1:]...)
			if i != len(args)-1 {
				modified = true
			}
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || arg == "-" {
			converted = append(converted, arg)
			continue
		}
		if len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		if idx := strings.Index(arg, "="); idx > 0 {
			name := arg[1:idx]
			if _, ok := legacyLongFlagSet[name]; ok {
				converted = append(converted, "--"+name+arg[idx:])
				modified = true
				continue
			}
		}
		name := arg[1:]
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified && len(converted) == len(args) {
		return args
	}
	return converted
}

func buildDocPackage(pkgInfo *packages.Package, opts options) (*doc.Package, error) {
	mode := doc.Mode(0)
	if opts.unexported {
		mode |= doc.AllDecls | doc.AllMethods
	}
	return doc.NewFromFiles(pkgInfo.Fset, pkgInfo.Syntax, pkgInfo.PkgPath, mode)
}

func loadPackage(ctx context.Context, pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedModule | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages matched %q", pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%s", pkg.Errors[0])
	}
	return pkg, nil
}
