package main

import (
	"fmt"
	"go/doc"
	"io"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownRenderer assembles the document for one Go package: headline
// fragment, symbol summary, table of contents, and one converted
// fragment per documented symbol. Every doc comment flows through the
// docstring converter; symbols without one are omitted silently.
type markdownRenderer struct {
	conv *Converter
	opts options
	pkg  *doc.Package
}

func (r *markdownRenderer) render(w io.Writer) error {
	title := r.opts.title
	if title == "" {
		title = "package " + r.pkg.Name
	}
	head, err := r.conv.Convert(r.pkg.Doc, title, ClassLike)
	if err != nil {
		// Undocumented package: keep the anchored headline so ToC links
		// still resolve.
		head = makeHeading(r.conv.levels.Class, anchorTag(title)+title)
	}

	rest := make([]string, 0, 8)
	if summary := r.summaryList(); summary != "" {
		rest = append(rest, summary)
	}
	api := r.apiFragments()
	if len(api) > 0 && r.opts.apiTitle != "" {
		rest = append(rest, makeHeading(r.conv.levels.Class, r.opts.apiTitle))
	}
	rest = append(rest, api...)

	parts := append([]string{head}, rest...)
	if r.opts.withTOC {
		entries := nestEntries(extractHeadings(strings.Join(parts, "\n\n")))
		if toc := makeTOC(entries); toc != "" {
			parts = append([]string{head, toc}, rest...)
		}
	}
	_, err = io.WriteString(w, strings.Join(parts, "\n\n")+"\n")
	return err
}

// summaryList renders one sorted bullet per package-level symbol with
// the first sentence of its doc comment.
func (r *markdownRenderer) summaryList() string {
	var entries []string
	for _, v := range r.pkg.Consts {
		entries = append(entries, bulletLine(valueTitle(v), summaryText(v.Doc)))
	}
	for _, v := range r.pkg.Vars {
		entries = append(entries, bulletLine(valueTitle(v), summaryText(v.Doc)))
	}
	for _, f := range r.pkg.Funcs {
		entries = append(entries, bulletLine(f.Name, summaryText(f.Doc)))
	}
	for _, t := range r.pkg.Types {
		entries = append(entries, bulletLine("type "+t.Name, summaryText(t.Doc)))
	}
	if len(entries) == 0 {
		return ""
	}
	sort.Strings(entries)
	return strings.Join(entries, "\n")
}

func (r *markdownRenderer) apiFragments() []string {
	var frags []string
	add := func(docstr, name string, kind Kind) {
		frag, err := r.conv.Convert(docstr, name, kind)
		if err != nil {
			return
		}
		frags = append(frags, frag)
	}
	for _, t := range r.pkg.Types {
		add(t.Doc, t.Name, ClassLike)
		for _, f := range t.Funcs {
			add(f.Doc, f.Name, FunctionLike)
		}
		for _, m := range t.Methods {
			add(m.Doc, t.Name+"."+m.Name, FunctionLike)
		}
	}
	for _, f := range r.pkg.Funcs {
		add(f.Doc, f.Name, FunctionLike)
	}
	return frags
}

// extractHeadings parses rendered Markdown and returns one ToC entry
// per heading. Walking the parsed document instead of scanning lines
// keeps '#' lines inside fenced code blocks out of the contents.
func extractHeadings(markdown string) []TOCEntry {
	src := []byte(markdown)
	root := goldmark.New().Parser().Parse(text.NewReader(src))
	var entries []TOCEntry
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		entries = append(entries, TOCEntry{Depth: h.Level, Title: string(h.Text(src))})
	}
	return entries
}

// nestEntries rebases heading levels so the shallowest heading sits at
// depth 0 and deeper headings indent relative to it.
func nestEntries(entries []TOCEntry) []TOCEntry {
	if len(entries) == 0 {
		return entries
	}
	min := entries[0].Depth
	for _, e := range entries[1:] {
		if e.Depth < min {
			min = e.Depth
		}
	}
	out := make([]TOCEntry, len(entries))
	for i, e := range entries {
		out[i] = TOCEntry{Depth: e.Depth - min, Title: e.Title}
	}
	return out
}

func valueTitle(v *doc.Value) string {
	return strings.Join(v.Names, ", ")
}

// summaryText collapses a doc comment to its first sentence.
func summaryText(docstr string) string {
	md := doctrim(docstr)
	if md == "" {
		return ""
	}
	md = strings.ReplaceAll(md, "\n", " ")
	if idx := strings.Index(md, ". "); idx >= 0 {
		return strings.TrimSpace(md[:idx+1])
	}
	return strings.TrimSpace(md)
}

func bulletLine(signature, summary string) string {
	if summary == "" {
		return fmt.Sprintf("- `%s`", signature)
	}
	return fmt.Sprintf("- `%s` — %s", signature, summary)
}
