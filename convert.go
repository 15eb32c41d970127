package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoDocstring is returned by Convert when the docstring is missing.
// Callers decide whether to skip the entry or abort; the converter never
// fails on text that is merely odd.
var ErrNoDocstring = errors.New("no docstring provided")

// Kind selects how Convert renders the title of a documentation unit.
type Kind int

const (
	// ClassLike renders an anchored heading at the class depth. Used for
	// packages, modules, and types.
	ClassLike Kind = iota
	// FunctionLike renders a "Function: name" heading at the function
	// depth, without an anchor.
	FunctionLike
)

const (
	languagePython = "python"
	languageBash   = "bash"

	pythonPrompt       = ">>> "
	pythonContinuation = "... "
	shellPrompt        = "$ "

	promptWidth = len(pythonPrompt)

	tocIndent = "    "
)

var headingPattern = regexp.MustCompile(`^#+ `)

// Converter turns structured docstrings into GitHub-flavored Markdown.
// The zero value is not usable; construct one with NewConverter.
type Converter struct {
	sections map[string]struct{}
	levels   Levels
}

// NewConverter builds a Converter from the given configuration.
func NewConverter(cfg Config) *Converter {
	sections := make(map[string]struct{}, len(cfg.Sections))
	for _, s := range cfg.Sections {
		sections[s] = struct{}{}
	}
	return &Converter{sections: sections, levels: cfg.Levels}
}

// doctrim normalizes the indentation of a raw docstring. The first line
// is fully left-stripped; the common margin of the remaining non-blank
// lines is removed from every other line; leading and trailing blank
// lines are dropped. Tabs and spaces both count as one character of
// indentation and are never expanded.
func doctrim(docstr string) string {
	lines := strings.Split(docstr, "\n")
	margin := -1
	for _, line := range lines[1:] {
		stripped := strings.TrimLeft(line, " \t")
		if stripped == "" {
			continue
		}
		if indent := len(line) - len(stripped); margin == -1 || indent < margin {
			margin = indent
		}
	}
	lines[0] = strings.TrimLeft(lines[0], " \t")
	if margin > 0 {
		for i, line := range lines[1:] {
			lines[i+1] = cutIndent(line, margin)
		}
	}
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// unindent removes the common indentation from a block of lines. Unlike
// doctrim the first line gets no special treatment. A block with no
// non-empty lines is returned unchanged.
func unindent(lines []string) []string {
	margin := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if margin == -1 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = cutIndent(line, margin)
	}
	return out
}

func cutIndent(line string, n int) string {
	if len(line) <= n {
		return ""
	}
	return line[n:]
}

// codeBlock wraps lines in a fenced block tagged with a language.
func codeBlock(lines []string, language string) []string {
	block := make([]string, 0, len(lines)+2)
	block = append(block, "```"+language)
	block = append(block, lines...)
	return append(block, "```")
}

// sessionToMarkdown prepares an interactive-session block for fencing.
// When every line is a prompt or continuation line the four-character
// prompts are stripped; a single unprompted line (including an empty
// continuation line) keeps the whole block verbatim so interleaved
// commentary survives.
func sessionToMarkdown(lines []string) []string {
	lines = unindent(lines)
	for _, line := range lines {
		if strings.HasPrefix(line, pythonPrompt) || strings.HasPrefix(line, pythonContinuation) {
			continue
		}
		if line == ">>>" || line == "..." {
			continue
		}
		return lines
	}
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = cutIndent(line, promptWidth)
	}
	return stripped
}

func (c *Converter) formatCodeBlock(lines []string, language string) []string {
	if language == languagePython {
		lines = sessionToMarkdown(lines)
	}
	return codeBlock(lines, language)
}

func isHeading(line string) bool {
	return headingPattern.MatchString(line)
}

// splitHeading returns the level and title of a heading line.
func splitHeading(line string) (int, string) {
	marker, title, _ := strings.Cut(line, " ")
	return len(marker), title
}

// makeHeading renders a Markdown heading, clamping the level to 1.
func makeHeading(level int, title string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + title
}

// sectionLevel reports the heading depth for a recognized section label,
// or 0 when the line is not one. Matching is exact after stripping
// surrounding whitespace: "Args: extra" is prose, not a section.
func (c *Converter) sectionLevel(line string) int {
	if _, ok := c.sections[strings.TrimSpace(line)]; ok {
		return c.levels.Section
	}
	return 0
}

// splitIntro separates the prose run preceding the first recognized
// section label. The intro is emitted verbatim, without classification.
func (c *Converter) splitIntro(lines []string) (intro, body []string) {
	for i, line := range lines {
		if c.sectionLevel(line) > 0 {
			return lines[:i], lines[i:]
		}
	}
	return lines, nil
}

type scanState int

const (
	scanProse scanState = iota
	scanCode
)

// lineScanner classifies docstring lines in a single left-to-right pass.
// It holds the open code block, if any; closing is triggered by the
// blank line itself, never by lookahead.
type lineScanner struct {
	conv     *Converter
	state    scanState
	language string
	code     []string
	out      []string
}

func (s *lineScanner) feed(line string) {
	if s.state == scanCode {
		if line != "" {
			s.code = append(s.code, line)
			return
		}
		s.closeCode()
		s.out = append(s.out, line)
		return
	}
	stripped := strings.TrimLeft(line, " \t")
	switch {
	case strings.HasPrefix(stripped, pythonPrompt):
		s.openCode(languagePython, line)
	case strings.HasPrefix(stripped, shellPrompt):
		s.openCode(languageBash, line)
	case isHeading(line):
		// Re-render through the heading formatter; well-formed headings
		// pass through unchanged.
		level, title := splitHeading(line)
		s.out = append(s.out, makeHeading(level, title))
	case s.conv.sectionLevel(line) > 0:
		s.out = append(s.out, makeHeading(s.conv.levels.Section, line))
	default:
		s.out = append(s.out, line)
	}
}

func (s *lineScanner) openCode(language, line string) {
	s.state = scanCode
	s.language = language
	s.code = []string{line}
}

func (s *lineScanner) closeCode() {
	s.out = append(s.out, s.conv.formatCodeBlock(s.code, s.language)...)
	s.state = scanProse
	s.code = nil
}

// finish closes a trailing unterminated code block and returns the
// accumulated output.
func (s *lineScanner) finish() []string {
	if s.state == scanCode {
		s.closeCode()
	}
	return s.out
}

// Convert renders one docstring as a Markdown fragment: title heading,
// blank separator, intro prose, then the classified body. Output is
// deterministic for identical input, and every present docstring
// converts without error; only a missing docstring fails.
func (c *Converter) Convert(docstr, title string, kind Kind) (string, error) {
	if strings.TrimSpace(docstr) == "" {
		return "", fmt.Errorf("convert %q: %w", title, ErrNoDocstring)
	}
	lines := strings.Split(doctrim(docstr), "\n")
	intro, body := c.splitIntro(lines)

	var heading string
	switch kind {
	case FunctionLike:
		heading = makeHeading(c.levels.Function, "Function: "+title)
	default:
		heading = makeHeading(c.levels.Class, anchorTag(title)+title)
	}

	out := make([]string, 0, len(lines)+4)
	out = append(out, heading, "")
	out = append(out, intro...)
	scanner := lineScanner{conv: c}
	for _, line := range body {
		scanner.feed(line)
	}
	out = append(out, scanner.finish()...)
	return strings.Join(out, "\n"), nil
}

// anchorTag renders the HTML anchor prefixed to class-style titles so
// table-of-contents links resolve. Function-style titles get none.
func anchorTag(title string) string {
	return fmt.Sprintf("<a name=%q></a>", strings.ToLower(title))
}

// TOCEntry is one line of a generated table of contents.
type TOCEntry struct {
	Depth int
	Title string
}

// makeTOC renders a nested bullet list of anchor links, one per entry,
// indented by each entry's depth. Empty input yields an empty string.
// Duplicate titles produce duplicate anchors; no collision handling.
func makeTOC(entries []TOCEntry) string {
	if len(entries) == 0 {
		return ""
	}
	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		bullet := fmt.Sprintf("- [%s](#%s)", e.Title, anchorSlug(e.Title))
		refs = append(refs, strings.Repeat(tocIndent, e.Depth)+bullet)
	}
	return strings.Join(refs, "\n")
}

// anchorSlug lowercases the title, replaces spaces with hyphens, and
// removes question marks. No other punctuation handling.
func anchorSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ReplaceAll(slug, "?", "")
}

// findSections returns a ToC entry for every heading line in the block.
func findSections(lines []string) []TOCEntry {
	var entries []TOCEntry
	for _, line := range lines {
		if isHeading(line) {
			level, title := splitHeading(line)
			entries = append(entries, TOCEntry{Depth: level, Title: title})
		}
	}
	return entries
}
