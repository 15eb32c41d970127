package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHeadings(t *testing.T) {
	t.Parallel()

	t.Run("fenced hash lines are not headings", func(t *testing.T) {
		t.Parallel()

		markdown := "## Real\n\n```bash\n# just a comment\n```\n\n#### Deeper\n"

		got := extractHeadings(markdown)

		assert.Equal(t, []TOCEntry{{Depth: 2, Title: "Real"}, {Depth: 4, Title: "Deeper"}}, got)
	})

	t.Run("anchor tags are excluded from titles", func(t *testing.T) {
		t.Parallel()

		got := extractHeadings("## <a name=\"widget\"></a>Widget\n")

		assert.Equal(t, []TOCEntry{{Depth: 2, Title: "Widget"}}, got)
	})

	t.Run("no headings yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extractHeadings("just prose\n"))
	})
}

func TestNestEntries(t *testing.T) {
	t.Parallel()

	got := nestEntries([]TOCEntry{{Depth: 2, Title: "a"}, {Depth: 4, Title: "b"}, {Depth: 3, Title: "c"}})

	assert.Equal(t, []TOCEntry{{Depth: 0, Title: "a"}, {Depth: 2, Title: "b"}, {Depth: 1, Title: "c"}}, got)
}

func TestSummaryText(t *testing.T) {
	t.Parallel()

	t.Run("keeps the first sentence", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Does X.", summaryText("Does X. And more.\nEven more."))
	})

	t.Run("collapses newlines when no sentence break exists", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "spans two lines", summaryText("spans\ntwo lines"))
	})

	t.Run("empty doc gives empty summary", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", summaryText("  \n"))
	})
}

func TestBulletLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "- `type Greeter` — Makes greetings.", bulletLine("type Greeter", "Makes greetings."))
	assert.Equal(t, "- `Answer`", bulletLine("Answer", ""))
}
