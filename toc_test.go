package helpcenter_test

import (
	"testing"

	"github.com/fwojciec/helpcenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	t.Run("hides toc with fewer than two headings", func(t *testing.T) {
		t.Parallel()

		assert.True(t, helpcenter.BuildTOC(nil).Hidden)
		assert.True(t, helpcenter.BuildTOC([]helpcenter.Heading{{Level: 2, Text: "Only"}}).Hidden)
	})

	t.Run("anchors headings without id by position", func(t *testing.T) {
		t.Parallel()

		toc := helpcenter.BuildTOC([]helpcenter.Heading{
			{Level: 2, Text: "Overview", ID: "overview"},
			{Level: 3, Text: " Details "},
			{Level: 2, Text: "Next steps"},
		})

		require.False(t, toc.Hidden)
		assert.Equal(t, []helpcenter.TOCEntry{
			{Level: 2, Title: "Overview", Anchor: "overview"},
			{Level: 3, Title: "Details", Anchor: "section-1"},
			{Level: 2, Title: "Next steps", Anchor: "section-2"},
		}, toc.Entries)
	})

	t.Run("classes entries by level", func(t *testing.T) {
		t.Parallel()

		toc := helpcenter.BuildTOC([]helpcenter.Heading{
			{Level: 2, Text: "A"},
			{Level: 3, Text: "B"},
		})

		assert.Equal(t, "toc-h2", toc.Entries[0].Class())
		assert.Equal(t, "toc-h3", toc.Entries[1].Class())
	})
}
