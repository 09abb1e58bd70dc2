package main_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/helpcenter"
	main "github.com/fwojciec/helpcenter/cmd/helpcenter"
	"github.com/fwojciec/helpcenter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints numbered matches with markers", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(smallIndex())
		cmd := &main.SearchCmd{Query: "stud"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 results")
		assert.Contains(t, stdout.String(), " 1. Creating a [Stud]y")
		assert.Contains(t, stdout.String(), "ref2")
		assert.NotContains(t, stdout.String(), "ref3")
	})

	t.Run("prints hint for short query", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(smallIndex())
		cmd := &main.SearchCmd{Query: " s "}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Type at least 2 characters")
	})

	t.Run("prints no results message", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(smallIndex())
		cmd := &main.SearchCmd{Query: "zebra"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "No articles found for \"zebra\"\n", stdout.String())
	})

	t.Run("caps results unless all is set", func(t *testing.T) {
		t.Parallel()

		idx := helpcenter.NewIndex(helpcenter.DefaultCatalog())

		deps, stdout, _ := testDeps(idx)
		require.NoError(t, (&main.SearchCmd{Query: "userology", JSON: true}).Run(deps))
		var capped helpcenter.Outcome
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &capped))
		assert.Len(t, capped.Results, helpcenter.MaxResults)

		deps, stdout, _ = testDeps(idx)
		require.NoError(t, (&main.SearchCmd{Query: "userology", JSON: true, All: true}).Run(deps))
		var all helpcenter.Outcome
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &all))
		assert.Greater(t, len(all.Results), helpcenter.MaxResults)
	})

	t.Run("builds the index from scanned pages", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(smallIndex())
		page := writeTempFile(t, "index.html", homepageHTML)
		cmd := &main.SearchCmd{Query: "billing", Scan: []string{page}, JSON: true}

		require.NoError(t, cmd.Run(deps))

		var out helpcenter.Outcome
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		require.Len(t, out.Results, 1)
		assert.Equal(t, "article_2.html", out.Results[0].Reference)
	})

	t.Run("fetches remote pages", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(smallIndex())
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://help.example.com/", url)
				return homepageHTML, nil
			},
		}
		cmd := &main.SearchCmd{Query: "creating", Scan: []string{"https://help.example.com/"}}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "article_1.html")
	})

	t.Run("reports missing scan file", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(smallIndex())
		cmd := &main.SearchCmd{Query: "billing", Scan: []string{"/nonexistent/page.html"}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.True(t, strings.HasPrefix(stderr.String(), "error:"))
	})
}
