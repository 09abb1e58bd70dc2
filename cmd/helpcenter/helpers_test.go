package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/helpcenter"
	main "github.com/fwojciec/helpcenter/cmd/helpcenter"
	"github.com/fwojciec/helpcenter/goquery"
	"github.com/fwojciec/helpcenter/lipgloss"
	"github.com/fwojciec/helpcenter/mock"
	"github.com/stretchr/testify/require"
)

// testDeps returns dependencies over idx with a real scanner, a plain
// renderer and a fetcher that fails unless replaced.
func testDeps(idx *helpcenter.Index) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:   main.DefaultConfig(),
		Index:    idx,
		Scanner:  goquery.NewScanner(),
		Renderer: lipgloss.NewRenderer(false),
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", helpcenter.Errorf(helpcenter.ENOTFOUND, "unexpected fetch %s", url)
			},
		},
	}
	return deps, stdout, stderr
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func smallIndex() *helpcenter.Index {
	return helpcenter.NewIndex([]helpcenter.Record{
		{Title: "Creating a Study", Reference: "ref1", Category: "Study Setup"},
		{Title: "Configuring the AI Moderator", Reference: "ref2", Category: "Study Settings"},
		{Title: "Billing and Plans", Reference: "ref3", Category: "Billing"},
	})
}

const homepageHTML = `<html><body>
<div class="topic-card">
  <h3><a href="article_1.html">Creating a Study</a></h3>
  <span class="topic-meta">Study Setup</span>
</div>
<ul>
  <li class="article-item"><a href="article_2.html">Billing and Plans</a><span class="article-meta">Billing</span></li>
</ul>
</body></html>`

const categoryHTML = `<html><body>
<ul>
  <li class="article-item"><a href="article_2.html">Billing overview</a><span class="article-meta">Billing</span></li>
  <li class="article-item"><a href="article_4.html">Team Roles</a><span class="article-meta">Organization &amp; Team</span></li>
</ul>
</body></html>`
