package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/helpcenter/cmd/helpcenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMain runs the CLI end to end with a database at dbPath.
func runMain(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	cfg := main.DefaultConfig()
	cfg.DBPath = dbPath

	m := main.NewMain()
	m.Config = cfg
	m.IsTerminal = func() bool { return false }

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, ":memory:")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout, "Usage: helpcenter")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, ":memory:", "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout, "search")
		assert.Contains(t, stdout, "feedback-summary")
	})

	t.Run("rejects unknown command", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t, ":memory:", "frobnicate")

		require.Error(t, err)
	})

	t.Run("searches the built-in catalog", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, ":memory:", "search", "billing")

		require.NoError(t, err)
		assert.Contains(t, stdout, "1 result\n")
		assert.Contains(t, stdout, "Userology [Billing] and Plans")
		assert.Contains(t, stdout, "article_25562500326813.html")
	})

	t.Run("searches a catalog file", func(t *testing.T) {
		t.Parallel()

		catalog := writeTempFile(t, "catalog.yaml", `
- title: Resetting your password
  category: Account
  reference: article_1.html
- title: Changing your email
  category: Account
  reference: article_2.html
`)

		stdout, _, err := runMain(t, ":memory:", "--catalog", catalog, "search", "your")

		require.NoError(t, err)
		assert.Contains(t, stdout, "2 results\n")
	})

	t.Run("reports invalid catalog file", func(t *testing.T) {
		t.Parallel()

		catalog := writeTempFile(t, "catalog.yaml", "- title: No reference\n")

		_, stderr, err := runMain(t, ":memory:", "--catalog", catalog, "list")

		require.Error(t, err)
		assert.Contains(t, stderr, "Hint:")
	})

	t.Run("persists theme across runs", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "helpcenter.db")

		stdout, _, err := runMain(t, dbPath, "theme")
		require.NoError(t, err)
		assert.Equal(t, "light\n", stdout)

		_, _, err = runMain(t, dbPath, "theme", "toggle")
		require.NoError(t, err)

		stdout, _, err = runMain(t, dbPath, "theme", "get")
		require.NoError(t, err)
		assert.Equal(t, "dark\n", stdout)
	})

	t.Run("rejects unsupported theme argument", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t, ":memory:", "theme", "set", "sepia")

		require.Error(t, err)
	})

	t.Run("records and summarizes feedback", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "nested", "helpcenter.db")

		_, _, err := runMain(t, dbPath, "feedback", "article_1.html", "yes")
		require.NoError(t, err)
		_, _, err = runMain(t, dbPath, "feedback", "article_1.html", "no", "--comment", "Needs screenshots")
		require.NoError(t, err)

		_, stderr, err := runMain(t, dbPath, "feedback", "article_1.html", "no", "--comment", "needs  SCREENSHOTS")
		require.Error(t, err)
		assert.Contains(t, stderr, "error:")

		stdout, _, err := runMain(t, dbPath, "feedback-summary", "article_1.html", "--comments", "5")
		require.NoError(t, err)
		assert.Contains(t, stdout, "article_1.html: 1 helpful, 1 not helpful\n")
		assert.Contains(t, stdout, "Needs screenshots")
	})
}
