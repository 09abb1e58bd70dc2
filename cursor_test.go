package helpcenter_test

import (
	"testing"

	"github.com/fwojciec/helpcenter"
	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	t.Run("starts with no active row", func(t *testing.T) {
		t.Parallel()

		c := helpcenter.NewCursor(3)

		assert.Equal(t, -1, c.Active())
		assert.Equal(t, 0, c.Target())
	})

	t.Run("next wraps to the first row", func(t *testing.T) {
		t.Parallel()

		c := helpcenter.NewCursor(3)

		assert.Equal(t, 0, c.Next())
		assert.Equal(t, 1, c.Next())
		assert.Equal(t, 2, c.Next())
		assert.Equal(t, 0, c.Next())
	})

	t.Run("prev from no row goes to the last row", func(t *testing.T) {
		t.Parallel()

		c := helpcenter.NewCursor(3)

		assert.Equal(t, 2, c.Prev())
		assert.Equal(t, 1, c.Prev())
		assert.Equal(t, 0, c.Prev())
		assert.Equal(t, 2, c.Prev())
	})

	t.Run("target follows the active row", func(t *testing.T) {
		t.Parallel()

		c := helpcenter.NewCursor(3)
		c.Next()
		c.Next()

		assert.Equal(t, 1, c.Target())
	})

	t.Run("reset clears the active row", func(t *testing.T) {
		t.Parallel()

		c := helpcenter.NewCursor(3)
		c.Next()
		c.Reset(5)

		assert.Equal(t, -1, c.Active())
		assert.Equal(t, 4, c.Prev())
	})

	t.Run("empty list has no target", func(t *testing.T) {
		t.Parallel()

		c := helpcenter.NewCursor(0)

		assert.Equal(t, -1, c.Next())
		assert.Equal(t, -1, c.Prev())
		assert.Equal(t, -1, c.Target())
	})
}
