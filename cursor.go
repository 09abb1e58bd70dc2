package helpcenter

// Cursor tracks the keyboard-highlighted row of a result list. Arrow keys
// move it with wraparound; Enter opens the active row, or the first row when
// none is active.
type Cursor struct {
	n      int
	active int
}

// NewCursor returns a cursor over n rows with no active row.
func NewCursor(n int) *Cursor {
	return &Cursor{n: n, active: -1}
}

// Reset sets the number of rows and clears the active row. Called whenever
// the result list is re-rendered.
func (c *Cursor) Reset(n int) {
	c.n = n
	c.active = -1
}

// Active returns the active row, or -1 when no row is active.
func (c *Cursor) Active() int {
	return c.active
}

// Next moves down one row, wrapping from the last row to the first.
func (c *Cursor) Next() int {
	if c.n == 0 {
		c.active = -1
		return c.active
	}
	c.active = (c.active + 1) % c.n
	return c.active
}

// Prev moves up one row, wrapping from the first row (or no row) to the last.
func (c *Cursor) Prev() int {
	if c.n == 0 {
		c.active = -1
		return c.active
	}
	if c.active <= 0 {
		c.active = c.n - 1
	} else {
		c.active--
	}
	return c.active
}

// Target returns the row Enter should open: the active row, else the first
// row, else -1 when the list is empty.
func (c *Cursor) Target() int {
	if c.active >= 0 && c.active < c.n {
		return c.active
	}
	if c.n > 0 {
		return 0
	}
	return -1
}
