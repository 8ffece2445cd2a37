package vtscreen

import (
	"fmt"
	"strconv"
)

// CursorTracker tracks the cursor position of a real terminal and emits the
// shortest byte sequence that moves it to a target. It does not perform I/O;
// callers write the returned bytes themselves and report printed cells via
// Advance.
type CursorTracker struct {
	row int
	col int
}

// NewCursorTracker creates a tracker whose cursor is at (row, col). Pass
// negative coordinates when the position is unknown; the first move is then
// forced to be absolute.
func NewCursorTracker(row, col int) *CursorTracker {
	return &CursorTracker{row: row, col: col}
}

// Pos returns the tracked position.
func (c *CursorTracker) Pos() (row, col int) {
	return c.row, c.col
}

// Advance shifts the tracked column by n printed cells without emitting
// bytes. The tracker never wraps: callers must issue explicit motion before
// printing anything that would exceed the line.
func (c *CursorTracker) Advance(n int) {
	c.col += n
}

// MoveTo returns the shortest sequence that moves the cursor to (row, col)
// and updates the tracked position. Ties between equally short strategies
// resolve toward the simpler one (home, CR, LF, relative, CR+relative,
// absolute, in that order).
func (c *CursorTracker) MoveTo(row, col int) []byte {
	defer func() {
		c.row, c.col = row, col
	}()

	if c.row < 0 || c.col < 0 {
		return absoluteMove(row, col)
	}
	if row == c.row && col == c.col {
		return nil
	}

	var best []byte
	consider := func(seq []byte) {
		if seq != nil && (best == nil || len(seq) < len(best)) {
			best = seq
		}
	}

	if row == 0 && col == 0 {
		consider([]byte("\x1b[H"))
	}
	if row == c.row && col == 0 {
		consider([]byte("\r"))
	}
	if row == c.row+1 && c.col == 0 && col == 0 {
		consider([]byte("\n"))
	}
	consider(relativeMove(row-c.row, col-c.col))
	if cr := relativeMove(row-c.row, col); cr != nil || col == 0 {
		consider(append([]byte("\r"), cr...))
	}
	consider(absoluteMove(row, col))

	return best
}

// relativeMove emits vertical then horizontal relative motion, omitting
// zero-distance axes and the count 1. Returns nil when no motion is needed.
func relativeMove(dRow, dCol int) []byte {
	if dRow == 0 && dCol == 0 {
		return nil
	}
	var seq []byte
	seq = appendAxis(seq, dRow, 'B', 'A')
	seq = appendAxis(seq, dCol, 'C', 'D')
	return seq
}

// appendAxis appends one CSI motion for a signed distance: pos for positive
// (down/right), neg for negative (up/left).
func appendAxis(seq []byte, d int, pos, neg byte) []byte {
	if d == 0 {
		return seq
	}
	cmd := pos
	if d < 0 {
		cmd = neg
		d = -d
	}
	seq = append(seq, esc, '[')
	if d != 1 {
		seq = strconv.AppendInt(seq, int64(d), 10)
	}
	return append(seq, cmd)
}

// absoluteMove emits 1-based absolute addressing.
func absoluteMove(row, col int) []byte {
	return fmt.Appendf(nil, "\x1b[%d;%dH", row+1, col+1)
}
