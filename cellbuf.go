package vtscreen

import (
	"bytes"
	"hash/fnv"
)

// Cell is one rendered grid position: a grapheme cluster plus its style.
// The empty cluster marks the continuation half of a wide cluster.
type Cell struct {
	Cluster string
	Style   Style
}

// BlankCell is the value of a cleared cell.
var BlankCell = Cell{Cluster: blankCluster}

// CellBuffer projects a screen's viewport into a unified per-cell grid and
// keeps a second buffer of the previously rendered state, so frames can be
// diffed cell by cell. The usual cycle per frame is SwapBuffers, Reload,
// DiffRender.
type CellBuffer struct {
	rows  int
	cols  int
	front [][]Cell
	back  [][]Cell
}

// Snapshot projects the viewport into a fresh CellBuffer. The back buffer
// starts blank, so the first DiffRender paints the full frame.
func (s *Screen) Snapshot() *CellBuffer {
	b := &CellBuffer{
		rows:  s.height,
		cols:  s.width,
		front: blankCells(s.height, s.width),
		back:  blankCells(s.height, s.width),
	}
	b.Reload(s)
	return b
}

func blankCells(rows, cols int) [][]Cell {
	cells := make([][]Cell, rows)
	for r := range cells {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = BlankCell
		}
		cells[r] = row
	}
	return cells
}

// Rows returns the buffer height.
func (b *CellBuffer) Rows() int {
	return b.rows
}

// Cols returns the buffer width.
func (b *CellBuffer) Cols() int {
	return b.cols
}

// Cell returns the current cell at (row, col), BlankCell when out of bounds.
func (b *CellBuffer) Cell(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return BlankCell
	}
	return b.front[row][col]
}

// Reload refills the current buffer from the screen's viewport. The screen
// must have the dimensions this buffer was created with.
func (b *CellBuffer) Reload(s *Screen) {
	rows := minInt(b.rows, s.height)
	cols := minInt(b.cols, s.width)
	for v := 0; v < rows; v++ {
		row := s.linesOff + v
		for col := 0; col < cols; col++ {
			b.front[v][col] = Cell{
				Cluster: s.text.cluster(row, col),
				Style:   s.styles.at(row, col),
			}
		}
	}
}

// SwapBuffers exchanges the current and previous buffers. Call before
// Reload so the last rendered frame becomes the diff base.
func (b *CellBuffer) SwapBuffers() {
	b.front, b.back = b.back, b.front
}

// RowEquals reports whether row holds identical cells in this buffer and in
// other.
func (b *CellBuffer) RowEquals(row int, other *CellBuffer) bool {
	if row < 0 || row >= b.rows || other == nil || row >= other.rows || b.cols != other.cols {
		return false
	}
	for col := 0; col < b.cols; col++ {
		if b.front[row][col] != other.front[row][col] {
			return false
		}
	}
	return true
}

// RowHash returns an FNV-1a fingerprint of row's cells (clusters and
// styles), usable for cheap cross-frame row comparison.
func (b *CellBuffer) RowHash(row int) uint64 {
	h := fnv.New64a()
	if row < 0 || row >= b.rows {
		return h.Sum64()
	}
	var scratch [16]byte
	for col := 0; col < b.cols; col++ {
		cell := b.front[row][col]
		h.Write([]byte(cell.Cluster))
		h.Write(encodeStyle(scratch[:0], cell.Style))
	}
	return h.Sum64()
}

// encodeStyle appends a fixed-shape byte encoding of a style.
func encodeStyle(dst []byte, st Style) []byte {
	dst = append(dst, byte(st.Flags), byte(st.Flags>>8), byte(st.FgBasic), byte(st.BgBasic))
	dst = appendExt(dst, st.FgExt)
	return appendExt(dst, st.BgExt)
}

func appendExt(dst []byte, ext ExtColor) []byte {
	switch c := ext.(type) {
	case Palette256:
		return append(dst, 1, byte(c), 0, 0)
	case RGB:
		return append(dst, 2, c.R, c.G, c.B)
	default:
		return append(dst, 0, 0, 0, 0)
	}
}

// DiffRender returns the bytes that update a terminal showing the previous
// buffer to the current one, touching only cells whose cluster or style
// differs. Cursor motion uses the shortest-move strategy and styles change
// through minimal SGR deltas. baseRow and baseCol offset the output inside a
// larger display. A trailing SGR reset is emitted if any style is left
// active.
func (b *CellBuffer) DiffRender(baseRow, baseCol int) []byte {
	var buf bytes.Buffer
	ct := NewCursorTracker(-1, -1)
	st := NewStyleTracker()

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			cell := b.front[row][col]
			if cell == b.back[row][col] {
				continue
			}
			if cell.Cluster == continuation {
				// Covered by the wide cluster immediately to the left.
				continue
			}
			buf.Write(ct.MoveTo(baseRow+row, baseCol+col))
			buf.Write(st.Transition(cell.Style))
			buf.WriteString(cell.Cluster)
			ct.Advance(clusterWidth(cell.Cluster))
		}
	}
	if !st.Current().IsZero() {
		buf.WriteString("\x1b[0m")
	}
	return buf.Bytes()
}
