package vtscreen

// blankCluster is the cluster stored in a cleared or padded cell.
const blankCluster = " "

// continuation marks the right half of a wide cluster. The primary cell sits
// immediately to its left.
const continuation = ""

// textGrid is the printable half of the screen: row-major storage of
// grapheme clusters. Rows grow on demand and may be shorter than the screen
// width; trailing cells are implicitly blank.
type textGrid struct {
	rows [][]string
}

func newTextGrid() *textGrid {
	return &textGrid{}
}

func (g *textGrid) numRows() int {
	return len(g.rows)
}

// ensureRow grows the grid so that row exists.
func (g *textGrid) ensureRow(row int) {
	for len(g.rows) <= row {
		g.rows = append(g.rows, nil)
	}
}

// rowLen returns the number of stored cells in row, 0 if the row does not
// exist yet.
func (g *textGrid) rowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// cluster returns the stored cluster at (row, col). Cells beyond the stored
// row length are blank.
func (g *textGrid) cluster(row, col int) string {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return blankCluster
	}
	return g.rows[row][col]
}

// isContinuation returns true if (row, col) stores the right half of a wide
// cluster.
func (g *textGrid) isContinuation(row, col int) bool {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return false
	}
	return g.rows[row][col] == continuation
}

// write stores a cluster at (row, col), with a continuation cell at col+1
// when wide is true. Overwriting either half of an existing wide cluster
// blanks the orphaned half.
func (g *textGrid) write(row, col int, cluster string, wide bool) {
	g.ensureRow(row)
	end := col + 1
	if wide {
		end = col + 2
	}
	r := g.rows[row]
	for len(r) < end {
		r = append(r, blankCluster)
	}

	splitLeft := r[col] == continuation && col > 0

	r[col] = cluster
	if wide {
		r[col+1] = continuation
	}

	if splitLeft {
		r[col-1] = blankCluster
	}
	if end < len(r) && r[end] == continuation {
		r[end] = blankCluster
	}
	g.rows[row] = r
}

// fill sets cells [from, to) of row to blanks, growing the row to to.
// Wide clusters split at either boundary leave a blank half behind.
func (g *textGrid) fill(row, from, to int) {
	if to <= from {
		return
	}
	g.ensureRow(row)
	r := g.rows[row]
	for len(r) < to {
		r = append(r, blankCluster)
	}
	splitLeft := r[from] == continuation && from > 0
	for i := from; i < to; i++ {
		r[i] = blankCluster
	}
	if splitLeft {
		r[from-1] = blankCluster
	}
	if to < len(r) && r[to] == continuation {
		r[to] = blankCluster
	}
	g.rows[row] = r
}

// truncate drops the cells of row at and after col. A wide cluster split by
// the cut leaves a blank primary behind.
func (g *textGrid) truncate(row, col int) {
	if row < 0 || row >= len(g.rows) || col >= len(g.rows[row]) {
		return
	}
	r := g.rows[row][:col]
	if col > 0 && len(r) == col && r[col-1] != continuation && clusterWidth(r[col-1]) == 2 {
		r[col-1] = blankCluster
	}
	g.rows[row] = r
}

// insertRows shifts rows [at, bottom-n) down by n inside the window
// [at, bottom) and blanks the vacated rows. Content shifted past bottom is
// discarded.
func (g *textGrid) insertRows(at, n, bottom int) {
	if at >= len(g.rows) || n <= 0 {
		return
	}
	g.ensureRow(bottom - 1)
	for i := bottom - 1; i >= at+n; i-- {
		g.rows[i] = g.rows[i-n]
	}
	for i := at; i < at+n && i < bottom; i++ {
		g.rows[i] = nil
	}
}

// deleteRows removes n rows at at inside the window [at, bottom), shifting
// the rest up and blanking the bottom.
func (g *textGrid) deleteRows(at, n, bottom int) {
	if at >= len(g.rows) || n <= 0 {
		return
	}
	g.ensureRow(bottom - 1)
	for i := at; i+n < bottom; i++ {
		g.rows[i] = g.rows[i+n]
	}
	start := bottom - n
	if start < at {
		start = at
	}
	for i := start; i < bottom; i++ {
		g.rows[i] = nil
	}
}

// trimTop discards the oldest d rows.
func (g *textGrid) trimTop(d int) {
	if d <= 0 {
		return
	}
	if d >= len(g.rows) {
		g.rows = nil
		return
	}
	g.rows = g.rows[d:]
}
