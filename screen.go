package vtscreen

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	// DefaultMaxRows is the default hard cap on buffered rows. Rows beyond
	// the cap are discarded oldest-first.
	DefaultMaxRows = 5000

	tabWidth = 8
)

// Screen is a virtual terminal: it ingests bytes containing printable text
// and ANSI escape sequences, maintains a fixed-size character grid with
// per-cell styling, and renders the grid back into a minimal ANSI byte
// stream.
//
// A Screen is a unit of exclusive mutation: methods are not safe for
// concurrent use. Multiple screens may coexist and be composed by the
// caller.
type Screen struct {
	width  int
	height int

	maxRows int

	text    *textGrid
	styles  *styleGrid
	tracker *changeTracker

	// Cursor position, 0-based, absolute in the buffer (not the viewport).
	cursorRow int
	cursorCol int

	// linesOff is the number of rows scrolled above the viewport. The
	// visible viewport is always height rows starting at linesOff.
	linesOff int

	saved *savedCursor

	responder QueryResponder

	lastRendered uint64
}

// savedCursor holds a DECSC stash: column plus viewport-relative row.
type savedCursor struct {
	col     int
	viewRow int
}

// Option configures a Screen during construction.
type Option func(*Screen)

// WithQueryResponder sets the writer that receives replies to DSR and color
// queries. If never set, queries are silently dropped.
func WithQueryResponder(w QueryResponder) Option {
	return func(s *Screen) {
		s.responder = w
	}
}

// WithMaxRows sets the hard cap on buffered rows (default 5000).
// Values <= 0 are ignored.
func WithMaxRows(n int) Option {
	return func(s *Screen) {
		if n > 0 {
			s.maxRows = n
		}
	}
}

// New creates an empty screen of the given dimensions. Dimensions smaller
// than 1 are raised to 1; they are fixed for the life of the screen.
func New(width, height int, opts ...Option) *Screen {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Screen{
		width:   width,
		height:  height,
		maxRows: DefaultMaxRows,
		text:    newTextGrid(),
		styles:  newStyleGrid(),
		tracker: newChangeTracker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxRows < height {
		s.maxRows = height
	}
	return s
}

// Width returns the screen width in columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in rows.
func (s *Screen) Height() int {
	return s.height
}

// Cursor returns the cursor position, 0-based and absolute in the buffer.
func (s *Screen) Cursor() (row, col int) {
	return s.cursorRow, s.cursorCol
}

// LinesOffScreen returns how many rows have scrolled above the viewport.
func (s *Screen) LinesOffScreen() int {
	return s.linesOff
}

// CurrentSeq returns the change tracker's monotonic sequence counter.
func (s *Screen) CurrentSeq() uint64 {
	return s.tracker.current()
}

// LastRenderedSeq returns the sequence observed by the most recent Render or
// RenderSince call.
func (s *Screen) LastRenderedSeq() uint64 {
	return s.lastRendered
}

// SetQueryResponder replaces the query reply writer at runtime.
func (s *Screen) SetQueryResponder(w QueryResponder) {
	s.responder = w
}

// Write processes raw bytes as terminal input, updating the grids and
// cursor. Implements io.Writer; the returned error is always nil.
func (s *Screen) Write(data []byte) (int, error) {
	prepared := bytes.ReplaceAll(data, []byte{0x08}, []byte("\x1b[D"))
	prepared = bytes.ReplaceAll(prepared, []byte{0x0d}, []byte("\x1b[G"))

	for _, tok := range Parse(prepared) {
		s.dispatch(tok)
		s.maybeTrim()
	}
	return len(data), nil
}

// WriteString is a convenience wrapper around Write.
func (s *Screen) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Writeln writes data followed by a newline. If the cursor is not already in
// column 0 a leading newline is inserted first.
func (s *Screen) Writeln(data []byte) (int, error) {
	if s.cursorCol != 0 {
		s.lineFeed()
	}
	n, err := s.Write(data)
	s.lineFeed()
	s.maybeTrim()
	return n, err
}

// dispatch applies one token to the screen state.
func (s *Screen) dispatch(tok Token) {
	switch tok.Kind {
	case TokenText:
		s.writeText(tok.Raw)
	case TokenCSI:
		s.handleCSI(tok.Command, tok.Params)
	case TokenSimpleEsc:
		switch tok.Command {
		case '7':
			s.saveCursor()
		case '8':
			s.restoreCursor()
		}
	case TokenOSC, TokenCharsetEsc:
		// Consumed, not interpreted.
	case TokenInvalid:
		raw := tok.Raw
		if len(raw) > 0 && raw[0] == esc {
			raw = raw[1:]
		}
		if len(raw) > 0 {
			s.writeText(raw)
		}
	}
}

// --- Text ---

// writeText writes a text run, splitting on newlines.
func (s *Screen) writeText(data []byte) {
	for {
		nl := bytes.IndexByte(data, '\n')
		seg := data
		if nl >= 0 {
			seg = data[:nl]
		}
		s.writeSegment(seg)
		if nl < 0 {
			return
		}
		s.lineFeed()
		data = data[nl+1:]
	}
}

// writeSegment writes one newline-free segment cluster by cluster. The wrap
// happens when and only when the next cluster does not fit in the remaining
// width; a wide cluster that would straddle the last column wraps whole.
// After filling a row exactly the cursor rests at cursorCol == width until
// the next cluster or token normalizes it, so a full bottom row does not
// scroll prematurely.
func (s *Screen) writeSegment(seg []byte) {
	rest := string(seg)
	for rest != "" {
		var cluster string
		var w int
		cluster, rest, w = firstCluster(rest)
		if cluster == "\t" {
			s.cursorCol = nextTabStop(minInt(s.cursorCol, s.width-1), 1, s.width)
			continue
		}
		if w <= 0 || w > s.width {
			continue
		}
		if s.cursorCol+w > s.width {
			s.lineFeed()
		}
		s.putCluster(cluster, w)
		s.cursorCol += w
	}
}

// putCluster stores a cluster at the cursor and stamps the active style.
// Wide clusters occupy a primary cell plus a continuation cell.
func (s *Screen) putCluster(cluster string, w int) {
	wide := w == 2
	s.text.write(s.cursorRow, s.cursorCol, cluster, wide)
	s.styles.stamp(s.cursorRow, s.cursorCol, s.styles.active, wide)
	s.tracker.touch(s.cursorRow)
}

// lineFeed moves the cursor to column 0 of the next row, advancing the
// viewport when the cursor is on its last row.
func (s *Screen) lineFeed() {
	s.cursorRow++
	s.cursorCol = 0
	if s.cursorRow > s.linesOff+s.height-1 {
		s.linesOff = s.cursorRow - s.height + 1
		s.text.ensureRow(s.cursorRow)
		s.styles.ensureRow(s.cursorRow)
		s.touchViewport()
	}
}

// nextTabStop returns the column after advancing n tab stops of size
// tabWidth, clamped to the last column.
func nextTabStop(col, n, width int) int {
	next := (col/tabWidth + n) * tabWidth
	if next > width-1 {
		next = width - 1
	}
	return next
}

// --- CSI dispatch ---

func (s *Screen) handleCSI(command byte, params string) {
	// A cursor parked past a just-filled row normalizes onto the row before
	// any control sequence takes effect.
	if s.cursorCol >= s.width {
		s.cursorCol = s.width - 1
	}
	codes := splitCodes(params)
	switch command {
	case 'A':
		s.cursorRow = maxInt(s.cursorRow-pOne(codes), s.linesOff)
	case 'B':
		s.cursorRow = minInt(s.cursorRow+pOne(codes), s.linesOff+s.height-1)
	case 'C':
		s.cursorCol = minInt(s.cursorCol+pOne(codes), s.width-1)
	case 'D':
		s.cursorCol = maxInt(s.cursorCol-pOne(codes), 0)
	case 'E':
		s.cursorRow = minInt(s.cursorRow+pOne(codes), s.linesOff+s.height-1)
		s.cursorCol = 0
	case 'F':
		s.cursorRow = maxInt(s.cursorRow-pOne(codes), s.linesOff)
		s.cursorCol = 0
	case 'G':
		s.cursorCol = clamp(pOne(codes)-1, 0, s.width-1)
	case 'H', 'f':
		row, col := 1, 1
		if len(codes) > 0 && codes[0] > 0 {
			row = codes[0]
		}
		if len(codes) > 1 && codes[1] > 0 {
			col = codes[1]
		}
		s.cursorRow = s.linesOff + clamp(row-1, 0, s.height-1)
		s.cursorCol = clamp(col-1, 0, s.width-1)
	case 'I':
		s.cursorCol = nextTabStop(s.cursorCol, pOne(codes), s.width)
	case 'J':
		s.eraseDisplay(pZero(codes))
	case 'K':
		s.eraseLine(pZero(codes))
	case 'L':
		s.insertLines(pOne(codes))
	case 'M':
		s.deleteLines(pOne(codes))
	case 'S':
		s.scrollUp(pOne(codes))
	case 'T':
		s.scrollDown(pOne(codes))
	case 'm':
		if len(codes) == 0 {
			codes = []int{0}
		}
		s.styles.active.applySGR(codes)
	case 'n':
		s.handleQuery(params)
	case 'h', 'l':
		// Mode set/reset (cursor visibility and friends): ignored.
	}
}

// pZero returns the first numeric parameter, defaulting to 0.
func pZero(codes []int) int {
	if len(codes) == 0 {
		return 0
	}
	return codes[0]
}

// pOne returns the first numeric parameter, defaulting to 1. A zero
// parameter also counts as 1, matching terminal behavior for motions.
func pOne(codes []int) int {
	if len(codes) == 0 || codes[0] < 1 {
		return 1
	}
	return codes[0]
}

// --- Erase ---

// eraseDisplay clears part of the viewport: 0 = cursor to end, 1 = start to
// cursor, 2 = everything visible.
func (s *Screen) eraseDisplay(mode int) {
	top := s.linesOff
	bottom := s.linesOff + s.height
	switch mode {
	case 0:
		s.text.truncate(s.cursorRow, s.cursorCol)
		s.styles.truncate(s.cursorRow, s.cursorCol)
		s.tracker.touch(s.cursorRow)
		s.clearRows(s.cursorRow+1, bottom)
	case 1:
		s.clearRows(top, s.cursorRow)
		s.text.fill(s.cursorRow, 0, s.cursorCol+1)
		s.styles.fill(s.cursorRow, 0, s.cursorCol+1, Style{})
		s.tracker.touch(s.cursorRow)
	case 2:
		s.clearRows(top, bottom)
	}
}

// clearRows blanks whole rows in [from, to), touching only rows that exist.
func (s *Screen) clearRows(from, to int) {
	limit := minInt(to, maxInt(s.text.numRows(), len(s.styles.rows)))
	for row := from; row < limit; row++ {
		s.text.truncate(row, 0)
		s.styles.truncate(row, 0)
		s.tracker.touch(row)
	}
}

// eraseLine clears part of the cursor row: 0 = cursor to end of line, 1 =
// start of line to cursor, 2 = whole line.
//
// With mode 0 and a non-default active background, the erased cells are
// filled with spaces carrying that background. This matches xterm but not
// every terminal; callers who disagree should reset the background before
// erasing.
func (s *Screen) eraseLine(mode int) {
	switch mode {
	case 0:
		if s.styles.active.HasBg() {
			s.text.fill(s.cursorRow, s.cursorCol, s.width)
			s.styles.fill(s.cursorRow, s.cursorCol, s.width, s.styles.active.background())
		} else {
			s.text.truncate(s.cursorRow, s.cursorCol)
			s.styles.truncate(s.cursorRow, s.cursorCol)
		}
	case 1:
		s.text.fill(s.cursorRow, 0, s.cursorCol+1)
		s.styles.fill(s.cursorRow, 0, s.cursorCol+1, Style{})
	case 2:
		s.text.truncate(s.cursorRow, 0)
		s.styles.truncate(s.cursorRow, 0)
	default:
		return
	}
	s.tracker.touch(s.cursorRow)
}

// --- Line insert/delete and scrolling ---

// insertLines inserts n blank lines at the cursor row, shifting content down
// and truncating at the viewport bottom.
func (s *Screen) insertLines(n int) {
	bottom := s.linesOff + s.height
	s.text.insertRows(s.cursorRow, n, bottom)
	s.styles.insertRows(s.cursorRow, n, bottom)
	s.touchViewport()
}

// deleteLines deletes n lines at the cursor row, shifting content up and
// leaving blank lines at the viewport bottom.
func (s *Screen) deleteLines(n int) {
	bottom := s.linesOff + s.height
	s.text.deleteRows(s.cursorRow, n, bottom)
	s.styles.deleteRows(s.cursorRow, n, bottom)
	s.touchViewport()
}

// scrollUp advances the viewport by n rows; scrolled-off rows stay in the
// buffer as history and the cursor keeps its viewport-relative position.
func (s *Screen) scrollUp(n int) {
	s.linesOff += n
	s.cursorRow += n
	s.text.ensureRow(s.linesOff + s.height - 1)
	s.styles.ensureRow(s.linesOff + s.height - 1)
	s.touchViewport()
}

// scrollDown inserts n blank rows at the top of the viewport, shifting
// content down and truncating at the bottom.
func (s *Screen) scrollDown(n int) {
	s.text.insertRows(s.linesOff, n, s.linesOff+s.height)
	s.styles.insertRows(s.linesOff, n, s.linesOff+s.height)
	s.touchViewport()
}

// touchViewport records a change on every visible row.
func (s *Screen) touchViewport() {
	s.tracker.touchRange(s.linesOff, s.linesOff+s.height)
}

// --- Save/restore ---

func (s *Screen) saveCursor() {
	s.saved = &savedCursor{
		col:     minInt(s.cursorCol, s.width-1),
		viewRow: s.cursorRow - s.linesOff,
	}
}

func (s *Screen) restoreCursor() {
	if s.saved == nil {
		return
	}
	s.cursorRow = s.linesOff + clamp(s.saved.viewRow, 0, s.height-1)
	s.cursorCol = clamp(s.saved.col, 0, s.width-1)
}

// --- Queries ---

// handleQuery answers DSR and color queries through the responder.
func (s *Screen) handleQuery(params string) {
	var reply string
	switch {
	case params == "6":
		reply = fmt.Sprintf("\x1b[%d;%dR", s.cursorRow-s.linesOff+1, s.cursorCol+1)
	case strings.HasPrefix(params, "?10"):
		reply = "\x1b]10;rgb:0000/0000/0000\x1b\\"
	case strings.HasPrefix(params, "?11"):
		reply = "\x1b]11;rgb:FFFF/FFFF/FFFF\x1b\\"
	default:
		return
	}
	if s.responder != nil {
		s.responder.Write([]byte(reply))
	}
}

// --- Memory cap ---

// maybeTrim discards the oldest rows once the buffer exceeds the cap. Every
// row-indexed piece of state shifts down with the trim.
func (s *Screen) maybeTrim() {
	rows := maxInt(s.text.numRows(), len(s.styles.rows))
	over := rows - s.maxRows
	if over <= 0 {
		return
	}
	s.text.trimTop(over)
	s.styles.trimTop(over)
	s.tracker.shiftTrim(over)
	s.cursorRow = maxInt(s.cursorRow-over, 0)
	s.linesOff = maxInt(s.linesOff-over, 0)
}

// --- Text accessors ---

// LineText returns the text of viewport row v with trailing blanks trimmed.
func (s *Screen) LineText(v int) string {
	if v < 0 || v >= s.height {
		return ""
	}
	row := s.linesOff + v
	var b strings.Builder
	for col := 0; col < s.text.rowLen(row); col++ {
		cluster := s.text.cluster(row, col)
		if cluster == continuation {
			continue
		}
		b.WriteString(cluster)
	}
	return strings.TrimRight(b.String(), " ")
}

// Text returns the full viewport as height lines joined by newlines.
func (s *Screen) Text() string {
	lines := make([]string, s.height)
	for v := 0; v < s.height; v++ {
		lines[v] = s.LineText(v)
	}
	return strings.Join(lines, "\n")
}

// String returns the viewport content with trailing empty lines omitted.
// Implements fmt.Stringer.
func (s *Screen) String() string {
	last := -1
	lines := make([]string, s.height)
	for v := 0; v < s.height; v++ {
		lines[v] = s.LineText(v)
		if lines[v] != "" {
			last = v
		}
	}
	return strings.Join(lines[:last+1], "\n")
}

// --- Small helpers ---

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
