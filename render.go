package vtscreen

import (
	"bytes"
	"fmt"
)

// Render returns a byte string that reproduces the current viewport when
// written at the caller's cursor position. Every row is addressed relative
// to that position (DECSC as the origin, DECRC plus cursor-down per row), so
// the frame can be embedded anywhere: a popup, a panel, a split. No \r, \n
// or absolute addressing is emitted, which sidesteps terminal-dependent
// pending-wrap behavior.
func (s *Screen) Render() []byte {
	var buf bytes.Buffer
	buf.WriteString("\x1b7")
	for v := 0; v < s.height; v++ {
		buf.WriteString("\x1b8")
		if v > 0 {
			fmt.Fprintf(&buf, "\x1b[%dB", v)
		}
		s.renderRow(&buf, s.linesOff+v)
	}
	s.lastRendered = s.tracker.current()
	return buf.Bytes()
}

// RenderSince returns an absolute-positioned rewrite of every viewport row
// changed after seq: a cursor move to the row start, the row content, and an
// erase to end of line. Returns nil when nothing changed. Unlike Render, the
// output is not composable with a caller offset.
func (s *Screen) RenderSince(seq uint64) []byte {
	var buf bytes.Buffer
	for _, row := range s.tracker.changedSince(seq) {
		if row < s.linesOff || row >= s.linesOff+s.height {
			continue
		}
		fmt.Fprintf(&buf, "\x1b[%d;1H", row-s.linesOff+1)
		s.renderRow(&buf, row)
		buf.WriteString("\x1b[K")
	}
	s.lastRendered = s.tracker.current()
	return buf.Bytes()
}

// renderRow emits one row's stored cells: a style transition wherever the
// style changes, then the cluster bytes. Continuation cells are skipped; the
// terminal advances past them because the wide cluster before them consumes
// two columns. The style is reset before leaving the row so nothing bleeds
// into the next one.
func (s *Screen) renderRow(buf *bytes.Buffer, row int) {
	st := NewStyleTracker()
	n := s.text.rowLen(row)
	for col := 0; col < n; col++ {
		cluster := s.text.cluster(row, col)
		if cluster == continuation {
			continue
		}
		buf.Write(st.Transition(s.styles.at(row, col)))
		buf.WriteString(cluster)
	}
	if !st.Current().IsZero() {
		buf.WriteString("\x1b[0m")
	}
}
