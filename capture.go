package vtscreen

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// CaptureDetail specifies the level of detail in a capture.
type CaptureDetail string

const (
	// CaptureText captures plain text only.
	CaptureText CaptureDetail = "text"
	// CaptureStyled captures text with style segments per line.
	CaptureStyled CaptureDetail = "styled"
	// CaptureFull captures full cell-by-cell data.
	CaptureFull CaptureDetail = "full"
)

// Capture is a serializable record of the visible viewport.
type Capture struct {
	Size   CaptureSize   `json:"size"`
	Cursor CaptureCursor `json:"cursor"`
	Lines  []CaptureLine `json:"lines"`
}

// CaptureSize holds the screen dimensions.
type CaptureSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// CaptureCursor holds the viewport-relative cursor position.
type CaptureCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CaptureLine is a single viewport row.
type CaptureLine struct {
	Text     string           `json:"text"`
	Segments []CaptureSegment `json:"segments,omitempty"`
	Cells    []CaptureCell    `json:"cells,omitempty"`
}

// CaptureSegment is a run of equally-styled text within a line.
type CaptureSegment struct {
	Text  string       `json:"text"`
	Fg    string       `json:"fg,omitempty"`
	Bg    string       `json:"bg,omitempty"`
	Attrs CaptureAttrs `json:"attrs,omitempty"`
}

// CaptureCell is a single cell with full attributes.
type CaptureCell struct {
	Cluster string       `json:"cluster"`
	Fg      string       `json:"fg"`
	Bg      string       `json:"bg"`
	Attrs   CaptureAttrs `json:"attrs,omitempty"`
	Wide    bool         `json:"wide,omitempty"`
	Spacer  bool         `json:"spacer,omitempty"`
}

// CaptureAttrs holds the text decorations of a segment or cell.
type CaptureAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	RapidBlink    bool `json:"rapid_blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Capture records the visible viewport at the requested detail level.
func (s *Screen) Capture(detail CaptureDetail) *Capture {
	c := &Capture{
		Size:   CaptureSize{Rows: s.height, Cols: s.width},
		Cursor: CaptureCursor{Row: s.cursorRow - s.linesOff, Col: s.cursorCol},
		Lines:  make([]CaptureLine, s.height),
	}
	for v := 0; v < s.height; v++ {
		line := CaptureLine{Text: s.LineText(v)}
		switch detail {
		case CaptureStyled:
			line.Segments = s.captureSegments(s.linesOff + v)
		case CaptureFull:
			line.Cells = s.captureCells(s.linesOff + v)
		}
		c.Lines[v] = line
	}
	return c
}

// captureSegments groups a row's stored cells into equally-styled runs.
func (s *Screen) captureSegments(row int) []CaptureSegment {
	var segments []CaptureSegment
	var lastStyle Style
	n := s.text.rowLen(row)
	for col := 0; col < n; col++ {
		cluster := s.text.cluster(row, col)
		if cluster == continuation {
			continue
		}
		st := s.styles.at(row, col)
		if len(segments) > 0 && st == lastStyle {
			segments[len(segments)-1].Text += cluster
			continue
		}
		segments = append(segments, CaptureSegment{
			Text:  cluster,
			Fg:    fgHex(st),
			Bg:    bgHex(st),
			Attrs: captureAttrs(st.Flags),
		})
		lastStyle = st
	}
	return segments
}

// captureCells records every stored cell of a row.
func (s *Screen) captureCells(row int) []CaptureCell {
	n := s.text.rowLen(row)
	cells := make([]CaptureCell, 0, n)
	for col := 0; col < n; col++ {
		cluster := s.text.cluster(row, col)
		st := s.styles.at(row, col)
		cells = append(cells, CaptureCell{
			Cluster: cluster,
			Fg:      hexColor(ResolveFg(st)),
			Bg:      hexColor(ResolveBg(st)),
			Attrs:   captureAttrs(st.Flags),
			Wide:    cluster != continuation && clusterWidth(cluster) == 2,
			Spacer:  cluster == continuation,
		})
	}
	return cells
}

func captureAttrs(flags StyleFlags) CaptureAttrs {
	return CaptureAttrs{
		Bold:          flags&StyleBold != 0,
		Dim:           flags&StyleDim != 0,
		Italic:        flags&StyleItalic != 0,
		Underline:     flags&StyleUnderline != 0,
		Blink:         flags&StyleBlink != 0,
		RapidBlink:    flags&StyleRapidBlink != 0,
		Reverse:       flags&StyleReverse != 0,
		Hidden:        flags&StyleHidden != 0,
		Strikethrough: flags&StyleStrike != 0,
	}
}

// fgHex returns the hex foreground of a style, empty for the default.
func fgHex(st Style) string {
	if !st.HasFg() {
		return ""
	}
	return hexColor(ResolveFg(st))
}

// bgHex returns the hex background of a style, empty for the default.
func bgHex(st Style) string {
	if !st.HasBg() {
		return ""
	}
	return hexColor(ResolveBg(st))
}

// hexColor serializes an RGBA color as "#rrggbb".
func hexColor(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
