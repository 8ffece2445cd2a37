package vtscreen

import (
	"image/color"
	"strconv"
	"strings"
)

// StyleFlags is a bitmask of SGR text decorations.
type StyleFlags uint16

const (
	// StyleBold corresponds to SGR 1.
	StyleBold StyleFlags = 1 << iota
	// StyleDim corresponds to SGR 2.
	StyleDim
	// StyleItalic corresponds to SGR 3.
	StyleItalic
	// StyleUnderline corresponds to SGR 4.
	StyleUnderline
	// StyleBlink corresponds to SGR 5.
	StyleBlink
	// StyleRapidBlink corresponds to SGR 6.
	StyleRapidBlink
	// StyleReverse corresponds to SGR 7.
	StyleReverse
	// StyleHidden corresponds to SGR 8.
	StyleHidden
	// StyleStrike corresponds to SGR 9.
	StyleStrike
)

// flagForCode maps an SGR decoration code (1-9) to its flag bit.
func flagForCode(code int) StyleFlags {
	if code < 1 || code > 9 {
		return 0
	}
	return 1 << (code - 1)
}

// ExtColor is an extended SGR color: either a 256-color palette index or a
// 24-bit RGB value. A nil ExtColor means no extended color is set.
type ExtColor interface {
	// sgrParams appends the parameter codes that select this color after a
	// leading 38 or 48.
	sgrParams(dst []int) []int
	// rgba resolves the color against the default palette.
	rgba() color.RGBA
}

// Palette256 selects one of the 256 xterm palette colors.
type Palette256 uint8

func (p Palette256) sgrParams(dst []int) []int {
	return append(dst, 5, int(p))
}

func (p Palette256) rgba() color.RGBA {
	return DefaultPalette[p]
}

// RGB is a 24-bit truecolor value.
type RGB struct {
	R, G, B uint8
}

func (c RGB) sgrParams(dst []int) []int {
	return append(dst, 2, int(c.R), int(c.G), int(c.B))
}

func (c RGB) rgba() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Style is the full style state of one cell: decoration bits plus optional
// basic and extended colors.
//
// FgBasic holds the basic foreground code (30-37, 90-97) or 0 when unset;
// BgBasic likewise (40-47, 100-107). A basic code and an extended color are
// mutually exclusive per channel: setting one clears the other. The zero
// Style is the default (no decorations, default colors).
type Style struct {
	Flags   StyleFlags
	FgBasic int
	BgBasic int
	FgExt   ExtColor
	BgExt   ExtColor
}

// IsZero returns true if the style is the default style.
func (s Style) IsZero() bool {
	return s == Style{}
}

// HasFg returns true if any foreground color is set.
func (s Style) HasFg() bool {
	return s.FgBasic != 0 || s.FgExt != nil
}

// HasBg returns true if any background color is set.
func (s Style) HasBg() bool {
	return s.BgBasic != 0 || s.BgExt != nil
}

// background returns a style carrying only this style's background, the
// fill style for erased cells.
func (s Style) background() Style {
	return Style{BgBasic: s.BgBasic, BgExt: s.BgExt}
}

// applySGR processes a list of SGR codes left to right, mutating the style.
// Unknown codes are ignored.
func (s *Style) applySGR(codes []int) {
	for i := 0; i < len(codes); i++ {
		c := codes[i]
		switch {
		case c == 0:
			*s = Style{}
		case c >= 1 && c <= 9:
			s.Flags |= flagForCode(c)
		case c == 22:
			s.Flags &^= StyleBold | StyleDim
		case c >= 23 && c <= 29:
			s.Flags &^= flagForCode(c - 20)
		case c >= 30 && c <= 37 || c >= 90 && c <= 97:
			s.FgBasic = c
			s.FgExt = nil
		case c == 39:
			s.FgBasic = 0
			s.FgExt = nil
		case c >= 40 && c <= 47 || c >= 100 && c <= 107:
			s.BgBasic = c
			s.BgExt = nil
		case c == 49:
			s.BgBasic = 0
			s.BgExt = nil
		case c == 38 || c == 48:
			ext, n := parseExtColor(codes[i+1:])
			i += n
			if ext == nil {
				continue
			}
			if c == 38 {
				s.FgExt = ext
				s.FgBasic = 0
			} else {
				s.BgExt = ext
				s.BgBasic = 0
			}
		}
	}
}

// parseExtColor reads the codes following a 38 or 48: either 5;n (palette)
// or 2;r;g;b (RGB). Returns the color and the number of codes consumed, or
// (nil, 0) when the codes are malformed.
func parseExtColor(codes []int) (ExtColor, int) {
	if len(codes) >= 2 && codes[0] == 5 {
		return Palette256(clampByte(codes[1])), 2
	}
	if len(codes) >= 4 && codes[0] == 2 {
		return RGB{
			R: clampByte(codes[1]),
			G: clampByte(codes[2]),
			B: clampByte(codes[3]),
		}, 4
	}
	return nil, 0
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// splitCodes parses a CSI parameter string ("1;31;44") into integers.
// Empty segments become 0. An empty string yields no codes.
func splitCodes(params string) []int {
	if params == "" {
		return nil
	}
	parts := strings.Split(params, ";")
	codes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			n = 0
		}
		codes[i] = n
	}
	return codes
}
