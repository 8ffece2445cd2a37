package vtscreen

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// a 216-color cube (16-231) and a 24-step grayscale ramp (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 16-231 (color cube) and 232-255 (grayscale) are generated in init.
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the color styled captures use for default text.
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the color styled captures use for the default
// background.
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// ResolveFg returns the concrete color of a style's foreground against the
// default palette.
func ResolveFg(st Style) color.RGBA {
	if st.FgExt != nil {
		return st.FgExt.rgba()
	}
	switch {
	case st.FgBasic >= 30 && st.FgBasic <= 37:
		return DefaultPalette[st.FgBasic-30]
	case st.FgBasic >= 90 && st.FgBasic <= 97:
		return DefaultPalette[st.FgBasic-90+8]
	default:
		return DefaultForeground
	}
}

// ResolveBg returns the concrete color of a style's background against the
// default palette.
func ResolveBg(st Style) color.RGBA {
	if st.BgExt != nil {
		return st.BgExt.rgba()
	}
	switch {
	case st.BgBasic >= 40 && st.BgBasic <= 47:
		return DefaultPalette[st.BgBasic-40]
	case st.BgBasic >= 100 && st.BgBasic <= 107:
		return DefaultPalette[st.BgBasic-100+8]
	default:
		return DefaultBackground
	}
}
