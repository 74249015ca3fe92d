package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit terminal color
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBStone     = RGB{120, 112, 104}
	RGBFloor     = RGB{44, 40, 38}
	RGBPlayer    = RGB{236, 226, 200}
	RGBEnemy     = RGB{200, 30, 30}
	RGBOrb       = RGB{120, 200, 255}
	RGBExit      = RGB{250, 220, 110}
	RGBMessage   = RGB{214, 200, 180}
	RGBStatus    = RGB{180, 180, 180}
	RGBSanityHi  = RGB{90, 170, 110}
	RGBSanityLo  = RGB{170, 30, 40}
	RGBMuted     = RGB{255, 80, 80}
	RGBUnmuted   = RGB{90, 200, 90}
	RGBStatusBar = RGB{26, 27, 38}
)

func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies each channel by f
func Scale(c RGB, f float64) RGB {
	if f >= 1.0 {
		return c
	}
	if f <= 0.0 {
		return RGBBlack
	}
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}

// Blend alpha-blends src over c
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Luma is the perceived brightness in [0, 255]
func Luma(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ToTcell converts RGB to tcell.Color
func ToTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts tcell.Color to RGB, ColorDefault reads as black
func FromTcell(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}
