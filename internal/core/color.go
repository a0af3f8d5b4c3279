package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell.
// The zero value means "terminal default" and is never emitted as a color code.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB returns an explicit truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten adds delta to every channel, saturating at 255.
func (c Color) Lighten(delta int) Color {
	return RGB(shift(c.R, delta), shift(c.G, delta), shift(c.B, delta))
}

// Darken subtracts delta from every channel, saturating at 0.
func (c Color) Darken(delta int) Color {
	return RGB(shift(c.R, -delta), shift(c.G, -delta), shift(c.B, -delta))
}

func shift(v uint8, delta int) uint8 {
	return uint8(Clamp(int(v)+delta, 0, 255))
}

// Predefined colors for interface elements.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(255, 255, 255)
	ColorBlack   = RGB(5, 5, 5)
	ColorCyan    = RGB(0, 255, 255)
	ColorGold    = RGB(255, 215, 0)
	ColorRed     = RGB(255, 50, 50)
	ColorGray    = RGB(60, 60, 60)
)

// Style is the foreground/background pair applied to a cell.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}
