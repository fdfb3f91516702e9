package core

// Color is a foreground color for a screen cell.
// Front-ends map it to ANSI codes or RGBA.
type Color uint8

// Palette shared by all games.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorPurple
)
