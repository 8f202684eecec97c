package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer and to RGB in screenshots.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
