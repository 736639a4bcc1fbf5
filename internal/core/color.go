package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightRed
	ColorOrange
	ColorGray
)
