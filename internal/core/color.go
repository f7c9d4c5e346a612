package core

// Color is the foreground color of a screen cell. The platform
// renderer maps each value to a terminal style; the game picks colors
// by tile progression rank, so higher tiles read hotter on screen.
type Color uint8

// Cell colors. Default renders with the terminal's own foreground;
// Gray marks empty board cells, BrightWhite highlights fresh spawns.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
)
