package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colour codes in the terminal renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorGray
)
