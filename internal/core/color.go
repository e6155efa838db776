package core

// Color is a CSS-style hex color such as "#f5f5f5".
// Front ends convert it to whatever their surface understands.
type Color string

// Default palette.
const (
	ColorBackground Color = "#333333"
	ColorForeground Color = "#f5f5f5"
)
