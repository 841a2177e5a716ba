package assets

import (
	"fmt"
	"html"
)

// Placeholder renders a neutral SVG tile with the image reference as label,
// served whenever an image file is missing.
func Placeholder(label string) []byte {
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="300" viewBox="0 0 300 300">`+
			`<rect width="300" height="300" fill="#8e8e93"/>`+
			`<text x="150" y="155" font-family="sans-serif" font-size="20" fill="#fff" text-anchor="middle">%s</text>`+
			`</svg>`,
		html.EscapeString(label),
	))
}
