// Package render composes the world into a terminal cell buffer
package render

// SystemRenderer is implemented by anything with visual output
// Render runs under the world lock
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
