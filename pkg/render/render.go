// Package render is a minimal 2D rendering core on top of OpenGL. It turns
// pixel-space texture regions into drawable quads (Sprite), wraps shader
// compilation and uniform binding (Shader, ShaderProgram), and provides
// off-screen render targets whose color output can be sampled again
// (Framebuffer).
//
// The package is immediate-mode and single-threaded: every call issues GL
// commands on the calling thread, and the GL context must be current on that
// thread before Init is called. No operation here creates or selects a
// context.
package render

import "github.com/kjkrol/gokr/internal/driver"

var gfx driver.Functions

// Init binds the GL backend for the platform. The graphics context must
// already be current on the calling thread.
func Init() error {
	fns, err := driver.New()
	if err != nil {
		return err
	}
	gfx = fns
	return nil
}
