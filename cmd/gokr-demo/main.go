// Demo: renders a checker sprite into an off-screen framebuffer, then draws
// the framebuffer's color texture back onto the screen as another sprite.
package main

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokr/pkg/render"
)

func init() {
	// glfw event handling must run on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(800, 600, "gokr demo", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := render.Init(); err != nil {
		return err
	}

	programs := render.NewProgramCache(4)
	defer programs.Purge()
	program, err := programs.Get(render.SpriteVertexSource, render.SpriteFragmentSource)
	if err != nil {
		return err
	}

	texture := render.TextureFromImage(checkerImage(128, 128, 16))
	defer texture.Release()
	sprite := render.NewSprite(texture)
	defer sprite.Release()

	framebuffer, err := render.NewFramebuffer(256, 256)
	if err != nil {
		return err
	}
	defer framebuffer.Release()

	framebuffer.Clear(color.RGBA{R: 30, G: 30, B: 46, A: 255})
	framebuffer.Draw(sprite, program, mgl32.Translate3D(64, 64, 0))

	offscreen := render.NewSpriteFromFramebuffer(framebuffer)
	defer offscreen.Release()

	screen := render.NewScreen(window.GetFramebufferSize())
	defer screen.Release()

	for !window.ShouldClose() {
		width, height := window.GetFramebufferSize()
		screen.Resize(width, height)
		screen.Clear(color.Black)
		screen.Draw(offscreen, program, mgl32.Translate3D(
			float32(width-256)/2, float32(height-256)/2, 0))

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func checkerImage(width, height, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 205, G: 214, B: 244, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{R: 137, G: 180, B: 250, A: 255})
			}
		}
	}
	return img
}
