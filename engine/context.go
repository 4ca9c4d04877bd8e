package engine

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type ContextOptions struct {
	Title         string
	Width, Height int
	VSync         bool
}

type Context struct {
	width, height int
	window        *glfw.Window
}

// NewContext opens the window and makes its gl context current on the
// calling thread.
func NewContext(opts ContextOptions) (*Context, error) {
	s := &Context{
		width:  opts.Width,
		height: opts.Height,
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var err error
	s.window, err = glfw.CreateWindow(s.width, s.height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	s.window.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize gl: %w", err)
	}
	log.Println("opengl version", gl.GoStr(gl.GetString(gl.VERSION)))

	// cull face
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.CULL_FACE)

	// depth
	gl.Enable(gl.DEPTH_TEST)

	s.window.SetFramebufferSizeCallback(s.onResize)

	w, h := s.window.GetFramebufferSize()
	s.onResize(s.window, w, h)

	return s, nil
}

func (s *Context) ShouldClose() bool {
	return s.window.ShouldClose()
}

// Update presents the back buffer and processes pending window events.
func (s *Context) Update() {
	s.window.SwapBuffers()
	glfw.PollEvents()
}

func (s *Context) Size() (width, height int) {
	return s.width, s.height
}

func (s *Context) Close() {
	s.window.SetShouldClose(true)
}

func (s *Context) Cleanup() {
	glfw.Terminate()
}

func (s *Context) onResize(w *glfw.Window, width, height int) {
	width, height = clampSize(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))

	s.width = width
	s.height = height
}

// minimized windows report a zero sized framebuffer
func clampSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
