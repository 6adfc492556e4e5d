package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/jfehr/glint/engine/colors"
	"github.com/jfehr/glint/engine/config"
	"github.com/jfehr/glint/engine/input"
)

// Window owns the GLFW window and GL context, and doubles as the synchronous
// input.Poller the input manager samples once per frame.
type Window struct {
	w        *glfw.Window
	onResize func(width, height int)
}

// Must be called on main thread before any GL calls.
func NewWindow(cfg config.Config) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	pw := &Window{w: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if w < 1 || h < 1 {
			return
		}
		if pw.onResize != nil {
			pw.onResize(w, h)
		}
	})

	return pw, nil
}

// SetResizeCallback registers the handler for framebuffer size changes.
func (p *Window) SetResizeCallback(cb func(width, height int)) { p.onResize = cb }

// Clear clears the current back buffer to the given color.
func (p *Window) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Finish blocks until the GPU has executed every submitted command.
func (p *Window) Finish() { gl.Finish() }

func (p *Window) PollEvents()                 { glfw.PollEvents() }
func (p *Window) SwapBuffers()                { p.w.SwapBuffers() }
func (p *Window) ShouldClose() bool           { return p.w.ShouldClose() }
func (p *Window) RequestClose()               { p.w.SetShouldClose(true) }
func (p *Window) FramebufferSize() (int, int) { return p.w.GetFramebufferSize() }
func (p *Window) SetTitle(t string)           { p.w.SetTitle(t) }

// Destroy tears down the window and the GLFW runtime.
func (p *Window) Destroy() {
	p.w.Destroy()
	glfw.Terminate()
}

// --- input.Poller ---

// KeyDown reports the current pressed state for an engine key code. Codes
// with no GLFW equivalent read as released.
func (p *Window) KeyDown(code int) bool {
	k, ok := keyForCode[code]
	if !ok {
		return false
	}
	return p.w.GetKey(k) == glfw.Press
}

// MousePos returns the cursor position in window-client coordinates.
func (p *Window) MousePos() (int, int) {
	x, y := p.w.GetCursorPos()
	return int(x), int(y)
}

func (p *Window) MouseButtons() (left, right bool) {
	left = p.w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	right = p.w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	return left, right
}

var keyForCode = map[int]glfw.Key{
	input.KeyReturn: glfw.KeyEnter,
	input.KeyEscape: glfw.KeyEscape,
	input.KeySpace:  glfw.KeySpace,
	input.KeyLeft:   glfw.KeyLeft,
	input.KeyUp:     glfw.KeyUp,
	input.KeyRight:  glfw.KeyRight,
	input.KeyDown:   glfw.KeyDown,
	input.KeyW:      glfw.KeyW,
	input.KeyA:      glfw.KeyA,
	input.KeyS:      glfw.KeyS,
	input.KeyD:      glfw.KeyD,
}
