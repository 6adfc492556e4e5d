package app

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/jfehr/glint/engine/colors"
	"github.com/jfehr/glint/engine/config"
	"github.com/jfehr/glint/engine/game"
	"github.com/jfehr/glint/engine/gfx"
	"github.com/jfehr/glint/engine/input"
	"github.com/jfehr/glint/engine/logger"
)

// Harness is the windowing/device collaborator the shell drives: window
// lifecycle, event pump, input sampling, clear/present and the full pipeline
// flush. The platform GLFW window implements it.
type Harness interface {
	input.Poller
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetResizeCallback(func(width, height int))
	Clear(c colors.Color)
	Finish()
}

// App owns the adapter, the input manager and the current state, and drives
// the per-frame Update then Draw sequence until the window closes.
type App struct {
	cfg     config.Config
	log     *logger.Logger
	harness Harness
	adapter gfx.RenderAdapter
	inputs  *input.Manager
	state   game.State
	proj    mgl32.Mat4

	shutdown bool
}

func New(cfg config.Config, lg *logger.Logger, h Harness, adapter gfx.RenderAdapter) *App {
	lg.Log(logger.Info, "app created")
	return &App{
		cfg:     cfg,
		log:     lg,
		harness: h,
		adapter: adapter,
		inputs:  input.NewManager(),
	}
}

// Init brings up the adapter on the current framebuffer dimensions, waits
// for the GPU to drain the setup commands, and enters the initial state.
// An adapter failure aborts startup; there is no degraded mode.
func (a *App) Init() error {
	a.log.Log(logger.Info, "app initializing")

	w, h := a.harness.FramebufferSize()
	if err := a.adapter.Initialize(w, h); err != nil {
		a.log.Log(logger.Error, "failed to initialize render adapter")
		return err
	}
	a.harness.Finish()

	a.proj = projection(w, h)
	a.harness.SetResizeCallback(a.onResize)

	a.state = game.NewGameplay(a.log)
	a.state.Enter()

	a.log.Log(logger.Info, "app initialized")
	return nil
}

// Run executes the frame loop until the window closes, then shuts down.
func (a *App) Run() {
	prev := time.Now()
	for !a.harness.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(prev).Seconds())
		prev = now

		a.harness.PollEvents()
		a.Update(dt)
		a.Draw()
	}
	a.Shutdown()
}

// Update polls the input snapshot and advances the current state. Escape
// requests a window close.
func (a *App) Update(dt float32) {
	a.inputs.Update(a.harness)

	in := a.inputs.Current()
	if in.IsKeyDown(input.KeyEscape) {
		a.harness.RequestClose()
	}
	if a.state != nil {
		a.state.Update(dt, in)
	}
}

// Draw clears the back buffer, delegates drawing to the current state,
// presents, and waits for the GPU to go idle before the next frame starts.
func (a *App) Draw() {
	a.harness.Clear(a.cfg.ClearColor)

	a.adapter.BeginFrame()
	if a.state != nil {
		a.state.Draw(a.adapter, a.proj)
	}
	a.adapter.EndFrame()

	a.harness.SwapBuffers()
	a.harness.Finish()
}

// Shutdown exits the current state and releases adapter resources. Safe to
// call more than once; later calls do nothing.
func (a *App) Shutdown() {
	if a.shutdown {
		return
	}
	a.shutdown = true

	if a.state != nil {
		a.state.Exit()
		a.state = nil
	}
	a.adapter.Cleanup()
	a.log.Log(logger.Info, "app destroyed")
	log.Println("engine exit")
}

// Projection returns the current orthographic projection.
func (a *App) Projection() mgl32.Mat4 { return a.proj }

func (a *App) onResize(w, h int) {
	a.proj = projection(w, h)
	a.adapter.Resize(w, h)
}

// projection maps window-client pixels to clip space with the origin at the
// top-left corner and y growing downward.
func projection(w, h int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(w), float32(h), 0, 0, 1)
}
