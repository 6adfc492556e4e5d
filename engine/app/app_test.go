package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfehr/glint/engine/colors"
	"github.com/jfehr/glint/engine/config"
	"github.com/jfehr/glint/engine/input"
	"github.com/jfehr/glint/engine/logger"
)

// fakeHarness satisfies Harness without a window or GL context.
type fakeHarness struct {
	width, height int
	keys          map[int]bool
	left, right   bool
	mouseX        int
	mouseY        int

	closeRequested bool
	onResize       func(int, int)
	clears         []colors.Color
	swaps          int
	finishes       int
}

func newFakeHarness(w, h int) *fakeHarness {
	return &fakeHarness{width: w, height: h, keys: map[int]bool{}}
}

func (f *fakeHarness) KeyDown(code int) bool              { return f.keys[code] }
func (f *fakeHarness) MousePos() (int, int)               { return f.mouseX, f.mouseY }
func (f *fakeHarness) MouseButtons() (bool, bool)         { return f.left, f.right }
func (f *fakeHarness) PollEvents()                        {}
func (f *fakeHarness) SwapBuffers()                       { f.swaps++ }
func (f *fakeHarness) ShouldClose() bool                  { return f.closeRequested }
func (f *fakeHarness) RequestClose()                      { f.closeRequested = true }
func (f *fakeHarness) FramebufferSize() (int, int)        { return f.width, f.height }
func (f *fakeHarness) SetResizeCallback(cb func(int, int)) { f.onResize = cb }
func (f *fakeHarness) Clear(c colors.Color)               { f.clears = append(f.clears, c) }
func (f *fakeHarness) Finish()                            { f.finishes++ }

func (f *fakeHarness) resize(w, h int) {
	f.width, f.height = w, h
	if f.onResize != nil {
		f.onResize(w, h)
	}
}

// fakeAdapter records adapter traffic for the shell tests.
type fakeAdapter struct {
	initW, initH int
	initErr      error
	resizes      [][2]int
	draws        []mgl32.Mat4
	begins, ends int
	cleanups     int
}

func (fa *fakeAdapter) Initialize(w, h int) error {
	fa.initW, fa.initH = w, h
	return fa.initErr
}
func (fa *fakeAdapter) Resize(w, h int) { fa.resizes = append(fa.resizes, [2]int{w, h}) }
func (fa *fakeAdapter) BeginFrame()     { fa.begins++ }
func (fa *fakeAdapter) EndFrame()       { fa.ends++ }
func (fa *fakeAdapter) Cleanup()        { fa.cleanups++ }

func (fa *fakeAdapter) DrawTriangle(transform mgl32.Mat4, color colors.Color) {
	fa.draws = append(fa.draws, transform)
}

func newTestApp(t *testing.T, h *fakeHarness, fa *fakeAdapter) *App {
	t.Helper()
	cfg := config.Default()
	lg := logger.New(filepath.Join(t.TempDir(), "engine.log"))
	return New(cfg, lg, h, fa)
}

func TestInit_AdapterGetsFramebufferDimensions(t *testing.T) {
	h := newFakeHarness(800, 600)
	fa := &fakeAdapter{}
	a := newTestApp(t, h, fa)

	require.NoError(t, a.Init())
	assert.Equal(t, 800, fa.initW)
	assert.Equal(t, 600, fa.initH)
	// Setup commands are flushed before the first frame.
	assert.Equal(t, 1, h.finishes)
	assert.Equal(t, projection(800, 600), a.Projection())
}

func TestInit_AdapterFailureAbortsStartup(t *testing.T) {
	h := newFakeHarness(800, 600)
	fa := &fakeAdapter{initErr: errors.New("no device")}
	a := newTestApp(t, h, fa)

	assert.Error(t, a.Init())
}

func TestFrame_UpdateThenDraw(t *testing.T) {
	h := newFakeHarness(800, 600)
	fa := &fakeAdapter{}
	a := newTestApp(t, h, fa)
	require.NoError(t, a.Init())

	h.keys[input.KeyW] = true
	for i := 0; i < 60; i++ {
		a.Update(1.0 / 60.0)
		a.Draw()
	}

	assert.Equal(t, 60, len(fa.draws))
	assert.Equal(t, 60, fa.begins)
	assert.Equal(t, 60, fa.ends)
	assert.Equal(t, 60, h.swaps)
	assert.Equal(t, 61, h.finishes) // one per frame plus the init flush
	assert.Equal(t, 60, len(h.clears))
	assert.Equal(t, config.Default().ClearColor, h.clears[0])

	// Holding W for one second moved the gameplay triangle 200 units up:
	// its submitted transform shifts the window center accordingly.
	moved := fa.draws[59].Mul4x1(mgl32.Vec4{400, 300, 0, 1})
	direct := a.Projection().Mul4x1(mgl32.Vec4{400, 100, 0, 1})
	for i := 0; i < 4; i++ {
		assert.InDelta(t, direct[i], moved[i], 1e-3)
	}
}

func TestResize_ForwardsToProjectionAndAdapter(t *testing.T) {
	h := newFakeHarness(800, 600)
	fa := &fakeAdapter{}
	a := newTestApp(t, h, fa)
	require.NoError(t, a.Init())

	h.resize(1024, 768)

	assert.Equal(t, [][2]int{{1024, 768}}, fa.resizes)
	assert.Equal(t, projection(1024, 768), a.Projection())
}

func TestUpdate_EscapeRequestsClose(t *testing.T) {
	h := newFakeHarness(800, 600)
	a := newTestApp(t, h, &fakeAdapter{})
	require.NoError(t, a.Init())

	a.Update(1.0 / 60.0)
	assert.False(t, h.closeRequested)

	h.keys[input.KeyEscape] = true
	a.Update(1.0 / 60.0)
	assert.True(t, h.closeRequested)
}

func TestShutdown_CleansUpExactlyOnce(t *testing.T) {
	h := newFakeHarness(800, 600)
	fa := &fakeAdapter{}
	a := newTestApp(t, h, fa)
	require.NoError(t, a.Init())

	a.Shutdown()
	a.Shutdown()

	assert.Equal(t, 1, fa.cleanups)
}

func TestRun_ExitsWhenCloseRequested(t *testing.T) {
	h := newFakeHarness(800, 600)
	fa := &fakeAdapter{}
	a := newTestApp(t, h, fa)
	require.NoError(t, a.Init())

	h.keys[input.KeyEscape] = true
	a.Run()

	assert.True(t, h.closeRequested)
	assert.Equal(t, 1, fa.cleanups)
}

func TestProjection_TopLeftOrigin(t *testing.T) {
	p := projection(800, 600)

	corner := p.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -1.0, corner[0], 1e-6)
	assert.InDelta(t, 1.0, corner[1], 1e-6)

	opposite := p.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	assert.InDelta(t, 1.0, opposite[0], 1e-6)
	assert.InDelta(t, -1.0, opposite[1], 1e-6)

	center := p.Mul4x1(mgl32.Vec4{400, 300, 0, 1})
	assert.InDelta(t, 0.0, center[0], 1e-6)
	assert.InDelta(t, 0.0, center[1], 1e-6)
}
