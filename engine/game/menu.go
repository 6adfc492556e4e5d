package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jfehr/glint/engine/gfx"
	"github.com/jfehr/glint/engine/input"
	"github.com/jfehr/glint/engine/logger"
)

// Menu is the second mode. It renders nothing and no transition between it
// and gameplay is wired up yet.
type Menu struct {
	log *logger.Logger
}

func NewMenu(log *logger.Logger) *Menu {
	return &Menu{log: log}
}

func (m *Menu) Enter() {
	m.log.Log(logger.Info, "entering menu state")
}

func (m *Menu) Update(dt float32, in input.Snapshot) {
	// Return is the intended start trigger, but there is no transition
	// target to hand off to yet.
	_ = in.IsKeyDown(input.KeyReturn)
}

func (m *Menu) Draw(adapter gfx.RenderAdapter, proj mgl32.Mat4) {}

func (m *Menu) Exit() {
	m.log.Log(logger.Info, "exiting menu state")
}
