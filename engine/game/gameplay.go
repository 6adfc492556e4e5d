package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jfehr/glint/engine/colors"
	"github.com/jfehr/glint/engine/gfx"
	"github.com/jfehr/glint/engine/input"
	"github.com/jfehr/glint/engine/logger"
)

// MoveSpeed is the translation rate in units per second while a movement key
// is held.
const MoveSpeed = 200.0

// Scale and rotation steps are applied per frame while the mouse button is
// held, not per second. Frame-rate dependence is inherited behavior, kept
// as-is; see the notes in gameplay_test.go before normalizing by dt.
const (
	scaleStep  = 0.01
	rotateStep = 0.02
)

// Gameplay moves, scales and rotates the triangle from the current input
// snapshot. Pose data is reset on every Enter.
type Gameplay struct {
	log      *logger.Logger
	position mgl32.Vec2
	scale    float32
	angle    float32
}

func NewGameplay(log *logger.Logger) *Gameplay {
	log.Log(logger.Info, "gameplay state constructed")
	return &Gameplay{log: log}
}

func (g *Gameplay) Enter() {
	g.log.Log(logger.Info, "entering gameplay state")

	g.position = mgl32.Vec2{0, 0}
	g.scale = 1.0
	g.angle = 0.0
}

func (g *Gameplay) Update(dt float32, in input.Snapshot) {
	if in.IsKeyDown(input.KeyW) || in.IsKeyDown(input.KeyUp) {
		g.position[1] -= MoveSpeed * dt
	}
	if in.IsKeyDown(input.KeyS) || in.IsKeyDown(input.KeyDown) {
		g.position[1] += MoveSpeed * dt
	}
	if in.IsKeyDown(input.KeyA) || in.IsKeyDown(input.KeyLeft) {
		g.position[0] -= MoveSpeed * dt
	}
	if in.IsKeyDown(input.KeyD) || in.IsKeyDown(input.KeyRight) {
		g.position[0] += MoveSpeed * dt
	}

	if in.IsMouseLeftDown() {
		g.scale += scaleStep
	}
	if in.IsMouseRightDown() {
		g.angle += rotateStep
	}
}

// Draw recomputes the full world-view-projection transform from the current
// pose and submits one triangle. Nothing is cached between frames.
func (g *Gameplay) Draw(adapter gfx.RenderAdapter, proj mgl32.Mat4) {
	adapter.DrawTriangle(proj.Mul4(g.WorldTransform()), colors.Red)
}

// WorldTransform applies translation first, then rotation, then scale about
// the world origin; rotation and scale therefore act on the translated
// offset as well.
func (g *Gameplay) WorldTransform() mgl32.Mat4 {
	return mgl32.Scale3D(g.scale, g.scale, 1).
		Mul4(mgl32.HomogRotate3DZ(g.angle)).
		Mul4(mgl32.Translate3D(g.position[0], g.position[1], 0))
}

func (g *Gameplay) Exit() {
	g.log.Log(logger.Info, "exiting gameplay state")
}

// Pose accessors, read-only.
func (g *Gameplay) Position() mgl32.Vec2 { return g.position }
func (g *Gameplay) Scale() float32       { return g.scale }
func (g *Gameplay) Angle() float32       { return g.angle }
