package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zoxc/game/common"
	"github.com/Zoxc/game/tuning"
)

// Entity is the controllable character: a point mass on a ground plane with
// a bottom-center anchored sprite. Position is in world units with Y
// measured upward from the bottom of the frame.
type Entity struct {
	Position common.Vec2
	Velocity common.Vec2
	// Direction is the sign of the last nonzero horizontal velocity, ±1.
	// Used to mirror the sprite.
	Direction float64
	// Grounded is maintained by the ground clamp in Step. An explicit flag
	// avoids comparing accumulated floats against the plane height.
	Grounded bool

	idle    *Sprite
	running *Sprite

	phys         tuning.Physics
	groundHeight float64
}

func NewEntity(x, y float64, phys tuning.Physics, groundHeight float64, idle, running *Sprite) *Entity {
	return &Entity{
		Position:     common.Vec2{X: x, Y: y},
		Direction:    1,
		Grounded:     y <= groundHeight,
		idle:         idle,
		running:      running,
		phys:         phys,
		groundHeight: groundHeight,
	}
}

// Retune swaps the integrator coefficients, used by the live tuning reload.
func (e *Entity) Retune(phys tuning.Physics, groundHeight float64) {
	e.phys = phys
	e.groundHeight = groundHeight
}

// Step advances the entity by one frame of dt seconds. input is the
// horizontal drive force and jump the instantaneous jump impulse; both come
// straight from the control state. Forward Euler on both axes.
func (e *Entity) Step(dt, input, jump float64) {
	// No jumping mid-air, and reduced air control.
	if !e.Grounded {
		jump = 0
		input *= e.phys.AirControl
	}

	gravity := e.phys.Gravity()

	e.Velocity.X += (input - e.phys.HorizontalDrag*e.Velocity.X) * dt

	// The jump impulse is deliberately not scaled by dt: jump height stays
	// the same under irregular frame times.
	e.Velocity.Y += jump + (gravity-e.phys.VerticalDrag*e.Velocity.Y)*dt

	e.Position = e.Position.Add(e.Velocity.Scale(dt))

	if e.Velocity.X != 0 {
		e.Direction = math.Copysign(1, e.Velocity.X)
	}

	// Snap to the ground plane.
	if e.Position.Y < e.groundHeight {
		e.Position.Y = e.groundHeight
		e.Velocity.Y = 0
		e.Grounded = true
	} else if e.Position.Y > e.groundHeight {
		e.Grounded = false
	}
}

// IsRunning reports whether the running sprite should be shown. The
// threshold is strict: at exactly RunThreshold the idle sprite is kept.
func (e *Entity) IsRunning() bool {
	return math.Abs(e.Velocity.X) > e.phys.RunThreshold
}

// Draw composites the character onto screen. World Y grows upward, screen Y
// downward, so the vertical coordinate flips against the frame height. A
// negative Direction mirrors the sprite in place around its draw origin.
func (e *Entity) Draw(screen *ebiten.Image) {
	sprite := e.idle
	if e.IsRunning() {
		sprite = e.running
	}
	if sprite == nil {
		return
	}

	frameHeight := float64(screen.Bounds().Dy())
	drawX := e.Position.X + sprite.Offset.X
	drawY := frameHeight - (e.Position.Y + sprite.Offset.Y)

	op := &ebiten.DrawImageOptions{}
	if e.Direction < 0 {
		op.GeoM.Scale(-1, 1)
		// When flipped, translate by the sprite width so it stays in place.
		op.GeoM.Translate(drawX+sprite.Width(), drawY)
	} else {
		op.GeoM.Translate(drawX, drawY)
	}
	screen.DrawImage(sprite.Image, op)
}
