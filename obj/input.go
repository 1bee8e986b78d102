package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the control state for one frame of the character demo.
//
// The keyboard is polled rather than event-counted: each binding is read as
// a boolean every frame and combined, so duplicate bindings (A and Left,
// D and Right) can never drift out of pairing the way a ±1 event
// accumulator can.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true only on the frame a jump key went down.
	JumpPressed bool
	// PauseToggled is true on the frame the pause key went down.
	PauseToggled bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad and refreshes the control state.
func (i *Input) Update() {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	i.MoveX = moveAxis(left, right)

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	i.PauseToggled = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	// Gamepad: left stick X and the primary face button.
	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			i.MoveX = -1
		} else if leftX > 0.3 {
			i.MoveX = 1
		}

		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.JumpPressed = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			i.PauseToggled = true
		}
	}
}

func moveAxis(left, right bool) float64 {
	var x float64
	if left {
		x -= 1
	}
	if right {
		x += 1
	}
	return x
}
