package obj

import (
	"math"
	"testing"

	"github.com/Zoxc/game/tuning"
)

const (
	testGround = 96.0
	testDt     = 0.016
)

func newTestEntity(t *testing.T) *Entity {
	t.Helper()
	return NewEntity(50, testGround, tuning.Default().Physics, testGround, nil, nil)
}

func TestStepGroundClampHolds(t *testing.T) {
	cases := []struct {
		name        string
		dt          float64
		input, jump float64
		steps       int
	}{
		{"zero_dt", 0, 0, 0, 1},
		{"resting", testDt, 0, 0, 100},
		{"driving", testDt, 1500, 0, 100},
		{"jump_and_fall", testDt, 0, 350, 600},
		{"large_dt", 0.25, -1500, 350, 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEntity(t)
			for s := 0; s < c.steps; s++ {
				e.Step(c.dt, c.input, c.jump)
				if e.Position.Y < testGround {
					t.Fatalf("step %d: position.Y = %v below ground %v", s, e.Position.Y, testGround)
				}
			}
		})
	}
}

func TestRestingEntityStaysPut(t *testing.T) {
	e := newTestEntity(t)
	e.Velocity.X = 40 // leftover speed, no input

	for s := 0; s < 400; s++ {
		e.Step(testDt, 0, 0)
		if e.Position.Y != testGround {
			t.Fatalf("step %d: position.Y = %v, want pinned at %v", s, e.Position.Y, testGround)
		}
		if !e.Grounded {
			t.Fatalf("step %d: entity should stay grounded", s)
		}
	}

	if math.Abs(e.Velocity.X) > 1e-6 {
		t.Fatalf("velocity.X = %v, should have decayed to ~0", e.Velocity.X)
	}
}

func TestDriveConvergesToTerminalSpeed(t *testing.T) {
	// input/drag = 1500/8 = 187.5 is the horizontal fixed point.
	e := newTestEntity(t)

	const eps = 1e-9
	prev := 0.0
	for s := 0; s < 500; s++ {
		e.Step(testDt, 1500, 0)
		if e.Velocity.X < prev-eps {
			t.Fatalf("step %d: velocity.X decreased (%v -> %v); approach should be monotone", s, prev, e.Velocity.X)
		}
		if e.Velocity.X > 187.5+eps {
			t.Fatalf("step %d: velocity.X = %v overshot 187.5", s, e.Velocity.X)
		}
		prev = e.Velocity.X
	}

	if e.Velocity.X < 187.4 {
		t.Fatalf("velocity.X = %v, want asymptotically close to 187.5", e.Velocity.X)
	}
	if e.Position.Y != testGround {
		t.Fatalf("position.Y = %v, horizontal drive must not leave the ground", e.Position.Y)
	}
}

func TestJumpImpulseIndependentOfDt(t *testing.T) {
	g := tuning.Default().Physics.Gravity()

	for _, dt := range []float64{0.008, 0.016, 0.05} {
		e := newTestEntity(t)
		e.Step(dt, 0, 350)

		want := 350 + g*dt
		if math.Abs(e.Velocity.Y-want) > 1e-9 {
			t.Fatalf("dt=%v: velocity.Y = %v, want %v", dt, e.Velocity.Y, want)
		}
		if e.Position.Y <= testGround {
			t.Fatalf("dt=%v: position.Y = %v, should be airborne after jump", dt, e.Position.Y)
		}
		if e.Grounded {
			t.Fatalf("dt=%v: entity still flagged grounded after leaving the plane", dt)
		}
	}
}

func TestAirborneIgnoresJumpAndHalvesInput(t *testing.T) {
	e := newTestEntity(t)
	e.Step(testDt, 0, 350)
	if e.Grounded {
		t.Fatalf("setup: entity should be airborne")
	}

	vy := e.Velocity.Y
	g := tuning.Default().Physics.Gravity()

	// A second jump impulse must be discarded.
	e.Step(testDt, 0, 350)
	want := vy + (g-0.2*vy)*testDt
	if math.Abs(e.Velocity.Y-want) > 1e-9 {
		t.Fatalf("velocity.Y = %v, want %v (air jump must be ignored)", e.Velocity.Y, want)
	}

	// Horizontal input is attenuated to half while airborne.
	airborne := newTestEntity(t)
	airborne.Step(testDt, 0, 350)
	airborne.Step(testDt, 1500, 0)

	grounded := newTestEntity(t)
	grounded.Step(testDt, 750, 0)

	if math.Abs(airborne.Velocity.X-grounded.Velocity.X) > 1e-9 {
		t.Fatalf("air input attenuation: airborne vx = %v, grounded half-input vx = %v",
			airborne.Velocity.X, grounded.Velocity.X)
	}
}

func TestLandingClampsAndZeroesVerticalVelocity(t *testing.T) {
	e := newTestEntity(t)
	e.Step(testDt, 0, 350)

	for s := 0; s < 1000 && !e.Grounded; s++ {
		e.Step(testDt, 0, 0)
	}

	if !e.Grounded {
		t.Fatalf("entity never landed")
	}
	if e.Position.Y != testGround {
		t.Fatalf("position.Y = %v, want snapped to %v", e.Position.Y, testGround)
	}
	if e.Velocity.Y != 0 {
		t.Fatalf("velocity.Y = %v, want zeroed by the clamp", e.Velocity.Y)
	}
}

func TestDirectionFlipsWhenVelocityCrossesZero(t *testing.T) {
	e := newTestEntity(t)

	for s := 0; s < 20; s++ {
		e.Step(testDt, 1500, 0)
	}
	if e.Direction != 1 {
		t.Fatalf("direction = %v after driving right, want +1", e.Direction)
	}

	flipped := false
	for s := 0; s < 200; s++ {
		e.Step(testDt, -1500, 0)
		if e.Velocity.X < 0 && !flipped {
			if e.Direction != -1 {
				t.Fatalf("step %d: velocity.X = %v crossed zero but direction = %v", s, e.Velocity.X, e.Direction)
			}
			flipped = true
		}
		if e.Velocity.X > 0 && e.Direction != 1 {
			t.Fatalf("step %d: direction flipped early (vx = %v)", s, e.Velocity.X)
		}
	}
	if !flipped {
		t.Fatalf("velocity.X never crossed zero")
	}
}

func TestDirectionKeptWhileStill(t *testing.T) {
	e := newTestEntity(t)
	e.Direction = -1
	e.Step(testDt, 0, 0)
	if e.Direction != -1 {
		t.Fatalf("direction = %v, zero velocity must not reset it", e.Direction)
	}
}

func TestRunThresholdIsStrict(t *testing.T) {
	cases := []struct {
		name string
		vx   float64
		want bool
	}{
		{"still", 0, false},
		{"below", 9.99, false},
		{"exactly_threshold", 10.0, false},
		{"exactly_threshold_left", -10.0, false},
		{"above", 10.01, true},
		{"above_left", -10.01, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEntity(t)
			e.Velocity.X = c.vx
			if got := e.IsRunning(); got != c.want {
				t.Fatalf("IsRunning() with vx=%v = %v, want %v", c.vx, got, c.want)
			}
		})
	}
}

func TestRetuneChangesIntegrator(t *testing.T) {
	e := newTestEntity(t)

	phys := tuning.Default().Physics
	phys.Drive = 0
	phys.HorizontalDrag = 16
	e.Retune(phys, testGround)

	e.Velocity.X = 100
	e.Step(testDt, 0, 0)
	want := 100 + (0-16*100.0)*testDt
	if math.Abs(e.Velocity.X-want) > 1e-9 {
		t.Fatalf("velocity.X = %v after retune, want %v", e.Velocity.X, want)
	}
}
