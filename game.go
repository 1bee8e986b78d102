package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Zoxc/game/assets"
	"github.com/Zoxc/game/common"
	"github.com/Zoxc/game/obj"
	"github.com/Zoxc/game/tuning"
)

// startX is the character's spawn offset from the left edge.
const startX = 50

// maxFrameTime caps the measured frame delta so a dragged or suspended
// window cannot catapult the character on the next update.
const maxFrameTime = 100 * time.Millisecond

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	lastTick time.Time
	started  bool

	spec     tuning.Spec
	input    *obj.Input
	entity   *obj.Entity
	backdrop *obj.Backdrop
	watcher  *tuning.Watcher
	pauseUI  *pauseUI
}

func NewGame(debug, watch bool) *Game {
	spec, err := tuning.LoadSpec("tuning.yaml")
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}

	groundHeight := groundHeightFor(spec)

	idle := obj.NewSprite(assets.Guy)
	running := obj.NewSprite(assets.GuyRunning)

	g := &Game{
		debug:  debug,
		spec:   spec,
		input:  obj.NewInput(),
		entity: obj.NewEntity(startX, groundHeight, spec.Physics, groundHeight, idle, running),
	}
	g.pauseUI = newPauseUI(g)

	if watch {
		w, err := tuning.NewWatcher("tuning")
		if err != nil {
			log.Fatalf("watch tuning: %v", err)
		}
		g.watcher = w
	}

	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.frames++
	g.input.Update()

	if g.input.PauseToggled {
		if g.paused {
			g.resume()
		} else {
			g.paused = true
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollTuning()

	dt := g.frameTime()

	input := g.input.MoveX * g.spec.Physics.Drive
	var jump float64
	if g.input.JumpPressed {
		jump = g.spec.Physics.JumpImpulse
	}
	g.entity.Step(dt, input, jump)

	return nil
}

// resume unpauses and re-anchors the clock so the paused span doesn't
// count as frame time.
func (g *Game) resume() {
	g.paused = false
	g.lastTick = time.Now()
}

// frameTime returns the wall-clock seconds since the previous update. The
// first update reports zero so startup latency never becomes a physics step.
func (g *Game) frameTime() float64 {
	now := time.Now()
	if !g.started {
		g.started = true
		g.lastTick = now
		return 0
	}
	elapsed := now.Sub(g.lastTick)
	g.lastTick = now
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	return elapsed.Seconds()
}

// pollTuning drains pending hot-reload events without blocking the frame.
func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	reload := false
drain:
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("tuning watcher: %v", err)
		default:
			break drain
		}
	}
	if reload {
		g.reloadTuning()
	}
}

func (g *Game) reloadTuning() {
	spec, err := tuning.LoadSpec("tuning.yaml")
	if err != nil {
		// Keep the last good tuning; a half-saved file shouldn't kill the run.
		log.Printf("reload tuning: %v", err)
		return
	}
	g.spec = spec
	groundHeight := groundHeightFor(spec)
	g.entity.Retune(spec.Physics, groundHeight)
	if g.backdrop != nil {
		g.backdrop.Retune(int(groundHeight), spec.Look)
	}
	log.Printf("tuning reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.backdrop == nil {
		g.backdrop = obj.NewBackdrop(
			screen.Bounds().Dx(),
			screen.Bounds().Dy(),
			int(groundHeightFor(g.spec)),
			g.spec.Look,
		)
	}

	g.backdrop.Draw(screen)
	g.entity.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  pos: (%.1f, %.1f)  vel: (%.1f, %.1f)  grounded: %t",
			ebiten.ActualFPS(),
			g.entity.Position.X, g.entity.Position.Y,
			g.entity.Velocity.X, g.entity.Velocity.Y,
			g.entity.Grounded,
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func groundHeightFor(spec tuning.Spec) float64 {
	return spec.Physics.GroundFraction * common.BaseHeight
}
