package game

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"crossing/internal/sim"
)

// Run opens the window and drives the simulation at the display rate.
// Space toggles pause, Escape quits. It blocks until the window
// closes.
func Run(cfg sim.Config, seed uint64) error {
	runtime.LockOSThread()

	window, err := initWindow(int(cfg.Geometry.WorldWidth), int(cfg.Geometry.WorldHeight))
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if err := InitAudio(); err != nil {
		slog.Warn("audio init failed, continuing without sound", "err", err)
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(colBackground.r, colBackground.g, colBackground.b, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	s := sim.New(cfg, seed)
	s.Events().Subscribe(sim.EventLightChanged, func(sim.Event) {
		PlaySound(SoundLightChange)
	})

	input := NewInput()

	// Simulated clock in ms. Frozen while paused: phase timers measure
	// simulated time, so a pause must not advance it.
	var simMS float64

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			s.Paused = !s.Paused
			PlaySound(SoundPause)
			slog.Info("pause toggled", "paused", s.Paused)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if !s.Paused {
			simMS += dt * 1000
			s.Step(int64(simMS), dt)
		}

		rend.BeginFrame(fbW, fbH)
		DrawScene(rend, s)
		rend.Flush(cfg.Geometry.WorldWidth, cfg.Geometry.WorldHeight, fbW)
		window.SwapBuffers()
	}
	return nil
}
