package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepOrder(t *testing.T) {
	s := New(Default(), 1)

	// Spawns land before the motion pass, so all four vehicles of the
	// first frame have already moved one step off their spawn points.
	s.Step(0, 1.0/60)
	vs := s.Vehicles()
	assert.Len(t, vs, 4)
	step := 120.0 / 60
	for _, v := range vs {
		switch v.Dir {
		case South:
			assert.InDelta(t, -30+step, v.Y, 1e-9)
		case North:
			assert.InDelta(t, 630-step, v.Y, 1e-9)
		case East:
			assert.InDelta(t, -30+step, v.X, 1e-9)
		case West:
			assert.InDelta(t, 930-step, v.X, 1e-9)
		}
	}
}

func TestCulling(t *testing.T) {
	s := New(Default(), 1)
	var culled []Event
	s.Events().Subscribe(EventVehicleCulled, func(e Event) { culled = append(culled, e) })

	s.vehicles = append(s.vehicles, testVehicle(West, -60, 280))
	s.Step(0, 1.0/60)

	for _, v := range s.Vehicles() {
		assert.False(t, v.OutOfBounds(Default().Geometry), "culled vehicle survived at (%v,%v)", v.X, v.Y)
	}
	assert.Len(t, culled, 1)
	assert.Equal(t, West, culled[0].Dir)
}

func TestPauseGate(t *testing.T) {
	s := New(Default(), 1)
	s.Step(0, 1.0/60)
	lights := s.Lights()
	vehicles := append([]Vehicle(nil), s.Vehicles()...)

	s.Paused = true
	for now := int64(16); now < 20_000; now += 16 {
		s.Step(now, 1.0/60)
	}
	assert.Equal(t, lights, s.Lights())
	assert.Equal(t, vehicles, s.Vehicles())
}

func TestNegativeDtClamped(t *testing.T) {
	s := New(Default(), 1)
	s.Step(0, -5)
	for _, v := range s.Vehicles() {
		switch v.Dir {
		case South:
			assert.Equal(t, -30.0, v.Y)
		case North:
			assert.Equal(t, 630.0, v.Y)
		case East:
			assert.Equal(t, -30.0, v.X)
		case West:
			assert.Equal(t, 930.0, v.X)
		}
	}
}

func TestLightChangeEvents(t *testing.T) {
	s := New(Default(), 1)
	var events []Event
	s.Events().Subscribe(EventLightChanged, func(e Event) { events = append(events, e) })

	for now := int64(0); now <= 8000; now += 100 {
		s.Step(now, 0.1)
	}

	if assert.GreaterOrEqual(t, len(events), 3) {
		assert.Equal(t, LightState{NorthSouth, Yellow}, LightState{events[0].Axis, events[0].Phase})
		assert.Equal(t, LightState{NorthSouth, Red}, LightState{events[1].Axis, events[1].Phase})
		assert.Equal(t, LightState{EastWest, Green}, LightState{events[2].Axis, events[2].Phase})
	}
}

func TestMutualExclusionUnderLoad(t *testing.T) {
	s := New(Default(), 0xBEEF)
	g := Default().Geometry
	for now := int64(0); now <= 120_000; now += 16 {
		s.Step(now, 0.016)
		ls := s.Lights()
		assert.False(t, ls[0].Phase != Red && ls[1].Phase != Red, "both non-red at t=%d", now)
		for _, v := range s.Vehicles() {
			assert.False(t, v.OutOfBounds(g))
		}
	}
	// Traffic actually flowed on both axes.
	assert.NotEmpty(t, s.Vehicles())
}

func TestEventBusFanOut(t *testing.T) {
	bus := NewEventBus()
	var a, b int
	bus.Subscribe(EventVehicleSpawned, func(Event) { a++ })
	bus.Subscribe(EventVehicleSpawned, func(Event) { b++ })
	bus.Subscribe(EventVehicleCulled, func(Event) { a += 100 })

	bus.Emit(Event{Type: EventVehicleSpawned})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
