package sim

// Simulation owns the whole mutable state of one run and advances it
// one frame at a time. Every Step is a synchronous transformation of
// (now, dt) into the next state; nothing here blocks or yields.
type Simulation struct {
	// Paused gates Step. The caller must also stop advancing the
	// simulated clock while set: phase timers measure simulated time,
	// so time elapsed during a pause must never reach them.
	Paused bool

	cfg      Config
	lights   *Coordinator
	spawners [4]*Spawner
	vehicles []Vehicle
	bus      *EventBus
}

func New(cfg Config, seed uint64) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		lights:   NewCoordinator(cfg.Lights),
		vehicles: make([]Vehicle, 0, 64),
		bus:      NewEventBus(),
	}
	for i, dir := range []Direction{North, South, East, West} {
		s.spawners[i] = NewSpawner(dir, cfg, splitmix64(seed^uint64(dir)*0x9E3779B97F4A7C15))
	}
	return s
}

// Step advances lights, spawners and vehicles for one frame. The
// order matters: lights resolve first so vehicles consult this frame's
// phases, and spawns land before the motion pass so a new vehicle
// moves on the frame it appears. A negative dt is clamped to zero.
func (s *Simulation) Step(now int64, dt float64) {
	if s.Paused {
		return
	}
	if dt < 0 {
		dt = 0
	}

	leaderChanged, followerChanged := s.lights.Advance(now)
	if leaderChanged || followerChanged {
		ls := s.lights.Lights()
		if leaderChanged {
			s.bus.Emit(Event{Type: EventLightChanged, Axis: ls[0].Axis, Phase: ls[0].Phase})
		}
		if followerChanged {
			s.bus.Emit(Event{Type: EventLightChanged, Axis: ls[1].Axis, Phase: ls[1].Phase})
		}
	}

	for _, sp := range s.spawners {
		n := len(s.vehicles)
		s.vehicles = sp.Step(now, s.vehicles)
		if len(s.vehicles) > n {
			s.bus.Emit(Event{Type: EventVehicleSpawned, Dir: sp.Direction()})
		}
	}

	// Two passes: move everything first, then compact survivors, so
	// removal never skips or double-processes an element.
	for i := range s.vehicles {
		s.vehicles[i].Step(dt, s.lights, s.cfg.Geometry)
	}
	alive := s.vehicles[:0]
	for _, v := range s.vehicles {
		if v.OutOfBounds(s.cfg.Geometry) {
			s.bus.Emit(Event{Type: EventVehicleCulled, Dir: v.Dir})
			continue
		}
		alive = append(alive, v)
	}
	s.vehicles = alive
}

// Lights returns read-only snapshots of both signals, leader first.
func (s *Simulation) Lights() [2]LightState { return s.lights.Lights() }

// Vehicles exposes the active set for rendering. Callers must not
// mutate or retain the slice past the next Step.
func (s *Simulation) Vehicles() []Vehicle { return s.vehicles }

// Events is the bus the shell subscribes to for audio cues.
func (s *Simulation) Events() *EventBus { return s.bus }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }
