package sim

// Axis identifies one of the two perpendicular roads through the crossing.
type Axis int

const (
	NorthSouth Axis = iota
	EastWest
)

func (a Axis) String() string {
	if a == NorthSouth {
		return "north-south"
	}
	return "east-west"
}

// Direction is a cardinal heading for a vehicle.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Axis returns the road axis this heading travels along.
func (d Direction) Axis() Axis {
	if d == North || d == South {
		return NorthSouth
	}
	return EastWest
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	}
	return "west"
}

// LightPhase cycles Green -> Yellow -> Red -> Green.
type LightPhase int

const (
	Green LightPhase = iota
	Yellow
	Red
)

func (p LightPhase) String() string {
	switch p {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	}
	return "red"
}

// TrafficLight is the timer state machine for one axis. phaseStart is
// the simulated time (ms) at which the current phase began.
type TrafficLight struct {
	axis       Axis
	phase      LightPhase
	phaseStart int64
}

// advance transitions at most one phase per call. A frame that
// overshoots more than one threshold still advances a single phase;
// the coordinator calls this every frame so the drift stays below one
// frame delta and no catch-up logic is needed.
func (l *TrafficLight) advance(now int64, t Timing) bool {
	elapsed := now - l.phaseStart
	switch {
	case l.phase == Green && elapsed >= t.GreenMs:
		l.phase = Yellow
	case l.phase == Yellow && elapsed >= t.YellowMs:
		l.phase = Red
	case l.phase == Red && elapsed >= t.GreenMs+t.YellowMs:
		// A full red lasts the other axis' green+yellow, keeping
		// both cycles on the same total period.
		l.phase = Green
	default:
		return false
	}
	l.phaseStart = now
	return true
}

// rightOfWay reports whether this light lets a vehicle with the given
// heading proceed. Yellow denies: a vehicle not yet committed past the
// stop zone must hold.
func (l *TrafficLight) rightOfWay(dir Direction) bool {
	return l.axis == dir.Axis() && l.phase == Green
}

// LightState is a read-only snapshot of one signal, for rendering.
type LightState struct {
	Axis  Axis
	Phase LightPhase
}

// Coordinator owns both lights and keeps them mutually exclusive. The
// NorthSouth leader free-runs its own timer; the EastWest follower is
// pinned to Red whenever the leader is not Red and runs its own cycle
// only while the leader stays Red. The two axes can therefore never
// both be non-Red at the same time.
//
// Neither light is reachable for independent mutation from outside;
// all access goes through Advance, RightOfWay and Lights.
type Coordinator struct {
	timing   Timing
	leader   TrafficLight
	follower TrafficLight
}

func NewCoordinator(t Timing) *Coordinator {
	return &Coordinator{
		timing:   t,
		leader:   TrafficLight{axis: NorthSouth, phase: Green},
		follower: TrafficLight{axis: EastWest, phase: Red},
	}
}

// Advance steps the leader, then slaves the follower to it. It reports
// which of the two lights changed phase this call.
func (c *Coordinator) Advance(now int64) (leaderChanged, followerChanged bool) {
	leaderChanged = c.leader.advance(now, c.timing)
	switch {
	case c.leader.phase != Red:
		// Pin the follower and hold its clock at zero so no partial
		// state from a previous cycle survives into the next one.
		followerChanged = c.follower.phase != Red
		c.follower.phase = Red
		c.follower.phaseStart = now
	case leaderChanged:
		// The leader just turned Red: the follower begins its own
		// Green cycle from zero this very step.
		c.follower.phase = Green
		c.follower.phaseStart = now
		followerChanged = true
	default:
		followerChanged = c.follower.advance(now, c.timing)
	}
	return leaderChanged, followerChanged
}

// RightOfWay delegates to the light governing the heading's axis.
func (c *Coordinator) RightOfWay(dir Direction) bool {
	if dir.Axis() == NorthSouth {
		return c.leader.rightOfWay(dir)
	}
	return c.follower.rightOfWay(dir)
}

// Lights returns snapshots of both signals, leader first.
func (c *Coordinator) Lights() [2]LightState {
	return [2]LightState{
		{Axis: c.leader.axis, Phase: c.leader.phase},
		{Axis: c.follower.axis, Phase: c.follower.phase},
	}
}
