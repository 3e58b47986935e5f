package sim

// Spawner injects vehicles on one approach at random intervals.
type Spawner struct {
	dir   Direction
	x, y  float64
	proto VehicleDefaults
	min   int64
	max   int64
	next  int64 // simulated ms of the next scheduled spawn
	rng   *Rand
}

// NewSpawner places the spawn point just outside the world edge, on
// the right-hand lane for the heading (half a road half-width off the
// center line, matching the lane the vehicles drive in).
func NewSpawner(dir Direction, cfg Config, seed uint64) *Spawner {
	g := cfg.Geometry
	lane := g.RoadHalfWidth / 2
	cx, cy := g.CenterX(), g.CenterY()
	var x, y float64
	switch dir {
	case South:
		x, y = cx-lane, -g.SpawnMargin
	case North:
		x, y = cx+lane, g.WorldHeight+g.SpawnMargin
	case East:
		x, y = -g.SpawnMargin, cy+lane
	case West:
		x, y = g.WorldWidth+g.SpawnMargin, cy-lane
	}
	return &Spawner{
		dir:   dir,
		x:     x,
		y:     y,
		proto: cfg.Vehicles,
		min:   cfg.Spawn.MinIntervalMs,
		max:   cfg.Spawn.MaxIntervalMs,
		rng:   NewRand(seed),
	}
}

func (sp *Spawner) Direction() Direction { return sp.dir }

// Step appends at most one vehicle per call, however far now has run
// past the scheduled time; missed intervals are not caught up. The
// next spawn is drawn uniformly from [min, max] ms after now.
func (sp *Spawner) Step(now int64, vehicles []Vehicle) []Vehicle {
	if now < sp.next {
		return vehicles
	}
	vehicles = append(vehicles, Vehicle{
		Dir:    sp.dir,
		X:      sp.x,
		Y:      sp.y,
		Speed:  sp.proto.Speed,
		Length: sp.proto.Length,
		Width:  sp.proto.Width,
	})
	sp.next = now + int64(sp.rng.Range(int(sp.min), int(sp.max)))
	return vehicles
}
