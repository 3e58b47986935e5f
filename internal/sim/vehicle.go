package sim

// Vehicle is a straight-line mover on one of the four approaches.
// Position is the footprint center; Length runs along the heading.
type Vehicle struct {
	Dir    Direction
	X, Y   float64
	Speed  float64
	Length float64
	Width  float64
}

// RightOfWay is the slice of the coordinator a vehicle consults.
type RightOfWay interface {
	RightOfWay(dir Direction) bool
}

// Step advances the vehicle by Speed*dt along its heading. While its
// leading edge sits strictly inside the stop zone of its approach and
// the governing light is not Green, the displacement is zeroed and the
// vehicle holds. Once the leading edge reaches the intersection entry
// edge the vehicle is committed and never halts again, so a light
// change mid-crossing cannot freeze it inside the junction.
func (v *Vehicle) Step(dt float64, rw RightOfWay, g Geometry) {
	if dt < 0 {
		dt = 0
	}
	var dx, dy float64
	switch v.Dir {
	case North:
		dy = -v.Speed * dt
	case South:
		dy = v.Speed * dt
	case East:
		dx = v.Speed * dt
	case West:
		dx = -v.Speed * dt
	}
	if !rw.RightOfWay(v.Dir) && v.inStopZone(g) {
		dx, dy = 0, 0
	}
	v.X += dx
	v.Y += dy
}

// inStopZone reports whether the leading edge lies strictly inside the
// hysteresis band just before the intersection entry edge on this
// vehicle's approach side. Past the band the vehicle is committed.
func (v *Vehicle) inStopZone(g Geometry) bool {
	cx, cy := g.CenterX(), g.CenterY()
	half, zone := g.RoadHalfWidth, g.StopZone
	switch v.Dir {
	case North:
		lead := v.Y - v.Length/2
		return lead > cy+half && lead < cy+half+zone
	case South:
		lead := v.Y + v.Length/2
		return lead > cy-half-zone && lead < cy-half
	case East:
		lead := v.X + v.Length/2
		return lead > cx-half-zone && lead < cx-half
	case West:
		lead := v.X - v.Length/2
		return lead > cx+half && lead < cx+half+zone
	}
	return false
}

// OutOfBounds reports whether the vehicle has left the world rectangle
// by more than the cull margin on any side.
func (v *Vehicle) OutOfBounds(g Geometry) bool {
	m := g.CullMargin
	return v.X < -m || v.X > g.WorldWidth+m || v.Y < -m || v.Y > g.WorldHeight+m
}
