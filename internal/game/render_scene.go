package game

import (
	"crossing/internal/sim"
)

// Palette of the reference layout.
type rgba struct{ r, g, b, a float32 }

func rgb(r, g, b uint8) rgba {
	return rgba{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

var (
	colBackground = rgb(34, 40, 49)
	colRoad       = rgb(50, 50, 50)
	colLane       = rgb(200, 200, 200)
	colCar        = rgb(255, 165, 0)
	colRed        = rgb(220, 20, 60)
	colYellow     = rgb(255, 215, 0)
	colGreen      = rgb(0, 200, 0)
	colSignalBox  = rgb(20, 20, 20)
	colLampOff    = rgb(60, 60, 60)
)

// Signal head dimensions in world units.
const (
	headW    = 40
	headH    = 120
	lampSize = 24
	laneDash = 30
	laneGap  = 60
)

// DrawScene queues the whole frame: road bands, lane dashes, the two
// signal heads and every active vehicle.
func DrawScene(r *Renderer, s *sim.Simulation) {
	g := s.Config().Geometry
	cx := float32(g.CenterX())
	cy := float32(g.CenterY())
	w := float32(g.WorldWidth)
	h := float32(g.WorldHeight)
	half := float32(g.RoadHalfWidth)

	// Road bands.
	r.PushRect(0, cy-half, w, 2*half, colRoad.r, colRoad.g, colRoad.b, colRoad.a)
	r.PushRect(cx-half, 0, 2*half, h, colRoad.r, colRoad.g, colRoad.b, colRoad.a)

	// Dashed center lines along both roads.
	for off := -h / 2; off < h/2; off += laneGap {
		r.PushRect(cx-1.5, cy+off, 3, laneDash, colLane.r, colLane.g, colLane.b, colLane.a)
	}
	for off := -w / 2; off < w/2; off += laneGap {
		r.PushRect(cx+off, cy-1.5, laneDash, 3, colLane.r, colLane.g, colLane.b, colLane.a)
	}

	// Signal heads sit on the north-west and north-east corners.
	lights := s.Lights()
	drawSignalHead(r, cx-half-20, cy-half-20, lights[0].Phase)
	drawSignalHead(r, cx+half-20, cy-half-20, lights[1].Phase)

	// Vehicles: length runs along the heading.
	for _, v := range s.Vehicles() {
		x, y := float32(v.X), float32(v.Y)
		l, wd := float32(v.Length), float32(v.Width)
		if v.Dir.Axis() == sim.NorthSouth {
			r.PushRect(x-wd/2, y-l/2, wd, l, colCar.r, colCar.g, colCar.b, colCar.a)
		} else {
			r.PushRect(x-l/2, y-wd/2, l, wd, colCar.r, colCar.g, colCar.b, colCar.a)
		}
	}
}

// drawSignalHead draws one box with its red/yellow/green lamps from
// the top; only the lamp matching the current phase is lit.
func drawSignalHead(r *Renderer, x, y float32, phase sim.LightPhase) {
	r.PushRect(x, y, headW, headH, colSignalBox.r, colSignalBox.g, colSignalBox.b, colSignalBox.a)
	for i, p := range [3]sim.LightPhase{sim.Red, sim.Yellow, sim.Green} {
		col := colLampOff
		if p == phase {
			switch p {
			case sim.Red:
				col = colRed
			case sim.Yellow:
				col = colYellow
			case sim.Green:
				col = colGreen
			}
		}
		r.PushLamp(x+headW/2, y+20+float32(i)*40, lampSize, col.r, col.g, col.b, col.a)
	}
}
