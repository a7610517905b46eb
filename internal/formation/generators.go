package formation

import "math"

const (
	gridGap     = 30.0
	gridHeight  = -200.0
	sphereRad   = 250.0
	ringRadius  = 90.0
	ringCount   = 5
	ringJitter  = 5.0
	ringDepth   = 10.0
	helixTurns  = 5
	helixHeight = 600.0
	helixRadius = 150.0
)

// Grid lays the drones out on the ground in a square-ish lattice.
func (g *Generator) Grid(count int, spacing float64) Formation {
	out := make(Formation, 0, count)
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	gap := gridGap * spacing
	offset := float64(cols) * gap / 2
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols
		out = append(out, Point{
			X:     float64(col)*gap - offset,
			Y:     gridHeight,
			Z:     float64(row)*gap - offset,
			Color: g.palette.White,
		})
	}
	return out
}

// Sphere distributes the drones over a Fibonacci lattice.
func (g *Generator) Sphere(count int, spacing float64) Formation {
	out := make(Formation, 0, count)
	radius := sphereRad * spacing
	golden := (1 + math.Sqrt(5)) / 2
	for i := 0; i < count; i++ {
		theta := 2 * math.Pi * float64(i) / golden
		phi := math.Acos(1 - 2*(float64(i)+0.5)/float64(count))
		c := g.palette.White
		if i%2 == 0 {
			c = g.palette.Drone
		}
		out = append(out, Point{
			X:     radius * math.Sin(phi) * math.Cos(theta),
			Y:     radius * math.Sin(phi) * math.Sin(theta),
			Z:     radius * math.Cos(phi),
			Color: c,
		})
	}
	return out
}

type ring struct {
	x, y  float64
	color Color
}

// Rings draws the five-ring logo. Each ring gets count/5 drones; the
// remainder is scattered across the sky in white.
func (g *Generator) Rings(count int, spacing float64) Formation {
	out := make(Formation, 0, count)
	rings := [ringCount]ring{
		{-220 * spacing, 50 * spacing, g.palette.Blue},
		{0, 50 * spacing, g.palette.Black},
		{220 * spacing, 50 * spacing, g.palette.Red},
		{-110 * spacing, -50 * spacing, g.palette.Yellow},
		{110 * spacing, -50 * spacing, g.palette.Green},
	}
	perRing := count / ringCount
	radius := ringRadius * spacing
	for _, r := range rings {
		for i := 0; i < perRing; i++ {
			angle := float64(i) / float64(perRing) * math.Pi * 2
			out = append(out, Point{
				X:     r.x + math.Cos(angle)*(radius+g.randomRange(-ringJitter, ringJitter)),
				Y:     r.y + math.Sin(angle)*(radius+g.randomRange(-ringJitter, ringJitter)),
				Z:     g.randomRange(-ringDepth, ringDepth),
				Color: r.color,
			})
		}
	}
	for len(out) < count {
		out = append(out, Point{
			X:     g.randomRange(-400, 400),
			Y:     g.randomRange(-300, 300),
			Z:     g.randomRange(-100, 100),
			Color: g.palette.White,
		})
	}
	return out
}

// Helix builds two interleaved strands; even indices run half a turn
// ahead of odd ones.
func (g *Generator) Helix(count int, spacing float64) Formation {
	out := make(Formation, 0, count)
	height := helixHeight * spacing
	radius := helixRadius * spacing
	for i := 0; i < count; i++ {
		progress := float64(i) / float64(count)
		angle := progress * math.Pi * 2 * helixTurns
		c := g.palette.Magenta
		if i%2 == 0 {
			angle += math.Pi
			c = g.palette.Drone
		}
		out = append(out, Point{
			X:     math.Cos(angle) * radius,
			Y:     progress*height - height/2,
			Z:     math.Sin(angle) * radius,
			Color: c,
		})
	}
	return out
}
