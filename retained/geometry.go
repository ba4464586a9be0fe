package retained

import "github.com/chewxy/math32"

// cornerStep is the angular step, in degrees, of rounded corners.
const cornerStep = 5

// quadVertices builds a rounded rectangle as a triangle fan centered on
// the origin, y up: the center, four corners counter-clockwise starting
// at the upper left, and a closing vertex. The radius is clamped to half
// the shorter side; a zero radius gives plain corners.
func quadVertices(size Vec2, radius float32) [][3]float32 {
	w, h := size[0]/2, size[1]/2
	radius = math32.Max(0, math32.Min(radius, math32.Min(w, h)))
	step := 90
	if radius > 0 {
		step = cornerStep
	}

	perCorner := 90/step + 1
	verts := make([][3]float32, 0, 2+4*perCorner)
	verts = append(verts, [3]float32{0, 0, 0})

	corner := func(cx, cy, sx, sy float32, swap bool) {
		for deg := 0; deg <= 90; deg += step {
			rad := float32(deg) * math32.Pi / 180
			a, b := math32.Sin(rad)*radius, math32.Cos(rad)*radius
			if swap {
				a, b = b, a
			}
			verts = append(verts, [3]float32{cx + sx*a, cy + sy*b, 0})
		}
	}
	corner(-w+radius, h-radius, -1, 1, false)
	corner(-w+radius, -h+radius, -1, -1, true)
	corner(w-radius, -h+radius, 1, -1, false)
	corner(w-radius, h-radius, 1, 1, true)

	return append(verts, [3]float32{-w + radius, h, 0})
}

// sceneOffset converts a top-left, y-down position inside a frame of
// frameSize into the scene's center-to-center, y-up offset.
func sceneOffset(pos, size, frameSize Vec2) [3]float32 {
	return [3]float32{
		pos[0] + size[0]/2 - frameSize[0]/2,
		-(pos[1] + size[1]/2 - frameSize[1]/2),
		0,
	}
}
