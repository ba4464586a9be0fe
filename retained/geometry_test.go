package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadVertices(t *testing.T) {
	tests := []struct {
		name   string
		size   Vec2
		radius float32
		count  int
		last   [3]float32
	}{
		{"rounded", Vec2{0.2, 0.1}, 0.01, 78, [3]float32{-0.09, 0.05, 0}},
		{"square", Vec2{0.2, 0.1}, 0, 10, [3]float32{-0.1, 0.05, 0}},
		{"clamped", Vec2{0.2, 0.1}, 1, 78, [3]float32{-0.05, 0.05, 0}},
		{"negative", Vec2{0.2, 0.1}, -1, 10, [3]float32{-0.1, 0.05, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := quadVertices(tt.size, tt.radius)
			assert.Len(t, v, tt.count)
			assert.Equal(t, [3]float32{0, 0, 0}, v[0])
			last := v[len(v)-1]
			for i := range last {
				assert.InDelta(t, tt.last[i], last[i], delta)
			}
			for _, p := range v {
				assert.LessOrEqual(t, abs32(p[0]), tt.size[0]/2+delta)
				assert.LessOrEqual(t, abs32(p[1]), tt.size[1]/2+delta)
			}
		})
	}
}

func TestQuadVerticesCorners(t *testing.T) {
	v := quadVertices(Vec2{0.2, 0.1}, 0)
	want := [][3]float32{
		{0, 0, 0},
		{-0.1, 0.05, 0}, {-0.1, 0.05, 0},
		{-0.1, -0.05, 0}, {-0.1, -0.05, 0},
		{0.1, -0.05, 0}, {0.1, -0.05, 0},
		{0.1, 0.05, 0}, {0.1, 0.05, 0},
		{-0.1, 0.05, 0},
	}
	for i := range want {
		for j := range 3 {
			assert.InDelta(t, want[i][j], v[i][j], delta, "vertex %d", i)
		}
	}
}

func TestSceneOffset(t *testing.T) {
	tests := []struct {
		name  string
		pos   Vec2
		size  Vec2
		frame Vec2
		want  [3]float32
	}{
		{"top left", Vec2{0, 0}, Vec2{0.5, 0.2}, Vec2{1, 1}, [3]float32{-0.25, 0.4, 0}},
		{"centered", Vec2{0.25, 0.25}, Vec2{0.5, 0.5}, Vec2{1, 1}, [3]float32{0, 0, 0}},
		{"no frame", Vec2{0.1, 0.1}, Vec2{0.2, 0.2}, Vec2{}, [3]float32{0.2, -0.2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sceneOffset(tt.pos, tt.size, tt.frame)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], delta)
			}
		})
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
