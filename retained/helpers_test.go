package retained

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/immersive/scene"
	"github.com/agiangrant/immersive/theme"
)

const delta = 1e-5

func newTestTree(t *testing.T) (*Tree, *scene.Recorder) {
	t.Helper()
	rec := scene.NewRecorder()
	ctx := scene.NewContext(rec, scene.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return NewTree(ctx), rec
}

func newLoggedTree(t *testing.T) (*Tree, *scene.Recorder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	rec := scene.NewRecorder()
	ctx := scene.NewContext(rec, scene.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	return NewTree(ctx), rec, &buf
}

// flatTheme has square corners so minimum sizes are padding only.
func flatTheme() *theme.Theme {
	th := theme.Dark()
	th.CornerRadius = 0
	return th
}

func assertVec(t *testing.T, want, got Vec2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], delta, msgAndArgs...)
	assert.InDelta(t, want[1], got[1], delta, msgAndArgs...)
}

func assertPositions(t *testing.T, want, got []Vec2) {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assertVec(t, want[i], got[i], "item %d", i)
	}
}

func items(sizes ...Vec2) []Item {
	out := make([]Item, len(sizes))
	for i, s := range sizes {
		out[i] = Item{Size: s}
	}
	return out
}
