package scene

import (
	"testing"

	"github.com/agiangrant/immersive/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderState(t *testing.T) {
	r := NewRecorder()
	parent := r.CreateGroup()
	q := r.CreateQuad([2]float32{1, 2})

	r.SetParent(q, parent)
	r.SetDrawOrder(q, 50010)
	r.SetStencilFunc(q, StencilFunc{Compare: CompareEqual, Ref: 11, Pass: OpIncr})
	r.SetColorWrite(q, false)
	r.SetVisible(q, false)
	r.SetColor(q, 0xFF0000FF)
	r.SetPosition(q, [3]float32{0.5, -0.5, 0})
	r.SetVertices(q, [][3]float32{{0, 0, 0}, {1, 0, 0}})

	rec, ok := r.Record(q)
	require.True(t, ok)
	assert.Equal(t, KindQuad, rec.Kind)
	assert.Equal(t, [2]float32{1, 2}, rec.Size)
	assert.Equal(t, parent, rec.Parent)
	assert.Equal(t, 50010, rec.DrawOrder)
	assert.Equal(t, StencilFunc{CompareEqual, 11, OpIncr}, rec.Stencil)
	assert.False(t, rec.ColorWrite)
	assert.False(t, rec.Visible)
	assert.Equal(t, uint32(0xFF0000FF), rec.Color)
	assert.Equal(t, [3]float32{0.5, -0.5, 0}, rec.Position)
	assert.Len(t, rec.Vertices, 2)

	assert.Equal(t, []Handle{parent, q}, r.Handles())
	assert.Equal(t, 2, r.Live())
	r.Release(q)
	assert.Equal(t, 1, r.Live())
	assert.Panics(t, func() { r.SetVisible(q, true) })
	assert.Panics(t, func() { r.SetVisible(Handle(99), true) })
}

func TestRecorderMeasure(t *testing.T) {
	r := NewRecorder()
	h := r.CreateText("hello big world")
	r.SetLineHeight(h, 0.1)

	box := r.MeasureBoundingBox(h)
	assert.InDelta(t, 15*0.5*0.1, box.Width, 1e-6)
	assert.InDelta(t, 0.1, box.Height, 1e-6)

	r.SetWrapWidth(h, 9)
	assert.Equal(t, []string{"hello big", "world"}, r.Lines(h))
	box = r.MeasureBoundingBox(h)
	assert.InDelta(t, 9*0.5*0.1, box.Width, 1e-6)
	assert.InDelta(t, 0.2, box.Height, 1e-6)
}

func TestRecorderBatchesToTransport(t *testing.T) {
	tr := wire.NewBufferTransport()
	r := NewRecorder(WithTransport(tr))
	ctx := NewContext(r)

	// an unbatched call is its own batch
	q := r.CreateQuad([2]float32{1, 1})
	require.Len(t, tr.Batches(), 1)

	err := ctx.Batch(func() {
		r.SetDrawOrder(q, 1)
		ctx.Batch(func() {
			r.SetVisible(q, false)
		})
		r.SetColorWrite(q, false)
	})
	require.NoError(t, err)
	require.Len(t, tr.Batches(), 2)

	cmds, err := wire.Decode(tr.Batches()[1])
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, wire.CmdSetDrawOrder, cmds[0].Type)
	assert.Equal(t, wire.CmdSetVisible, cmds[1].Type)
	assert.Equal(t, wire.CmdSetColorWrite, cmds[2].Type)
	assert.Equal(t, 4, r.Calls())
}

func TestRecorderBatchError(t *testing.T) {
	tr := wire.NewBufferTransport()
	require.NoError(t, tr.Close())
	r := NewRecorder(WithTransport(tr))
	ctx := NewContext(r)

	err := ctx.Batch(func() { r.CreateGroup() })
	assert.ErrorIs(t, err, wire.ErrClosed)
}
