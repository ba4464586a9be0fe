package scene

import (
	"sort"

	"github.com/agiangrant/immersive/internal/wire"
)

// Kind is the type of a recorded drawable.
type Kind uint8

const (
	KindQuad Kind = iota + 1
	KindGroup
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindQuad:
		return "quad"
	case KindGroup:
		return "group"
	case KindText:
		return "text"
	}
	return "unknown"
}

// DefaultGlyphAdvance is the width of one character as a fraction of the
// line height in the recorder's text metrics.
const DefaultGlyphAdvance = 0.5

// Record is the last state applied to one drawable.
type Record struct {
	Kind       Kind
	Size       [2]float32
	Vertices   [][3]float32
	Position   [3]float32
	Parent     Handle
	Color      uint32
	DrawOrder  int
	Stencil    StencilFunc
	Visible    bool
	ColorWrite bool
	Text       string
	LineHeight float32
	WrapWidth  int
	Released   bool
}

// Recorder is an in-memory Backend. It keeps the latest state of every
// drawable, measures text with fixed-advance metrics, and encodes every
// call so batches can be forwarded to a wire.Transport.
type Recorder struct {
	next      Handle
	records   map[Handle]*Record
	enc       wire.Encoder
	transport wire.Transport
	batching  bool
	advance   float32
	calls     int
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithTransport forwards every encoded batch to t.
func WithTransport(t wire.Transport) RecorderOption {
	return func(r *Recorder) { r.transport = t }
}

// WithGlyphAdvance sets the character width as a fraction of line height.
func WithGlyphAdvance(a float32) RecorderOption {
	return func(r *Recorder) { r.advance = a }
}

// NewRecorder creates an empty recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		records: make(map[Handle]*Record),
		advance: DefaultGlyphAdvance,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record returns a copy of the recorded state for h.
func (r *Recorder) Record(h Handle) (Record, bool) {
	rec, ok := r.records[h]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Handles returns every handle ever created, in creation order.
func (r *Recorder) Handles() []Handle {
	out := make([]Handle, 0, len(r.records))
	for h := range r.records {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Live returns the number of drawables not yet released.
func (r *Recorder) Live() int {
	n := 0
	for _, rec := range r.records {
		if !rec.Released {
			n++
		}
	}
	return n
}

// Calls returns the number of primitive calls received.
func (r *Recorder) Calls() int { return r.calls }

// BeginBatch implements Batcher.
func (r *Recorder) BeginBatch() { r.batching = true }

// EndBatch implements Batcher. It flushes the encoded batch.
func (r *Recorder) EndBatch() error {
	r.batching = false
	return r.flush()
}

func (r *Recorder) flush() error {
	if r.enc.Len() == 0 {
		return nil
	}
	defer r.enc.Reset()
	if r.transport == nil {
		return nil
	}
	return r.transport.ExecuteBatch(r.enc.Bytes())
}

// emit encodes one call. Outside a batch each call is its own batch.
func (r *Recorder) emit(cmd wire.CommandType, h Handle) *wire.Payload {
	r.calls++
	return r.enc.Begin(cmd).Uint32(uint32(h))
}

func (r *Recorder) done() {
	if !r.batching {
		// Unbatched calls have no caller to report to.
		_ = r.flush()
	}
}

func (r *Recorder) create(kind Kind) (Handle, *Record) {
	r.next++
	rec := &Record{Kind: kind, Visible: true, ColorWrite: true, Parent: World}
	r.records[r.next] = rec
	return r.next, rec
}

// get returns the record for h. Calls on unknown or released handles are
// programmer errors.
func (r *Recorder) get(h Handle) *Record {
	rec, ok := r.records[h]
	if !ok {
		panic("scene: unknown handle")
	}
	if rec.Released {
		panic("scene: use of released handle")
	}
	return rec
}

// CreateQuad implements Surface.
func (r *Recorder) CreateQuad(size [2]float32) Handle {
	h, rec := r.create(KindQuad)
	rec.Size = size
	r.emit(wire.CmdCreateQuad, h).Float32(size[0]).Float32(size[1])
	r.done()
	return h
}

// CreateGroup implements Surface.
func (r *Recorder) CreateGroup() Handle {
	h, _ := r.create(KindGroup)
	r.emit(wire.CmdCreateGroup, h)
	r.done()
	return h
}

// SetVertices implements Surface.
func (r *Recorder) SetVertices(h Handle, verts [][3]float32) {
	rec := r.get(h)
	rec.Vertices = append(rec.Vertices[:0], verts...)
	p := r.emit(wire.CmdSetVertices, h).Uint32(uint32(len(verts)))
	for _, v := range verts {
		p.Float32(v[0]).Float32(v[1]).Float32(v[2])
	}
	r.done()
}

// SetPosition implements Surface.
func (r *Recorder) SetPosition(h Handle, pos [3]float32) {
	r.get(h).Position = pos
	r.emit(wire.CmdSetPosition, h).Float32(pos[0]).Float32(pos[1]).Float32(pos[2])
	r.done()
}

// SetParent implements Surface.
func (r *Recorder) SetParent(h Handle, parent Handle) {
	if parent != World {
		r.get(parent)
	}
	r.get(h).Parent = parent
	r.emit(wire.CmdSetParent, h).Uint32(uint32(parent))
	r.done()
}

// SetColor implements Surface.
func (r *Recorder) SetColor(h Handle, rgba uint32) {
	r.get(h).Color = rgba
	r.emit(wire.CmdSetColor, h).Uint32(rgba)
	r.done()
}

// SetDrawOrder implements Surface.
func (r *Recorder) SetDrawOrder(h Handle, order int) {
	r.get(h).DrawOrder = order
	r.emit(wire.CmdSetDrawOrder, h).Int32(int32(order))
	r.done()
}

// SetStencilFunc implements Surface.
func (r *Recorder) SetStencilFunc(h Handle, fn StencilFunc) {
	r.get(h).Stencil = fn
	r.emit(wire.CmdSetStencilFunc, h).Uint32(uint32(fn.Compare)).Int32(int32(fn.Ref)).Uint32(uint32(fn.Pass))
	r.done()
}

// SetVisible implements Surface.
func (r *Recorder) SetVisible(h Handle, visible bool) {
	r.get(h).Visible = visible
	r.emit(wire.CmdSetVisible, h).Bool(visible)
	r.done()
}

// SetColorWrite implements Surface.
func (r *Recorder) SetColorWrite(h Handle, enabled bool) {
	r.get(h).ColorWrite = enabled
	r.emit(wire.CmdSetColorWrite, h).Bool(enabled)
	r.done()
}

// Release implements Surface.
func (r *Recorder) Release(h Handle) {
	r.get(h).Released = true
	r.emit(wire.CmdRelease, h)
	r.done()
}

// CreateText implements TextSurface.
func (r *Recorder) CreateText(s string) Handle {
	h, rec := r.create(KindText)
	rec.Text = s
	rec.LineHeight = 1
	r.emit(wire.CmdCreateText, h).String(s)
	r.done()
	return h
}

// SetText implements TextSurface.
func (r *Recorder) SetText(h Handle, s string) {
	r.get(h).Text = s
	r.emit(wire.CmdSetText, h).String(s)
	r.done()
}

// SetLineHeight implements TextSurface.
func (r *Recorder) SetLineHeight(h Handle, height float32) {
	r.get(h).LineHeight = height
	r.emit(wire.CmdSetLineHeight, h).Float32(height)
	r.done()
}

// SetWrapWidth implements TextSurface.
func (r *Recorder) SetWrapWidth(h Handle, chars int) {
	r.get(h).WrapWidth = chars
	r.emit(wire.CmdSetWrapWidth, h).Int32(int32(chars))
	r.done()
}

// MeasureBoundingBox implements TextSurface. Every character is
// advance × line height wide and every line is one line height tall.
func (r *Recorder) MeasureBoundingBox(h Handle) Box {
	rec := r.get(h)
	lines := Wrap(rec.Text, rec.WrapWidth)
	return Box{
		Width:  float32(TextWidth(lines)) * r.advance * rec.LineHeight,
		Height: float32(len(lines)) * rec.LineHeight,
	}
}

// Lines returns the wrapped lines of a text drawable.
func (r *Recorder) Lines(h Handle) []string {
	rec := r.get(h)
	return Wrap(rec.Text, rec.WrapWidth)
}

var (
	_ Backend = (*Recorder)(nil)
	_ Batcher = (*Recorder)(nil)
)
