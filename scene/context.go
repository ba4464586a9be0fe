package scene

import (
	"log/slog"
	"os"
	"time"
)

// Context is the handle every GUI tree mutates the scene through. It
// replaces an ambient "current scene" with an explicit value: trees hold
// one, and batches of mutations are scoped with Batch.
//
// A Context is not safe for concurrent use; all GUI mutation happens on
// one thread.
type Context struct {
	backend Backend
	logger  *slog.Logger
	depth   int
	now     time.Duration
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used by the GUI core.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithDebug enables debug logging to stderr.
func WithDebug(on bool) Option {
	return func(c *Context) {
		if on {
			c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	}
}

// NewContext creates a context over backend.
func NewContext(backend Backend, opts ...Option) *Context {
	c := &Context{backend: backend, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Backend returns the renderer backend.
func (c *Context) Backend() Backend { return c.backend }

// Logger returns the logger for GUI diagnostics.
func (c *Context) Logger() *slog.Logger { return c.logger }

// Batch runs fn with the backend acquired for a batch of mutations.
// Nested batches fold into the outermost one, which is the only one that
// reaches the backend's Batcher.
func (c *Context) Batch(fn func()) (err error) {
	batcher, _ := c.backend.(Batcher)
	if c.depth == 0 && batcher != nil {
		batcher.BeginBatch()
	}
	c.depth++
	defer func() {
		c.depth--
		if c.depth == 0 && batcher != nil {
			if endErr := batcher.EndBatch(); err == nil {
				err = endErr
			}
		}
	}()
	fn()
	return nil
}

// InBatch reports whether a Batch is running.
func (c *Context) InBatch() bool { return c.depth > 0 }

// Now returns the frame clock.
func (c *Context) Now() time.Duration { return c.now }

// Advance moves the frame clock forward by dt. The frame driver calls it
// once per frame.
func (c *Context) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}
}
