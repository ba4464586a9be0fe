package wire

// BufferTransport keeps a copy of every batch in memory.
type BufferTransport struct {
	batches [][]byte
	closed  bool
}

// NewBufferTransport creates an empty in-memory transport.
func NewBufferTransport() *BufferTransport {
	return &BufferTransport{}
}

// ExecuteBatch implements Transport.
func (t *BufferTransport) ExecuteBatch(batch []byte) error {
	if t.closed {
		return ErrClosed
	}
	t.batches = append(t.batches, append([]byte(nil), batch...))
	return nil
}

// Flush implements Transport.
func (t *BufferTransport) Flush() error { return nil }

// Close implements Transport.
func (t *BufferTransport) Close() error {
	t.closed = true
	return nil
}

// Batches returns the received batches in order.
func (t *BufferTransport) Batches() [][]byte { return t.batches }

// Commands decodes every received batch into one command list.
func (t *BufferTransport) Commands() ([]Command, error) {
	var all []Command
	for _, b := range t.batches {
		cmds, err := Decode(b)
		if err != nil {
			return all, err
		}
		all = append(all, cmds...)
	}
	return all, nil
}
