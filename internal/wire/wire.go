// Package wire encodes primitive scene calls as a compact binary stream
// so a batch of GUI mutations can be shipped to a renderer in one call.
//
// Each command is framed as:
//
//	[u16 command][u32 payload length][payload]
//
// with all integers little-endian.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Command types for the binary protocol.
// Using u16 with 256-spacing between groups to allow room for growth.
type CommandType uint16

const (
	// Drawable commands (0x0100 - 0x01FF)
	CmdCreateQuad  CommandType = 0x0100
	CmdCreateGroup CommandType = 0x0101
	CmdSetVertices CommandType = 0x0102
	CmdSetPosition CommandType = 0x0103
	CmdSetParent   CommandType = 0x0104
	CmdSetColor    CommandType = 0x0105

	// Render state commands (0x0200 - 0x02FF)
	CmdSetDrawOrder   CommandType = 0x0200
	CmdSetStencilFunc CommandType = 0x0201
	CmdSetVisible     CommandType = 0x0202
	CmdSetColorWrite  CommandType = 0x0203

	// Text commands (0x0300 - 0x03FF)
	CmdCreateText    CommandType = 0x0300
	CmdSetText       CommandType = 0x0301
	CmdSetLineHeight CommandType = 0x0302
	CmdSetWrapWidth  CommandType = 0x0303

	// Lifecycle (0xFF00 - 0xFFFF)
	CmdRelease CommandType = 0xFF00
)

var commandNames = map[CommandType]string{
	CmdCreateQuad:     "CreateQuad",
	CmdCreateGroup:    "CreateGroup",
	CmdSetVertices:    "SetVertices",
	CmdSetPosition:    "SetPosition",
	CmdSetParent:      "SetParent",
	CmdSetColor:       "SetColor",
	CmdSetDrawOrder:   "SetDrawOrder",
	CmdSetStencilFunc: "SetStencilFunc",
	CmdSetVisible:     "SetVisible",
	CmdSetColorWrite:  "SetColorWrite",
	CmdCreateText:     "CreateText",
	CmdSetText:        "SetText",
	CmdSetLineHeight:  "SetLineHeight",
	CmdSetWrapWidth:   "SetWrapWidth",
	CmdRelease:        "Release",
}

func (c CommandType) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(0x%04X)", uint16(c))
}

const headerSize = 6

// ErrShortBuffer is returned when a stream ends inside a command.
var ErrShortBuffer = errors.New("wire: short buffer")

// ErrClosed is returned when a batch is sent to a closed transport.
var ErrClosed = errors.New("wire: transport closed")

// Transport receives encoded batches.
type Transport interface {
	// ExecuteBatch hands over one encoded batch. The slice is not retained
	// by the caller after the call returns.
	ExecuteBatch(batch []byte) error

	// Flush ensures all pending batches are processed.
	Flush() error

	// Close releases any resources held by the transport.
	Close() error
}

// Encoder appends framed commands to a buffer.
type Encoder struct {
	buf   []byte
	count int
}

// Begin starts a command and returns a payload builder for it. The
// command is complete when the next Begin, Bytes or Reset is called.
func (e *Encoder) Begin(cmd CommandType) *Payload {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(cmd))
	e.buf = binary.LittleEndian.AppendUint32(e.buf, 0)
	e.count++
	return &Payload{enc: e, lenAt: len(e.buf) - 4, start: len(e.buf)}
}

// Len returns the number of encoded commands.
func (e *Encoder) Len() int { return e.count }

// Bytes returns the encoded stream. It aliases the encoder's buffer.
func (e *Encoder) Bytes() []byte { return e.buf }

// Reset discards the encoded commands, keeping the buffer capacity.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.count = 0
}

// Payload builds a command payload in place.
type Payload struct {
	enc   *Encoder
	lenAt int
	start int
}

func (p *Payload) done() *Payload {
	PutUint32(p.enc.buf[p.lenAt:], uint32(len(p.enc.buf)-p.start))
	return p
}

// Uint32 appends v.
func (p *Payload) Uint32(v uint32) *Payload {
	p.enc.buf = binary.LittleEndian.AppendUint32(p.enc.buf, v)
	return p.done()
}

// Int32 appends v.
func (p *Payload) Int32(v int32) *Payload {
	return p.Uint32(uint32(v))
}

// Float32 appends v.
func (p *Payload) Float32(v float32) *Payload {
	return p.Uint32(math.Float32bits(v))
}

// Bool appends v as a single byte.
func (p *Payload) Bool(v bool) *Payload {
	var b byte
	if v {
		b = 1
	}
	p.enc.buf = append(p.enc.buf, b)
	return p.done()
}

// String appends a length-prefixed string.
func (p *Payload) String(s string) *Payload {
	p.enc.buf = binary.LittleEndian.AppendUint32(p.enc.buf, uint32(len(s)))
	p.enc.buf = append(p.enc.buf, s...)
	return p.done()
}

// Command is a decoded command frame.
type Command struct {
	Type    CommandType
	Payload []byte
}

// Decode splits an encoded stream into commands. Payloads alias data.
func Decode(data []byte) ([]Command, error) {
	var cmds []Command
	for len(data) > 0 {
		if len(data) < headerSize {
			return cmds, ErrShortBuffer
		}
		cmd := CommandType(binary.LittleEndian.Uint16(data))
		n := int(GetUint32(data[2:]))
		if len(data) < headerSize+n {
			return cmds, fmt.Errorf("%w: %s needs %d payload bytes, have %d", ErrShortBuffer, cmd, n, len(data)-headerSize)
		}
		cmds = append(cmds, Command{Type: cmd, Payload: data[headerSize : headerSize+n]})
		data = data[headerSize+n:]
	}
	return cmds, nil
}

// Binary encoding helpers

// PutUint32 writes a uint32 to the buffer in little-endian.
func PutUint32(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}

// GetUint32 reads a uint32 from the buffer in little-endian.
func GetUint32(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

// GetFloat32 reads a float32 from the buffer.
func GetFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

// GetString reads a length-prefixed string from the buffer.
// Returns the string and number of bytes consumed.
func GetString(buf []byte) (string, int) {
	length := binary.LittleEndian.Uint32(buf)
	return string(buf[4 : 4+length]), 4 + int(length)
}
