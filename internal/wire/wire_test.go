package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	var enc Encoder
	enc.Begin(CmdCreateText).Uint32(7).String("hello")
	enc.Begin(CmdSetDrawOrder).Uint32(7).Int32(-3)
	enc.Begin(CmdSetVisible).Uint32(7).Bool(true)
	enc.Begin(CmdSetLineHeight).Uint32(7).Float32(0.25)
	enc.Begin(CmdRelease)
	require.Equal(t, 5, enc.Len())

	cmds, err := Decode(enc.Bytes())
	require.NoError(t, err)
	require.Len(t, cmds, 5)

	assert.Equal(t, CmdCreateText, cmds[0].Type)
	assert.Equal(t, uint32(7), GetUint32(cmds[0].Payload))
	s, n := GetString(cmds[0].Payload[4:])
	assert.Equal(t, "hello", s)
	assert.Equal(t, 9, n)

	assert.Equal(t, int32(-3), int32(GetUint32(cmds[1].Payload[4:])))
	assert.Equal(t, []byte{1}, cmds[2].Payload[4:])
	assert.Equal(t, float32(0.25), GetFloat32(cmds[3].Payload[4:]))
	assert.Empty(t, cmds[4].Payload)
}

func TestDecodeShortBuffer(t *testing.T) {
	var enc Encoder
	enc.Begin(CmdSetColor).Uint32(1).Uint32(0xFFFFFFFF)
	data := enc.Bytes()

	_, err := Decode(data[:len(data)-1])
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, err = Decode(data[:3])
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestEncoderReset(t *testing.T) {
	var enc Encoder
	enc.Begin(CmdRelease).Uint32(1)
	enc.Reset()
	assert.Zero(t, enc.Len())
	assert.Empty(t, enc.Bytes())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "SetStencilFunc", CmdSetStencilFunc.String())
	assert.Equal(t, "Command(0x0ABC)", CommandType(0x0ABC).String())
}

func TestBufferTransport(t *testing.T) {
	tr := NewBufferTransport()
	var enc Encoder
	enc.Begin(CmdCreateGroup).Uint32(1)
	require.NoError(t, tr.ExecuteBatch(enc.Bytes()))

	// the transport keeps its own copy
	enc.Reset()
	enc.Begin(CmdRelease).Uint32(1)
	require.NoError(t, tr.ExecuteBatch(enc.Bytes()))

	cmds, err := tr.Commands()
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, CmdCreateGroup, cmds[0].Type)
	assert.Equal(t, CmdRelease, cmds[1].Type)

	require.NoError(t, tr.Close())
	assert.ErrorIs(t, tr.ExecuteBatch(nil), ErrClosed)
}
