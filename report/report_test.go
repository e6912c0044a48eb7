package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ysh86/lspic/png"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func parsed(t *testing.T, buf []byte) *png.File {
	t.Helper()
	f, err := png.NewFile(buf)
	require.NoError(t, err)
	require.NoError(t, f.Parse())
	return f
}

func TestNew(t *testing.T) {
	buf := png.Encode([]png.Chunk{
		&png.Header{Width: 1, Height: 1, BitDepth: 8},
		&png.ImageData{Data: []byte("abc")},
		&png.End{},
	})
	buf = png.AppendChunk(buf[:len(buf)-12], png.TagPalette, []byte{1})
	buf = png.AppendChunk(buf, png.TagEnd, nil)
	buf[33+8] ^= 0x01 // IDAT data
	buf = append(buf, "xyz"...)

	r, err := New(parsed(t, buf))
	require.NoError(t, err)
	require.Len(t, r.Chunks, 4)

	assert.Equal(t, 8, r.Chunks[0].Offset)
	assert.Equal(t, "IHDR", r.Chunks[0].Type)
	assert.Equal(t, uint32(13), r.Chunks[0].Length)
	assert.True(t, r.Chunks[0].Valid)

	assert.Equal(t, "IDAT", r.Chunks[1].Type)
	assert.False(t, r.Chunks[1].Valid)
	assert.NotEqual(t, r.Chunks[1].CRC, r.Chunks[1].ComputedCRC)

	assert.Equal(t, "PLTE", r.Chunks[2].Type)
	assert.Equal(t, "IEND", r.Chunks[3].Type)
	assert.Equal(t, uint32(0xae426082), r.Chunks[3].CRC)

	require.Len(t, r.Issues, 1)
	assert.Contains(t, r.Issues[0], "malformed PLTE chunk")
	assert.Equal(t, 3, r.Trailing)
}

func TestEncodeDecode(t *testing.T) {
	r, err := New(parsed(t, png.Encode([]png.Chunk{&png.Header{Width: 7, Height: 3, BitDepth: 1}, &png.End{}})))
	require.NoError(t, err)

	data, err := Encode(r)
	require.NoError(t, err)
	// map(1) {1: array(2) [...]}
	assert.Equal(t, []byte{0xa1, 0x01, 0x82, 0x86, 0x08}, data[:5])

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	_, err = Decode([]byte{0xff})
	assert.Error(t, err)
}
