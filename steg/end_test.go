package steg

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysh86/lspic/png"
)

func TestEndOfStreamScenario(t *testing.T) {
	buf := minimalPNG()
	codec := NewEndOfStream(Options{})

	out, err := codec.Hide(buf, "hi")
	require.NoError(t, err)
	assert.Equal(t, append(minimalPNG(), 'h', 'i'), out)

	message, ok, err := codec.Reveal(out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hi", message)
}

func TestEndOfStreamRoundTrip(t *testing.T) {
	codec := NewEndOfStream(Options{})
	for _, m := range messages {
		buf := coverPNG()
		out, err := codec.Hide(buf, m)
		require.NoError(t, err, m)

		// the chunk stream is untouched
		assert.Equal(t, coverPNG(), out[:len(buf)], m)
		assert.Equal(t, chunkList(t, buf), chunkList(t, out), m)
		// the input is untouched
		assert.Equal(t, coverPNG(), buf, m)

		message, ok, err := codec.Reveal(out)
		require.NoError(t, err, m)
		if m == "" {
			// nothing was appended, so there is nothing to reveal
			assert.False(t, ok)
			assert.Equal(t, buf, out)
			continue
		}
		assert.True(t, ok, m)
		assert.Equal(t, m, message)
	}
}

func TestEndOfStreamNoMessage(t *testing.T) {
	message, ok, err := NewEndOfStream(Options{}).Reveal(coverPNG())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, message)
}

func TestEndOfStreamReplacesTrailing(t *testing.T) {
	codec := NewEndOfStream(Options{})
	out, err := codec.Hide(append(minimalPNG(), "old message"...), "new")
	require.NoError(t, err)

	message, ok, err := codec.Reveal(out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", message)
}

func TestEndOfStreamInvalidText(t *testing.T) {
	buf := append(minimalPNG(), 'o', 'k', 0xff)
	_, ok, err := NewEndOfStream(Options{}).Reveal(buf)
	assert.ErrorIs(t, err, png.ErrInvalidText)
	assert.False(t, ok)
}

func TestEndOfStreamErrors(t *testing.T) {
	codec := NewEndOfStream(Options{})
	noEnd := png.Encode([]png.Chunk{&png.Header{Width: 1, Height: 1, BitDepth: 8}})
	truncated := minimalPNG()[:40]

	tests := []struct {
		name string
		buf  []byte
		err  error
	}{
		{"signature", []byte("GIF89a"), png.ErrBadSignature},
		{"missing end", noEnd, png.ErrMissingEnd},
		{"truncated", truncated, png.ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := codec.Hide(tt.buf, "hi")
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, out)

			_, ok, err := codec.Reveal(tt.buf)
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, ok)
		})
	}
}

func TestEndOfStreamStrict(t *testing.T) {
	buf := minimalPNG()
	buf[len(buf)-1] ^= 0xff // IEND CRC

	out, err := NewEndOfStream(Options{}).Hide(buf, "hi")
	require.NoError(t, err)
	assert.Len(t, out, len(buf)+2)

	out, err = NewEndOfStream(Options{Strict: true}).Hide(buf, "hi")
	assert.ErrorIs(t, err, png.ErrMalformedEnd)
	assert.Nil(t, out)
}

func TestEndOfStreamLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := NewEndOfStream(Options{Logger: logger}).Hide(minimalPNG(), "hi")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "message appended after IEND")
	assert.Contains(t, logs.String(), "offset=45")
}
