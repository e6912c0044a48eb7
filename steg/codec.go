// Package steg hides text messages in PNG datastreams, either after the IEND
// chunk or inside a private ancillary chunk placed just before it.
//
// Every codec scans the whole stream before it builds a new buffer; the input
// buffer is never modified.
package steg

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/ysh86/lspic/png"
)

// Codec hides and reveals a message.
type Codec interface {
	// Hide returns a new buffer carrying message.
	Hide(buf []byte, message string) ([]byte, error)
	// Reveal returns the hidden message. ok is false when there is none.
	Reveal(buf []byte) (message string, ok bool, err error)
}

// Method selects a Codec.
type Method int

const (
	MethodEnd   Method = iota // after IEND
	MethodChunk               // in a private chunk before IEND
)

var methodName = map[Method]string{
	MethodEnd:   "end",
	MethodChunk: "chunk",
}

// ParseMethod converts "end" or "chunk" to a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodName {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown method %q", s)
}

// String makes Method satisfy the Stringer interface.
func (m Method) String() string {
	name, ok := methodName[m]
	if !ok {
		name = fmt.Sprintf("Method(%d)", int(m))
	}
	return name
}

// Options are shared by all codecs.
type Options struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Strict requires the IEND chunk, and a revealed message chunk, to carry
	// a correct CRC.
	Strict bool
	// Tag is the chunk type of embedded messages. Zero means DefaultTag.
	Tag png.Tag
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// New returns the Codec for m.
func New(m Method, opts Options) (Codec, error) {
	switch m {
	case MethodEnd:
		return NewEndOfStream(opts), nil
	case MethodChunk:
		return NewEmbeddedChunk(opts), nil
	}
	return nil, fmt.Errorf("unknown method %v", m)
}

// scanToEnd walks buf up to IEND, calling visit for every chunk, and returns
// the IEND chunk.
func scanToEnd(buf []byte, strict bool, visit func(png.RawChunk)) (png.RawChunk, error) {
	c, err := png.NewCursor(buf)
	if err != nil {
		return png.RawChunk{}, err
	}
	for c.Next() {
		if visit != nil {
			visit(c.Chunk())
		}
	}
	if err := c.Err(); err != nil {
		return png.RawChunk{}, err
	}
	if !c.SawEnd() {
		return png.RawChunk{}, png.ErrMissingEnd
	}

	end := c.Chunk()
	if strict {
		chunk, err := png.Decode(buf, end)
		if err != nil {
			return png.RawChunk{}, err
		}
		if !chunk.ChunkInfo().Valid() {
			return png.RawChunk{}, &png.ChunkError{Offset: end.Offset, Type: end.Type, Err: png.ErrMalformedEnd}
		}
	}
	return end, nil
}

func decodeText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", png.ErrInvalidText
	}
	return string(b), nil
}
