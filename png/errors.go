package png

import (
	"errors"
	"fmt"
)

var (
	// Stream errors
	ErrBadSignature = errors.New("invalid signature")
	ErrTruncated    = errors.New("truncated chunk")
	ErrBadChunkType = errors.New("invalid chunk type")
	ErrMissingEnd   = errors.New("missing IEND chunk")

	// Chunk errors
	ErrMalformedHeader  = errors.New("malformed IHDR chunk")
	ErrMalformedPalette = errors.New("malformed PLTE chunk")
	ErrMalformedEnd     = errors.New("malformed IEND chunk")
	ErrInvalidText      = errors.New("invalid UTF-8 text")
	ErrMisplacedHeader  = errors.New("IHDR must be the first and only header chunk")
	ErrChecksum         = errors.New("CRC mismatch")

	// Encoder errors
	ErrMessageTooLarge = errors.New("message exceeds maximum chunk length")
)

// ChunkError reports a problem with the chunk starting at Offset.
type ChunkError struct {
	Offset int
	Type   Tag
	Err    error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk '%s' at %08x: %v", e.Type, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
