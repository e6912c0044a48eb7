package steg

import (
	"fmt"
	"log/slog"

	"github.com/ysh86/lspic/png"
)

// DefaultTag is the chunk type used for embedded messages: ancillary,
// private, not safe to copy.
var DefaultTag = png.Tag{'s', 'm', 'S', 'G'}

// EmbeddedChunk hides the message in its own chunk placed just before IEND.
type EmbeddedChunk struct {
	// Tag defaults to DefaultTag.
	Tag png.Tag

	opts   Options
	logger *slog.Logger
}

// NewEmbeddedChunk creates an embedded-chunk codec.
func NewEmbeddedChunk(opts Options) *EmbeddedChunk {
	tag := opts.Tag
	if tag == (png.Tag{}) {
		tag = DefaultTag
	}
	return &EmbeddedChunk{Tag: tag, opts: opts, logger: opts.logger()}
}

func (e *EmbeddedChunk) tag() (png.Tag, error) {
	tag := e.Tag
	if tag == (png.Tag{}) {
		tag = DefaultTag
	}
	// Decoders must be free to skip the chunk, and the name must not clash
	// with a registered type.
	if !tag.Valid() || !tag.Ancillary() || !tag.Private() || tag.Reserved() {
		return tag, fmt.Errorf("%w: %v is not a private ancillary type", png.ErrBadChunkType, tag)
	}
	return tag, nil
}

// Hide inserts a chunk carrying message before IEND. Message chunks already
// present are dropped, so Reveal returns exactly message. Every other chunk is
// kept in place and order.
func (e *EmbeddedChunk) Hide(buf []byte, message string) ([]byte, error) {
	tag, err := e.tag()
	if err != nil {
		return nil, err
	}
	if len(message) > png.MaxChunkLength {
		return nil, png.ErrMessageTooLarge
	}

	var old []png.RawChunk
	end, err := scanToEnd(buf, e.opts.Strict, func(raw png.RawChunk) {
		if raw.Type == tag {
			old = append(old, raw)
		}
	})
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(buf)+len(message)+12)
	offset := len(png.Signature)
	out = append(out, buf[:offset]...)
	for _, raw := range old {
		out = append(out, buf[offset:raw.Offset]...)
		offset = raw.End()
		e.logger.Debug("dropping previous message chunk", "offset", raw.Offset, "bytes", raw.Length)
	}
	out = append(out, buf[offset:end.Offset]...)
	at := len(out)
	out = png.AppendChunk(out, tag, []byte(message))
	out = append(out, buf[end.Offset:]...)

	e.logger.Debug("message chunk inserted", "type", tag.String(), "offset", at, "bytes", len(message))
	return out, nil
}

// Reveal returns the payload of the first chunk of the message type. In strict
// mode the chunk CRC must match.
func (e *EmbeddedChunk) Reveal(buf []byte) (string, bool, error) {
	tag, err := e.tag()
	if err != nil {
		return "", false, err
	}

	var found *png.RawChunk
	_, err = scanToEnd(buf, e.opts.Strict, func(raw png.RawChunk) {
		if found == nil && raw.Type == tag {
			found = &raw
		}
	})
	if err != nil {
		return "", false, err
	}
	if found == nil {
		return "", false, nil
	}

	if e.opts.Strict {
		chunk, err := png.Decode(buf, *found)
		if err != nil {
			return "", false, err
		}
		if !chunk.ChunkInfo().Valid() {
			return "", false, &png.ChunkError{Offset: found.Offset, Type: tag, Err: png.ErrChecksum}
		}
	}

	start, end := found.DataRange()
	message, err := decodeText(buf[start:end])
	if err != nil {
		return "", false, &png.ChunkError{Offset: found.Offset, Type: tag, Err: err}
	}
	e.logger.Debug("message chunk found", "type", tag.String(), "offset", found.Offset, "bytes", len(message))
	return message, true, nil
}
