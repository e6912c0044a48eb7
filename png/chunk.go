package png

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const headerLength = 13

// Info is the validated summary shared by every chunk kind.
type Info struct {
	Type        Tag
	Length      uint32
	CRC         uint32 // as stored in the stream
	ComputedCRC uint32 // over type and data
}

// ChunkInfo returns i. It is promoted to every chunk kind.
func (i Info) ChunkInfo() Info {
	return i
}

// Valid reports whether the stored CRC matches the data.
func (i Info) Valid() bool {
	return i.CRC == i.ComputedCRC
}

// String makes Info satisfy the Stringer interface.
func (i Info) String() string {
	s := fmt.Sprintf("chunk '%s' (%d bytes), CRC %08x", i.Type, i.Length, i.CRC)
	if !i.Valid() {
		s += fmt.Sprintf(" corrupted! (computed %08x)", i.ComputedCRC)
	}
	return s
}

// Chunk is one decoded chunk. The set of kinds is closed: *Header, *Palette,
// *ImageData, *End, *Text and *Other.
type Chunk interface {
	fmt.Stringer
	// Tag is the chunk type written when the chunk is encoded.
	Tag() Tag
	ChunkInfo() Info
	// Payload is the chunk data in wire format.
	Payload() []byte

	isChunk()
}

// Header is the IHDR chunk.
type Header struct {
	Info
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

func (*Header) isChunk() {}

func (*Header) Tag() Tag { return TagHeader }

func (h *Header) Payload() []byte {
	b := make([]byte, headerLength)
	binary.BigEndian.PutUint32(b[0:], h.Width)
	binary.BigEndian.PutUint32(b[4:], h.Height)
	b[8] = h.BitDepth
	b[9] = h.ColorType
	b[10] = h.CompressionMethod
	b[11] = h.FilterMethod
	b[12] = h.InterlaceMethod
	return b
}

func (h *Header) String() string {
	return fmt.Sprintf("%v: Width = %d, Height = %d, Bit depth = %d, Color type = %d, Compression method = %d, Filter method = %d, Interlace method = %d",
		h.Info,
		h.Width,
		h.Height,
		h.BitDepth,
		h.ColorType,
		h.CompressionMethod,
		h.FilterMethod,
		h.InterlaceMethod)
}

// RGB is a palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette is the PLTE chunk.
type Palette struct {
	Info
	Entries []RGB
}

func (*Palette) isChunk() {}

func (*Palette) Tag() Tag { return TagPalette }

func (p *Palette) Payload() []byte {
	b := make([]byte, 0, 3*len(p.Entries))
	for _, e := range p.Entries {
		b = append(b, e.R, e.G, e.B)
	}
	return b
}

func (p *Palette) String() string {
	return fmt.Sprintf("%v: %d entries", p.Info, len(p.Entries))
}

// ImageData is an IDAT chunk. The compressed data is kept as is.
type ImageData struct {
	Info
	Data []byte
}

func (*ImageData) isChunk() {}

func (*ImageData) Tag() Tag { return TagData }

func (d *ImageData) Payload() []byte { return d.Data }

func (d *ImageData) String() string { return d.Info.String() }

// End is the IEND chunk.
type End struct {
	Info
}

func (*End) isChunk() {}

func (*End) Tag() Tag { return TagEnd }

func (*End) Payload() []byte { return nil }

func (e *End) String() string { return e.Info.String() }

// Text is a tEXt chunk decoded as UTF-8.
type Text struct {
	Info
	Text string
}

func (*Text) isChunk() {}

func (*Text) Tag() Tag { return TagText }

func (t *Text) Payload() []byte { return []byte(t.Text) }

// Keyword returns the text before the NUL separator.
func (t *Text) Keyword() string {
	k, _, _ := strings.Cut(t.Text, "\x00")
	return k
}

// Value returns the text after the NUL separator, or "" if there is none.
func (t *Text) Value() string {
	_, v, _ := strings.Cut(t.Text, "\x00")
	return v
}

func (t *Text) String() string {
	return fmt.Sprintf("%v: %q = %q", t.Info, t.Keyword(), t.Value())
}

// Other holds any chunk without a dedicated kind, and critical chunks whose
// data is malformed. Info.Type is the chunk type.
type Other struct {
	Info
	Data []byte
}

func (*Other) isChunk() {}

func (o *Other) Tag() Tag { return o.Type }

func (o *Other) Payload() []byte { return o.Data }

func (o *Other) String() string { return o.Info.String() }
