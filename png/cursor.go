package png

import "encoding/binary"

const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4

	// chunk = length, type, data, CRC
	chunkOverhead = lengthSize + typeSize + crcSize
)

// RawChunk locates one chunk inside the scanned buffer. The data is not copied.
type RawChunk struct {
	Offset int // of the length field
	Length uint32
	Type   Tag
	CRC    uint32
}

// DataRange returns the offsets of the chunk data.
func (r RawChunk) DataRange() (start, end int) {
	start = r.Offset + lengthSize + typeSize
	return start, start + int(r.Length)
}

// End returns the offset just past the CRC.
func (r RawChunk) End() int {
	return r.Offset + chunkOverhead + int(r.Length)
}

// Cursor walks the chunks of a buffer forward, one at a time. Scanning stops
// after IEND; any bytes that follow are trailing data. The buffer must not be
// modified while a Cursor is in use.
type Cursor struct {
	buf    []byte
	offset int
	raw    RawChunk
	err    error
	done   bool
	sawEnd bool
}

// NewCursor validates the signature and positions a cursor on the first chunk.
func NewCursor(buf []byte) (*Cursor, error) {
	if err := Validate(buf); err != nil {
		return nil, err
	}
	return &Cursor{buf: buf, offset: len(Signature)}, nil
}

// Next advances to the next chunk. It returns false at the end of the stream
// or on error; Err tells them apart.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	remaining := len(c.buf) - c.offset
	if remaining == 0 {
		c.done = true
		return false
	}
	if remaining < lengthSize+typeSize {
		c.fail(Tag{}, ErrTruncated)
		return false
	}

	length := binary.BigEndian.Uint32(c.buf[c.offset:])
	var tag Tag
	copy(tag[:], c.buf[c.offset+lengthSize:])
	if !tag.Valid() {
		c.fail(tag, ErrBadChunkType)
		return false
	}

	end := uint64(c.offset) + chunkOverhead + uint64(length)
	if end > uint64(len(c.buf)) {
		c.fail(tag, ErrTruncated)
		return false
	}

	c.raw = RawChunk{
		Offset: c.offset,
		Length: length,
		Type:   tag,
		CRC:    binary.BigEndian.Uint32(c.buf[end-crcSize:]),
	}
	c.offset = int(end)
	if tag == TagEnd {
		c.sawEnd = true
		c.done = true
	}
	return true
}

func (c *Cursor) fail(tag Tag, err error) {
	c.err = &ChunkError{Offset: c.offset, Type: tag, Err: err}
	c.done = true
}

// Chunk returns the chunk found by the last successful call to Next.
func (c *Cursor) Chunk() RawChunk {
	return c.raw
}

// Err returns the error that stopped the scan, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Offset returns the offset just past the last chunk consumed.
func (c *Cursor) Offset() int {
	return c.offset
}

// SawEnd reports whether the IEND chunk has been reached.
func (c *Cursor) SawEnd() bool {
	return c.sawEnd
}

// Trailing returns the bytes after IEND, or nil if IEND was not reached.
func (c *Cursor) Trailing() []byte {
	if !c.sawEnd {
		return nil
	}
	return c.buf[c.offset:]
}
