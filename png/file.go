package png

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// File is a decoded PNG datastream.
type File struct {
	Chunks  []Chunk
	Offsets []int // of each chunk in the source buffer

	// Issues holds the per-chunk decode errors.
	Issues []error
	// Trailing is a copy of the bytes after IEND.
	Trailing []byte

	buf []byte
}

// NewFile creates a new PNG file struct. It fails only if buf lacks the signature.
func NewFile(buf []byte) (*File, error) {
	if err := Validate(buf); err != nil {
		return nil, err
	}
	f := &File{buf: buf}
	return f, nil
}

// Parse decodes every chunk. When the scan stops early the chunks decoded so
// far are kept and the error is returned.
func (f *File) Parse() error {
	f.Chunks, f.Offsets, f.Issues, f.Trailing = nil, nil, nil, nil

	c, err := NewCursor(f.buf)
	if err != nil {
		return err
	}
	for c.Next() {
		raw := c.Chunk()
		chunk, err := Decode(f.buf, raw)
		if err != nil {
			f.Issues = append(f.Issues, err)
		}
		f.Chunks = append(f.Chunks, chunk)
		f.Offsets = append(f.Offsets, raw.Offset)
	}
	if c.SawEnd() {
		f.Trailing = bytes.Clone(c.Trailing())
	}
	return c.Err()
}

// Header returns the IHDR chunk if it decoded as the first chunk.
func (f *File) Header() (*Header, bool) {
	if len(f.Chunks) == 0 {
		return nil, false
	}
	h, ok := f.Chunks[0].(*Header)
	return h, ok
}

// Validate checks the ordering rules of the stream: IHDR first and only once,
// IEND last and only once. Per-chunk issues are included. CRC mismatches are
// not.
func (f *File) Validate() error {
	var errs []error

	headers, ends := 0, 0
	for i, chunk := range f.Chunks {
		switch chunk.Tag() {
		case TagHeader:
			headers++
			if i != 0 {
				errs = append(errs, &ChunkError{Offset: f.Offsets[i], Type: TagHeader, Err: ErrMisplacedHeader})
			}
		case TagEnd:
			ends++
			if i != len(f.Chunks)-1 || ends > 1 {
				errs = append(errs, &ChunkError{Offset: f.Offsets[i], Type: TagEnd, Err: ErrMalformedEnd})
			}
		}
	}
	if headers == 0 {
		errs = append(errs, ErrMisplacedHeader)
	}
	if ends == 0 {
		errs = append(errs, ErrMissingEnd)
	}

	errs = append(errs, f.Issues...)
	return errors.Join(errs...)
}

// DumpTo prints the chunk listing.
func (f *File) DumpTo(w io.Writer) {
	for i, chunk := range f.Chunks {
		fmt.Fprintf(w, "%08x: %v\n", f.Offsets[i], chunk)
	}
	for _, err := range f.Issues {
		fmt.Fprintf(w, "  %v\n", err)
	}
	if len(f.Trailing) > 0 {
		fmt.Fprintf(w, "trailing data after IEND (%d bytes)\n", len(f.Trailing))
	}
}
