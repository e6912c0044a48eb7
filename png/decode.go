package png

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"iter"
	"unicode/utf8"
)

func checksum(tag Tag, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, tag[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// Decode builds the typed chunk for raw, which must come from a Cursor over
// buf. A chunk is always returned; a malformed IHDR, PLTE, IEND or tEXt comes
// back as *Other together with a *ChunkError. A CRC mismatch is not an error,
// see Info.Valid.
func Decode(buf []byte, raw RawChunk) (Chunk, error) {
	start, end := raw.DataRange()
	if raw.Offset < 0 || end < start || end > len(buf) {
		return nil, &ChunkError{Offset: raw.Offset, Type: raw.Type, Err: ErrTruncated}
	}
	data := buf[start:end]
	info := Info{
		Type:        raw.Type,
		Length:      raw.Length,
		CRC:         raw.CRC,
		ComputedCRC: checksum(raw.Type, data),
	}

	chunk, err := decodeData(info, data)
	if err != nil {
		return &Other{Info: info, Data: bytes.Clone(data)}, &ChunkError{Offset: raw.Offset, Type: raw.Type, Err: err}
	}
	return chunk, nil
}

func decodeData(info Info, data []byte) (Chunk, error) {
	switch info.Type {
	case TagHeader:
		if len(data) != headerLength {
			return nil, ErrMalformedHeader
		}
		return &Header{
			Info:              info,
			Width:             binary.BigEndian.Uint32(data[0:]),
			Height:            binary.BigEndian.Uint32(data[4:]),
			BitDepth:          data[8],
			ColorType:         data[9],
			CompressionMethod: data[10],
			FilterMethod:      data[11],
			InterlaceMethod:   data[12],
		}, nil
	case TagPalette:
		if len(data)%3 != 0 {
			return nil, ErrMalformedPalette
		}
		p := &Palette{Info: info, Entries: make([]RGB, 0, len(data)/3)}
		for i := 0; i < len(data); i += 3 {
			p.Entries = append(p.Entries, RGB{data[i], data[i+1], data[i+2]})
		}
		return p, nil
	case TagData:
		return &ImageData{Info: info, Data: bytes.Clone(data)}, nil
	case TagEnd:
		if len(data) != 0 {
			return nil, ErrMalformedEnd
		}
		return &End{Info: info}, nil
	case TagText:
		if !utf8.Valid(data) {
			return nil, ErrInvalidText
		}
		return &Text{Info: info, Text: string(data)}, nil
	default:
		return &Other{Info: info, Data: bytes.Clone(data)}, nil
	}
}

// Chunks returns a lazy sequence of the decoded chunks of buf. Per-chunk
// errors are yielded next to their chunk; an error that stops the scan is
// yielded last with a nil chunk.
func Chunks(buf []byte) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		c, err := NewCursor(buf)
		if err != nil {
			yield(nil, err)
			return
		}
		for c.Next() {
			if !yield(Decode(buf, c.Chunk())) {
				return
			}
		}
		if err := c.Err(); err != nil {
			yield(nil, err)
		}
	}
}
