package png

import "encoding/binary"

// MaxChunkLength is the largest data length a chunk may declare.
const MaxChunkLength = 1<<31 - 1

// AppendChunk appends a complete chunk to dst, CRC included. The caller keeps
// len(data) within MaxChunkLength.
func AppendChunk(dst []byte, tag Tag, data []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	dst = append(dst, tag[:]...)
	dst = append(dst, data...)
	return binary.BigEndian.AppendUint32(dst, checksum(tag, data))
}

// Encode serializes chunks after the signature. Stored CRCs are ignored and
// recomputed.
func Encode(chunks []Chunk) []byte {
	buf := []byte(Signature)
	for _, c := range chunks {
		buf = AppendChunk(buf, c.Tag(), c.Payload())
	}
	return buf
}
