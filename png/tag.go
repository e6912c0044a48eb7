package png

import "fmt"

// Tag is the 4-byte type code of a chunk.
type Tag [4]byte

// Critical and known ancillary chunk types.
var (
	TagHeader  = Tag{'I', 'H', 'D', 'R'}
	TagPalette = Tag{'P', 'L', 'T', 'E'}
	TagData    = Tag{'I', 'D', 'A', 'T'}
	TagEnd     = Tag{'I', 'E', 'N', 'D'}
	TagText    = Tag{'t', 'E', 'X', 't'}
)

// NewTag converts a 4-letter string to a Tag.
func NewTag(s string) (Tag, error) {
	var t Tag
	if len(s) != len(t) {
		return t, fmt.Errorf("%w: %q", ErrBadChunkType, s)
	}
	copy(t[:], s)
	if !t.Valid() {
		return t, fmt.Errorf("%w: %q", ErrBadChunkType, s)
	}
	return t, nil
}

// Valid reports whether every byte of t is an ASCII letter.
func (t Tag) Valid() bool {
	for _, b := range t {
		if !('A' <= b && b <= 'Z' || 'a' <= b && b <= 'z') {
			return false
		}
	}
	return true
}

// The property bits live in bit 5 (lower case) of each byte.

// Ancillary reports whether the chunk may be ignored by a decoder.
func (t Tag) Ancillary() bool { return t[0]&0x20 != 0 }

// Private reports whether the type is not registered publicly.
func (t Tag) Private() bool { return t[1]&0x20 != 0 }

// Reserved reports whether the reserved bit is set. Conforming types keep it clear.
func (t Tag) Reserved() bool { return t[2]&0x20 != 0 }

// SafeToCopy reports whether editors may copy the chunk unchanged.
func (t Tag) SafeToCopy() bool { return t[3]&0x20 != 0 }

// String makes Tag satisfy the Stringer interface.
func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("%x", t[:])
	}
	return string(t[:])
}
