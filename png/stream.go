package png

// FindEnd scans buf up to and including the IEND chunk and returns it.
func FindEnd(buf []byte) (RawChunk, error) {
	c, err := NewCursor(buf)
	if err != nil {
		return RawChunk{}, err
	}
	for c.Next() {
	}
	if err := c.Err(); err != nil {
		return RawChunk{}, err
	}
	if !c.SawEnd() {
		return RawChunk{}, ErrMissingEnd
	}
	return c.Chunk(), nil
}

// StreamEnd returns the offset just past the IEND chunk.
func StreamEnd(buf []byte) (int, error) {
	raw, err := FindEnd(buf)
	if err != nil {
		return 0, err
	}
	return raw.End(), nil
}
