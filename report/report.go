// Package report converts a parsed PNG file into a compact CBOR document for
// tools that consume chunk listings.
package report

import (
	"errors"
	"fmt"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
	"github.com/jinzhu/copier"

	"github.com/ysh86/lspic/png"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		cachedEncMode, cachedEncModeErr = _cbor.CoreDetEncOptions().EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

// Record describes one chunk. It is encoded as a CBOR array.
type Record struct {
	_           struct{} `cbor:",toarray"`
	Offset      int
	Type        string
	Length      uint32
	CRC         uint32
	ComputedCRC uint32
	Valid       bool
}

// Report is the whole listing.
type Report struct {
	Chunks   []Record `cbor:"1,keyasint"`
	Issues   []string `cbor:"2,keyasint,omitempty"`
	Trailing int      `cbor:"3,keyasint,omitempty"`
}

var tagConverter = copier.TypeConverter{
	SrcType: png.Tag{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		tag, ok := src.(png.Tag)
		if !ok {
			return nil, errors.New("source is not a chunk type")
		}
		return tag.String(), nil
	},
}

// New builds the report of a parsed file.
func New(f *png.File) (*Report, error) {
	r := &Report{
		Chunks:   make([]Record, 0, len(f.Chunks)),
		Trailing: len(f.Trailing),
	}
	for i, chunk := range f.Chunks {
		info := chunk.ChunkInfo()
		var rec Record
		if err := copier.CopyWithOption(&rec, &info, copier.Option{Converters: []copier.TypeConverter{tagConverter}}); err != nil {
			return nil, fmt.Errorf("copy chunk info: %w", err)
		}
		rec.Offset = f.Offsets[i]
		rec.Valid = info.Valid()
		r.Chunks = append(r.Chunks, rec)
	}
	for _, err := range f.Issues {
		r.Issues = append(r.Issues, err.Error())
	}
	return r, nil
}

// Encode returns the CBOR encoding of r.
func Encode(r *Report) ([]byte, error) {
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(r)
}

// Decode parses a CBOR-encoded report.
func Decode(data []byte) (*Report, error) {
	r := &Report{}
	if err := _cbor.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return r, nil
}
