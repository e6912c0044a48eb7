package png

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagProperties(t *testing.T) {
	assert.False(t, TagHeader.Ancillary())
	assert.False(t, TagHeader.Private())
	assert.False(t, TagHeader.SafeToCopy())
	assert.True(t, TagText.Ancillary())
	assert.True(t, TagText.SafeToCopy())

	tag, err := NewTag("smSG")
	require.NoError(t, err)
	assert.True(t, tag.Ancillary())
	assert.True(t, tag.Private())
	assert.False(t, tag.Reserved())
	assert.False(t, tag.SafeToCopy())
	assert.Equal(t, "smSG", tag.String())
}

func TestNewTagInvalid(t *testing.T) {
	for _, s := range []string{"", "IHD", "IHDRX", "IH1R", "ih r"} {
		_, err := NewTag(s)
		assert.ErrorIs(t, err, ErrBadChunkType, s)
	}
	assert.Equal(t, "49481b52", Tag{'I', 'H', 0x1b, 'R'}.String())
}
