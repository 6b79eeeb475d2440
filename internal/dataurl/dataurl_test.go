package dataurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderLengthFollowsMediaType(t *testing.T) {
	jpeg := Encode("image/jpeg", []byte{0xFF, 0xD8, 0xFF})
	png := Encode("image/png", []byte{0x89, 'P', 'N', 'G'})
	jpg := Encode("image/jpg", []byte{0xFF, 0xD8})

	n, err := HeaderLength(jpeg)
	require.NoError(t, err)
	assert.Equal(t, len("data:image/jpeg;base64,"), n)

	n, err = HeaderLength(png)
	require.NoError(t, err)
	assert.Equal(t, len("data:image/png;base64,"), n)

	n, err = HeaderLength(jpg)
	require.NoError(t, err)
	assert.Equal(t, len("data:image/jpg;base64,"), n)
	assert.Equal(t, len("data:image/png;base64,"), n, "jpg and png headers happen to match")

	n, err = HeaderLength(jpeg)
	require.NoError(t, err)
	assert.NotEqual(t, len("data:image/png;base64,"), n)
}

func TestDecodeRecoversBytes(t *testing.T) {
	want := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	got, err := Decode(Encode("image/jpeg", want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParse(t *testing.T) {
	parsed, err := Parse("data:image/gif;charset=binary;base64,R0lG")
	require.NoError(t, err)
	assert.Equal(t, "image/gif", parsed.MediaType)
	assert.Equal(t, "R0lG", parsed.Payload)
	assert.Equal(t, Prefix("image/gif"), "data:image/gif;base64,")
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("http://example.com/a.png")
	assert.ErrorIs(t, err, ErrNotDataURL)

	_, err = Decode("data:image/png;base64")
	assert.ErrorIs(t, err, ErrNotDataURL)

	_, err = Decode("data:text/plain,hello")
	assert.ErrorIs(t, err, ErrNotBase64)

	_, err = Decode("data:image/png;base64,@@@")
	assert.Error(t, err)
}
