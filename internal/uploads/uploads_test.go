package uploads

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeProfileImageProducesDataURI(t *testing.T) {
	data := pngBytes(t)

	uri, err := EncodeProfileImage(data)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestEncodeProfileImageRejectsEmptyUpload(t *testing.T) {
	_, err := EncodeProfileImage(nil)
	require.Error(t, err)

	var imgErr *ImageError
	require.ErrorAs(t, err, &imgErr)
	assert.Contains(t, imgErr.Message, "empty")
}

func TestEncodeProfileImageRejectsOversizedUpload(t *testing.T) {
	data := make([]byte, MaxImageSize+1)
	_, err := EncodeProfileImage(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")
}

func TestEncodeProfileImageRejectsNonImageContent(t *testing.T) {
	_, err := EncodeProfileImage([]byte("%PDF-1.4 not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an image")
}

func TestEncodeProfileImageSniffsTypeFromContent(t *testing.T) {
	// JPEG magic bytes followed by padding; the sniffer should name it.
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 64)...)

	uri, err := EncodeProfileImage(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}
