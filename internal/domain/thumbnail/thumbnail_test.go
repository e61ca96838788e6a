package thumbnail

import (
	"encoding/base64"
	"strings"
	"testing"

	"adminconsole-go/internal/platform/config"
	"adminconsole-go/internal/platform/errors"
	platformtest "adminconsole-go/internal/platform/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)
	return data
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(config.DefaultConfig().Thumbnail, platformtest.SetupTestLogger(t))
}

func TestValidator_AcceptsPNG(t *testing.T) {
	v := newTestValidator(t)
	data := tinyPNG(t)

	res, err := v.Validate(Upload{
		Data:         data,
		OriginalName: "pixel.png",
		MimeType:     "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), res.Size)
	assert.Equal(t, 1, res.Width)
	assert.Equal(t, 1, res.Height)
	assert.True(t, strings.HasPrefix(res.DataURL, "data:image/png;base64,"))
}

func TestValidator_RejectsOversized(t *testing.T) {
	v := newTestValidator(t)

	blob := make([]byte, 11*1024*1024)
	copy(blob, tinyPNG(t))

	_, err := v.Validate(Upload{Data: blob, MimeType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
	assert.Contains(t, err.Error(), "exceeds limit")
}

func TestValidator_RejectsTextPlain(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.Validate(Upload{Data: []byte("hello"), MimeType: "text/plain"})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestValidator_RejectsSignatureMismatch(t *testing.T) {
	v := newTestValidator(t)

	// PNG payload declared as JPEG.
	_, err := v.Validate(Upload{Data: tinyPNG(t), MimeType: "image/jpeg"})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
}

func TestValidator_RejectsEmptyPayload(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.Validate(Upload{MimeType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
}

func TestEncodeDataURL(t *testing.T) {
	url := EncodeDataURL("image/gif", []byte{0x47, 0x49, 0x46})
	assert.Equal(t, "data:image/gif;base64,R0lG", url)
}
