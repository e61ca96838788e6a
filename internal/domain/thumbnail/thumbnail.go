package thumbnail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"adminconsole-go/internal/platform/config"
	"adminconsole-go/internal/platform/errors"
	"adminconsole-go/internal/platform/logging"
)

// Upload is a thumbnail candidate as it arrives from the caller.
type Upload struct {
	Data         []byte
	OriginalName string
	MimeType     string
}

// Result describes an accepted thumbnail, with the inline-encoded form
// ready for the local catalog entry.
type Result struct {
	DataURL  string
	Size     int64
	MimeType string
	Width    int
	Height   int
}

var mimeSignatures = map[string][]byte{
	"image/jpeg": {0xFF, 0xD8},
	"image/png":  {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
	"image/gif":  {0x47, 0x49, 0x46, 0x38},
	"image/webp": {0x52, 0x49, 0x46, 0x46},
}

// Validator checks thumbnail uploads before any storage mutation.
type Validator struct {
	maxFileSize  int64
	allowedTypes []string
	logger       *logging.Logger
}

// NewValidator builds a validator from the thumbnail configuration.
func NewValidator(cfg config.ThumbnailConfig, logger *logging.Logger) *Validator {
	return &Validator{
		maxFileSize:  cfg.MaxFileSize,
		allowedTypes: cfg.AllowedTypes,
		logger:       logger,
	}
}

// Validate runs the size, type, signature and decode checks. A nil
// error means the upload is safe to encode and persist.
func (v *Validator) Validate(upload Upload) (Result, error) {
	const op = "thumbnail.validate"

	if len(upload.Data) == 0 {
		return Result{}, errors.New(errors.KindValidation, op, "missing image payload")
	}
	if int64(len(upload.Data)) > v.maxFileSize {
		v.logger.WarnTag("catalog", "rejected oversized thumbnail",
			"size", len(upload.Data), "max_size", v.maxFileSize, "name", upload.OriginalName)
		return Result{}, errors.New(errors.KindValidation, op,
			fmt.Sprintf("file size exceeds limit: %d bytes (max %d bytes)", len(upload.Data), v.maxFileSize))
	}
	if !v.isTypeAllowed(upload.MimeType) {
		return Result{}, errors.New(errors.KindValidation, op,
			fmt.Sprintf("unsupported file type: %s (allowed: JPEG, PNG, GIF, WebP)", upload.MimeType))
	}
	if !matchesSignature(upload.Data, upload.MimeType) {
		v.logger.WarnTag("catalog", "thumbnail signature mismatch",
			"declared", upload.MimeType, "header", fmt.Sprintf("%x", header(upload.Data)))
		return Result{}, errors.New(errors.KindValidation, op, "file content does not match its declared type")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(upload.Data))
	if err != nil {
		return Result{}, errors.Wrap(errors.KindValidation, op, "corrupted image data", err)
	}

	return Result{
		DataURL:  EncodeDataURL(upload.MimeType, upload.Data),
		Size:     int64(len(upload.Data)),
		MimeType: upload.MimeType,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

// EncodeDataURL produces the inline representation persisted in the
// local catalog entry.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func (v *Validator) isTypeAllowed(mimeType string) bool {
	mimeType = strings.ToLower(mimeType)
	for _, allowed := range v.allowedTypes {
		if strings.ToLower(allowed) == mimeType {
			return true
		}
	}
	return false
}

func matchesSignature(data []byte, mimeType string) bool {
	signature, ok := mimeSignatures[strings.ToLower(mimeType)]
	if !ok {
		return true
	}
	if len(data) < len(signature) {
		return false
	}
	return bytes.Equal(signature, data[:len(signature)])
}

func header(data []byte) []byte {
	if len(data) > 16 {
		return data[:16]
	}
	return data
}
