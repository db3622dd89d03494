package stickergen

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultMIMEType is assumed when the provider does not declare one.
const DefaultMIMEType = "image/png"

const dataURIPrefix = "data:"

// ImageRef is a generated image: its bytes and declared MIME type.
type ImageRef struct {
	// MIMEType of the image (e.g., "image/png")
	MIMEType string

	// Data contains the raw image bytes
	Data []byte
}

// NewImageRef returns an ImageRef, defaulting an empty MIME type to image/png.
func NewImageRef(mimeType string, data []byte) *ImageRef {
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	return &ImageRef{MIMEType: mimeType, Data: data}
}

// DataURI renders the image as data:<mime>;base64,<payload>.
func (r *ImageRef) DataURI() string {
	mimeType := r.MIMEType
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	return dataURIPrefix + mimeType + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}

// IsDataURI reports whether u embeds its image.
func IsDataURI(u string) bool {
	return strings.HasPrefix(u, dataURIPrefix)
}

// ParseDataURI decodes a base64 data URI back into an ImageRef.
func ParseDataURI(u string) (*ImageRef, error) {
	if !IsDataURI(u) {
		return nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(u, dataURIPrefix), ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URI: missing payload separator")
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("malformed data URI: only base64 payloads are supported")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return NewImageRef(mimeType, data), nil
}

// Extension returns a file extension for the image's MIME type.
func (r *ImageRef) Extension() string {
	return extensionFromMIME(r.MIMEType)
}

// extensionFromMIME returns a file extension for common image MIME types.
func extensionFromMIME(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
