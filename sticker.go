package stickergen

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sticker pairs a displayable image reference with its prompt. It is immutable
// once created; changing the URL means removing the sticker and adding a new one.
type Sticker struct {
	ID        string `json:"id" validate:"required"`
	URL       string `json:"url" validate:"required"`
	Prompt    string `json:"prompt"`
	CreatedAt int64  `json:"createdAt" validate:"gte=0"` // unix milliseconds
}

// NewSticker creates a sticker with a random id.
func NewSticker(u, prompt string, createdAt time.Time) Sticker {
	return Sticker{
		ID:        uuid.NewString(),
		URL:       u,
		Prompt:    prompt,
		CreatedAt: createdAt.UnixMilli(),
	}
}

// Created returns CreatedAt as a time.
func (s Sticker) Created() time.Time {
	return time.UnixMilli(s.CreatedAt)
}

// IsGenerated reports whether the sticker embeds its image, which is the case for
// stickers produced in this session as opposed to gallery entries.
func (s Sticker) IsGenerated() bool {
	return IsDataURI(s.URL)
}

// Image decodes the embedded image of a generated sticker.
func (s Sticker) Image() (*ImageRef, error) {
	return ParseDataURI(s.URL)
}

const maxFilenameSlug = 60

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// DownloadFilename is the name offered when the sticker is saved.
//
// Generated stickers are named after a slug of their prompt
// ("Cute sticker of a cat" -> "cute-sticker-of-a-cat.png"); gallery stickers
// keep the last segment of their URL.
func (s Sticker) DownloadFilename() string {
	fallback := "sticker-" + s.ID + ".png"

	if s.IsGenerated() {
		slug := nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(s.Prompt)), "-")
		slug = strings.Trim(slug, "-")
		if len(slug) > maxFilenameSlug {
			slug = strings.TrimRight(slug[:maxFilenameSlug], "-")
		}
		if slug == "" {
			return fallback
		}
		ext := DefaultMIMEType
		if img, err := s.Image(); err == nil {
			ext = img.MIMEType
		}
		return slug + "." + extensionFromMIME(ext)
	}

	// The raw segment is kept: no percent-decoding, no path cleaning.
	p := strings.TrimSpace(s.URL)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	name := p[strings.LastIndexByte(p, '/')+1:]
	if name == "" {
		return fallback
	}
	return name
}
