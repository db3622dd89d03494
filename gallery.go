package stickergen

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/mhpenta/stickergen/sharelink"
)

// Gallery is the static, ordered sticker dataset. It is loaded once and never
// modified afterwards.
type Gallery struct {
	stickers []Sticker
}

// NewGallery creates a gallery from stickers, in the given order.
func NewGallery(stickers ...Sticker) *Gallery {
	g := &Gallery{stickers: make([]Sticker, len(stickers))}
	copy(g.stickers, stickers)
	return g
}

// LoadGallery decodes a JSON array of stickers. Every entry is validated and
// its URL normalized through n; ids must be unique. A nil n uses the default
// normalizer.
func LoadGallery(r io.Reader, n *sharelink.Normalizer) (*Gallery, error) {
	if n == nil {
		n = sharelink.Default()
	}

	var entries []Sticker
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding gallery: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		entry := &entries[i]
		if err := ValidateSticker(*entry); err != nil {
			return nil, fmt.Errorf("gallery entry %d: %w", i, err)
		}
		if _, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("gallery entry %d: %w: %s", i, ErrDuplicateID, entry.ID)
		}
		seen[entry.ID] = struct{}{}

		direct, err := n.Normalize(entry.URL)
		if err != nil {
			return nil, fmt.Errorf("gallery entry %d: %w", i, err)
		}
		entry.URL = direct
	}

	return &Gallery{stickers: entries}, nil
}

// LoadGalleryFile loads a gallery from a JSON file.
func LoadGalleryFile(path string, n *sharelink.Normalizer) (*Gallery, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gallery: %w", err)
	}
	defer f.Close()

	return LoadGallery(f, n)
}

// List returns the gallery stickers in order.
func (g *Gallery) List() []Sticker {
	out := make([]Sticker, len(g.stickers))
	copy(out, g.stickers)
	return out
}

// Len returns the number of stickers in the gallery.
func (g *Gallery) Len() int {
	return len(g.stickers)
}

// Combined lists previews ahead of the gallery stickers.
func (g *Gallery) Combined(previews []Sticker) []Sticker {
	out := make([]Sticker, 0, len(previews)+len(g.stickers))
	out = append(out, previews...)
	return append(out, g.stickers...)
}

// WriteJSON encodes the gallery as an indented JSON array.
func (g *Gallery) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g.stickers)
}
