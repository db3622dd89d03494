package stickergen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhpenta/stickergen/sharelink"
)

const galleryJSON = `[
  {"id": "1", "url": "/images/cool-cat.png", "prompt": "Cool sticker of a cat", "createdAt": 1700000000000},
  {"id": "2", "url": "https://drive.google.com/file/d/ABC123/view?usp=sharing", "prompt": "Retro robot", "createdAt": 1700000000001},
  {"id": "3", "url": "https://drive.google.com/open?id=XYZ789", "prompt": "", "createdAt": 1700000000002}
]`

func TestLoadGallery(t *testing.T) {
	g, err := LoadGallery(strings.NewReader(galleryJSON), nil)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())

	list := g.List()
	assert.Equal(t, "/images/cool-cat.png", list[0].URL)
	assert.Equal(t, "https://lh3.googleusercontent.com/d/ABC123", list[1].URL)
	assert.Equal(t, "https://lh3.googleusercontent.com/d/XYZ789", list[2].URL)
	assert.Equal(t, "Cool sticker of a cat", list[0].Prompt)
	assert.Equal(t, int64(1700000000001), list[1].CreatedAt)
}

func TestLoadGallery_Target(t *testing.T) {
	g, err := LoadGallery(strings.NewReader(galleryJSON), sharelink.New(sharelink.TargetThumbnail))
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=ABC123&sz=w1000", g.List()[1].URL)
}

func TestLoadGallery_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "duplicate id",
			input:   `[{"id":"1","url":"/a.png"},{"id":"1","url":"/b.png"}]`,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "missing url",
			input:   `[{"id":"1"}]`,
			wantErr: ErrInvalidSticker,
		},
		{
			name:    "share link without id",
			input:   `[{"id":"1","url":"https://drive.google.com/drive/folders"}]`,
			wantErr: ErrInvalidShareLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := LoadGallery(strings.NewReader(tt.input), nil)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := LoadGallery(strings.NewReader(`{"id":"1"}`), nil)
	assert.Error(t, err)
}

func TestLoadGalleryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.json")
	require.NoError(t, os.WriteFile(path, []byte(galleryJSON), 0o644))

	g, err := LoadGalleryFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	_, err = LoadGalleryFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGallery_Immutable(t *testing.T) {
	src := []Sticker{{ID: "1", URL: "/a.png"}}
	g := NewGallery(src...)
	src[0].URL = "changed"

	list := g.List()
	assert.Equal(t, "/a.png", list[0].URL)
	list[0].URL = "changed again"
	assert.Equal(t, "/a.png", g.List()[0].URL)
}

func TestGallery_Combined(t *testing.T) {
	g := NewGallery(Sticker{ID: "g1", URL: "/a.png"}, Sticker{ID: "g2", URL: "/b.png"})
	combined := g.Combined([]Sticker{{ID: "p1", URL: "/p.png"}})

	require.Len(t, combined, 3)
	assert.Equal(t, "p1", combined[0].ID)
	assert.Equal(t, "g1", combined[1].ID)
	assert.Equal(t, "g2", combined[2].ID)
	assert.Equal(t, 2, g.Len())
}

func TestGallery_WriteJSON(t *testing.T) {
	g, err := LoadGallery(strings.NewReader(galleryJSON), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"createdAt": 1700000000000`)

	again, err := LoadGallery(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, g.List(), again.List())
}
