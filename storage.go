package stickergen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage is the destination a sticker is downloaded to. This is a minimal
// interface; implementations can wrap a directory, an object store, or an
// HTTP response writer.
type Storage interface {
	// SaveFile saves image data and returns where it can be found.
	// The contentType is the image's MIME type (e.g., "image/png").
	SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error)
}

// StorageResult contains information about a saved sticker.
type StorageResult struct {
	// Location is where the image was saved
	Location string

	// Path is the storage path/key where the image was saved
	Path string

	// Size is the number of bytes saved
	Size int
}

// SaveSticker decodes a generated sticker and saves it under dir using its
// download filename.
func SaveSticker(ctx context.Context, storage Storage, sticker Sticker, dir string) (*StorageResult, error) {
	if storage == nil {
		return nil, ErrStorageNotConfigured
	}

	img, err := sticker.Image()
	if err != nil {
		return nil, err
	}
	if err := ValidateImage(*img); err != nil {
		return nil, err
	}

	p := sticker.DownloadFilename()
	if dir != "" {
		p = strings.TrimSuffix(dir, "/") + "/" + p
	}

	location, err := storage.SaveFile(ctx, img.Data, p, img.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("saving %s: %w", p, err)
	}

	return &StorageResult{
		Location: location,
		Path:     p,
		Size:     len(img.Data),
	}, nil
}

// DirStorage saves files below a local root directory.
type DirStorage struct {
	Root string
}

// Ensure DirStorage implements Storage.
var _ Storage = DirStorage{}

// SaveFile writes data to Root/path, creating parent directories as needed.
func (d DirStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full := filepath.Join(d.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return full, nil
}
