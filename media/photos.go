// Package media selects the static photos attached to person replies.
package media

import (
	"daily-pick/errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type PhotoAlbum struct {
	paths  []string
	random func(n int) int
}

// LoadPhotoAlbum keeps the regular files of dir whose content is detected as an image.
// A missing directory yields an empty album.
func LoadPhotoAlbum(dir string, random func(n int) int, log *slog.Logger) (*PhotoAlbum, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		log.Warn("Photo directory not found, person replies will be text only", "dir", dir)
		return NewPhotoAlbum(nil, random), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read photo dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			return nil, fmt.Errorf("detect %s: %w", path, err)
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			log.Debug("Skipping non image file", "path", path, "mime", mtype.String())
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	log.Info("Photo album loaded", "dir", dir, "photos", len(paths))
	return NewPhotoAlbum(paths, random), nil
}

func NewPhotoAlbum(paths []string, random func(n int) int) *PhotoAlbum {
	return &PhotoAlbum{paths: paths, random: random}
}

func (a *PhotoAlbum) Len() int {
	return len(a.paths)
}

// RandomPhoto returns one of the photos, uniformly.
func (a *PhotoAlbum) RandomPhoto() (string, error) {
	if len(a.paths) == 0 {
		return "", errors.ErrNoPhotos
	}
	return a.paths[a.random(len(a.paths))], nil
}
