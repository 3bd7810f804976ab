package imagestore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/media"
)

// Store writes painting images into a single directory served under
// /static/images/paintings.
type Store struct {
	Dir string
}

// New returns a store rooted at dir, creating it when missing.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{Dir: dir}, nil
}

// Save copies an uploaded file into the store under its timestamped name and
// returns that name. Disallowed extensions return media.ErrExtensionNotAllowed
// and nothing is written.
func (s *Store) Save(fh *multipart.FileHeader, now time.Time) (string, error) {
	name, err := media.StoredName(fh.Filename, now)
	if err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.Dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return name, nil
}

// Exists reports whether name is present in the store.
func (s *Store) Exists(name string) bool {
	fi, err := os.Stat(filepath.Join(s.Dir, filepath.Base(name)))
	return err == nil && !fi.IsDir()
}
