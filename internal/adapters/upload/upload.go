// Package upload spools validated note photos to disk for the parse pipeline
// files live only for the duration of one request and are removed after
package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	perr "frontdesk/internal/platform/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DefaultMaxBytes caps uploads at 10MB
const DefaultMaxBytes = 10 << 20

var allowedMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

var allowedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Saved describes one spooled file
type Saved struct {
	Path string
	Size int64
	MIME string
}

// Store writes uploads into a spool directory with random names
type Store struct {
	dir      string
	maxBytes int64
}

// New creates the spool directory if needed and returns a Store
func New(dir string, maxBytes int64) (*Store, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "create upload directory")
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Dir returns the spool directory
func (s *Store) Dir() string { return s.dir }

// Save reads the upload, validates size and content type by sniffing the
// bytes, and writes it under a random name. The original filename is only
// consulted for its extension
func (s *Store) Save(r io.Reader, originalName string) (Saved, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return Saved{}, perr.Wrap(err, perr.ErrorCodeUnknown, "read upload")
	}
	if int64(len(data)) > s.maxBytes {
		return Saved{}, perr.Validationf("file too large, maximum size is %dMB", s.maxBytes>>20)
	}
	if len(data) == 0 {
		return Saved{}, perr.Validationf("file is empty")
	}

	mt := mimetype.Detect(data)
	if _, ok := allowedMIMEs[mt.String()]; !ok {
		return Saved{}, perr.Validationf("invalid file type %s, allowed: image/jpeg, image/png", mt.String())
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExts[ext]; !ok {
		return Saved{}, perr.Validationf("invalid file extension %q, allowed: .jpg, .jpeg, .png", ext)
	}

	path := filepath.Join(s.dir, uuid.NewString()+mt.Extension())
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return Saved{}, perr.Wrap(err, perr.ErrorCodeUnknown, "write upload")
	}

	return Saved{Path: path, Size: int64(len(data)), MIME: mt.String()}, nil
}

// Remove deletes a spooled file, refusing paths outside the spool directory
func (s *Store) Remove(path string) error {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return perr.InvalidArgf("path %q is outside the upload directory", path)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "remove upload")
	}
	return nil
}
