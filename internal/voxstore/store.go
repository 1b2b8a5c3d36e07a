// Package voxstore persists encoded .vox buffers to disk.
package voxstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/vox/pkg/vox"
)

const (
	// Ext is appended to every file the store writes.
	Ext = ".vox"

	// TimestampLayout is the UTC timestamp embedded in file names.
	TimestampLayout = "20060102T150405Z"

	DefaultPrefix = "model"
)

// ErrPersistence matches any failure to create the output directory or to
// write the file. The underlying OS error is wrapped alongside it.
var ErrPersistence = errors.New("voxstore: persistence failure")

// Store writes files named <Dir>/<Prefix>-<timestamp>.vox.
type Store struct {
	Dir    string
	Prefix string

	// Now defaults to time.Now.
	Now func() time.Time
}

// Path returns the file name the next Save would use.
func (s *Store) Path() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	prefix := strings.TrimSpace(s.Prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	dir := s.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	name := prefix + "-" + now().UTC().Format(TimestampLayout) + Ext
	return filepath.Join(filepath.Clean(dir), name)
}

// Save writes data atomically and returns the final path.
//
// The buffer is written to a temporary file in the target directory, synced,
// and renamed into place, so a reader never observes a partial file.
func (s *Store) Save(data []byte) (string, error) {
	path := s.Path()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", persistErr("create directory", dir, err)
	}

	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", persistErr("create", tmp, err)
	}
	cleanup := func(op string, err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", persistErr(op, tmp, err)
	}

	if err := writeFull(f, data); err != nil {
		return cleanup("write", err)
	}
	if err := f.Sync(); err != nil {
		return cleanup("sync", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", persistErr("close", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", persistErr("rename", path, err)
	}
	if err := syncDir(dir); err != nil {
		return "", persistErr("sync directory", dir, err)
	}
	return path, nil
}

// SaveScene encodes scene and saves it. Encoding errors are returned as-is
// and leave the filesystem untouched.
func (s *Store) SaveScene(scene vox.Scene) (string, error) {
	data, err := vox.Encode(scene)
	if err != nil {
		return "", err
	}
	return s.Save(data)
}

func persistErr(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrPersistence, op, path, err)
}

func writeFull(f *os.File, p []byte) error {
	for len(p) > 0 {
		n, err := f.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
