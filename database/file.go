package database

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore keeps each document as a file in one directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create data dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) ReadDocument(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return data, nil
}

// WriteDocument writes to a temp file in the same directory and renames it
// over the target, so readers see either the old or the new body.
func (s *FileStore) WriteDocument(name string, body []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return errors.Wrapf(err, "create temp for %s", name)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "write %s", name)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "close %s", name)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "chmod %s", name)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replace %s", name)
	}
	return nil
}

func (s *FileStore) HasDocument(name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", name)
	}
	return true, nil
}
