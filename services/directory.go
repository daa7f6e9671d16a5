package services

import (
	"github.com/pkg/errors"

	"masterboxer.com/project-micro-social/database"
	"masterboxer.com/project-micro-social/logging"
	"masterboxer.com/project-micro-social/models"
)

// Directory is the registry of every username that has signed up. It is
// loaded once at startup and owned by the Store.
type Directory struct {
	docs  database.DocumentStore
	names []string
}

func NewDirectory(docs database.DocumentStore) *Directory {
	return &Directory{docs: docs, names: []string{}}
}

// Load replaces the in-memory list with the stored one. A missing index
// document is an empty directory.
func (d *Directory) Load() error {
	names, err := d.read()
	if err != nil {
		return err
	}
	d.names = names
	return nil
}

func (d *Directory) read() ([]string, error) {
	data, err := d.docs.ReadDocument(database.DirectoryDocument)
	if errors.Is(err, database.ErrNoDocument) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read directory")
	}

	names, err := models.DecodeDirectory(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode directory")
	}
	return names, nil
}

// Flush writes the in-memory list back to the index document.
func (d *Directory) Flush() error {
	data, err := models.EncodeDirectory(d.names)
	if err != nil {
		return errors.Wrap(err, "encode directory")
	}
	return errors.Wrap(d.docs.WriteDocument(database.DirectoryDocument, data), "write directory")
}

// Register appends username unless it is already tracked. The stored index
// is re-read first so names registered by another session are kept.
func (d *Directory) Register(username string) error {
	if d.contains(username) {
		return nil
	}

	names, err := d.read()
	if err != nil {
		return err
	}
	d.names = names
	if d.contains(username) {
		return nil
	}

	d.names = append(d.names, username)
	if err := d.Flush(); err != nil {
		return err
	}
	logging.Log.WithField("username", username).Info("registered in directory")
	return nil
}

func (d *Directory) contains(username string) bool {
	for _, name := range d.names {
		if name == username {
			return true
		}
	}
	return false
}

// ListAll returns every tracked username in registration order.
func (d *Directory) ListAll() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// UserLoader loads a single user by name.
type UserLoader interface {
	Load(username string) (*models.User, error)
}

// ResolveAll loads every tracked user. Names without a document are skipped.
func (d *Directory) ResolveAll(loader UserLoader) ([]*models.User, error) {
	users := make([]*models.User, 0, len(d.names))
	for _, name := range d.ListAll() {
		u, err := loader.Load(name)
		if errors.Is(err, ErrNotFound) {
			logging.Log.WithField("username", name).Warn("directory entry has no document, skipping")
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
