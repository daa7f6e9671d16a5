package database

import (
	"github.com/pkg/errors"
)

// DirectoryDocument is the name of the process-wide username index.
const DirectoryDocument = "user_data.txt"

// ErrNoDocument is returned by ReadDocument when nothing is stored under a name.
var ErrNoDocument = errors.New("document not found")

// DocumentStore keeps whole JSON documents by name. Writes replace the
// previous body entirely.
type DocumentStore interface {
	ReadDocument(name string) ([]byte, error)
	WriteDocument(name string, body []byte) error
	HasDocument(name string) (bool, error)
}

// UserDocument is the document name a user is stored under.
func UserDocument(username string) string {
	return username + "_data.txt"
}
