package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"masterboxer.com/project-micro-social/database"
)

var errDocs = errors.New("docs error")

var fixedNow = time.Date(2024, 6, 1, 12, 30, 45, 0, time.Local)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	docs, err := database.NewFileStore(dir)
	require.NoError(t, err)

	d := NewDirectory(docs)
	require.NoError(t, d.Load())
	return NewStore(docs, d, WithClock(func() time.Time { return fixedNow })), dir
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// fakeDocs is an in-memory DocumentStore whose calls can be made to fail.
type fakeDocs struct {
	docs     map[string][]byte
	readErr  error
	writeErr error
	hasErr   error
	writes   []string
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: map[string][]byte{}}
}

func (f *fakeDocs) ReadDocument(name string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	data, ok := f.docs[name]
	if !ok {
		return nil, database.ErrNoDocument
	}
	return data, nil
}

func (f *fakeDocs) WriteDocument(name string, body []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, name)
	f.docs[name] = append([]byte(nil), body...)
	return nil
}

func (f *fakeDocs) HasDocument(name string) (bool, error) {
	if f.hasErr != nil {
		return false, f.hasErr
	}
	_, ok := f.docs[name]
	return ok, nil
}

// recordingNotifier keeps every notification it is asked to send.
type recordingNotifier struct {
	sent []notification
	err  error
}

type notification struct {
	username, title, body string
	data                  map[string]string
}

func (r *recordingNotifier) Notify(username, title, body string, data map[string]string) error {
	r.sent = append(r.sent, notification{username, title, body, data})
	return r.err
}
