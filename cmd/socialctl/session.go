package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const sessionFile = ".socialctl_session"

var errNotSignedIn = errors.New("not signed in, run `socialctl login <username> <email>` first")

func (c *cli) sessionPath() string {
	return filepath.Join(c.cfg.DataDir, sessionFile)
}

func (c *cli) writeSession(username string) error {
	if err := os.WriteFile(c.sessionPath(), []byte(username), 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	return nil
}

// currentUser returns the signed-in username, or "" when there is none.
func (c *cli) currentUser() (string, error) {
	data, err := os.ReadFile(c.sessionPath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read session file")
	}
	return strings.TrimSpace(string(data)), nil
}

func (c *cli) mustCurrentUser() (string, error) {
	username, err := c.currentUser()
	if err != nil {
		return "", err
	}
	if username == "" {
		return "", errNotSignedIn
	}
	return username, nil
}

func (c *cli) clearSession() error {
	err := os.Remove(c.sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}
	return nil
}
