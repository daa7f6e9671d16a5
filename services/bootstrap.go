package services

import (
	"github.com/pkg/errors"

	"masterboxer.com/project-micro-social/config"
	"masterboxer.com/project-micro-social/database"
	"masterboxer.com/project-micro-social/logging"
)

// Open builds the document backend named by cfg, loads the directory and
// returns the command surface with a close func for the backend.
func Open(cfg config.Config) (*Social, func() error, error) {
	var (
		docs    database.DocumentStore
		closeFn = func() error { return nil }
	)

	switch cfg.Backend {
	case "", config.BackendFile:
		fs, err := database.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		docs = fs
	case config.BackendPostgres:
		db, err := database.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pg := database.NewPostgresStore(db)
		if err := pg.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		docs = pg
		closeFn = db.Close
	default:
		return nil, nil, errors.Errorf("unknown backend %q", cfg.Backend)
	}

	dir := NewDirectory(docs)
	if err := dir.Load(); err != nil {
		closeFn()
		return nil, nil, err
	}

	var notifier Notifier = NopNotifier{}
	if cfg.FirebaseCredentialsPath != "" {
		fcm, err := NewFirebaseNotifier(cfg.FirebaseCredentialsPath)
		if err != nil {
			logging.Log.WithError(err).Warn("notifications disabled")
		} else {
			notifier = fcm
		}
	}

	logging.Log.WithField("backend", cfg.Backend).Infof("directory loaded with %d users", len(dir.ListAll()))
	return NewSocial(NewStore(docs, dir), notifier), closeFn, nil
}
