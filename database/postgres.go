package database

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

// Schema creates the documents table used by PostgresStore.
const Schema = `
	CREATE TABLE IF NOT EXISTS documents (
		name       TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// ConnectDB opens and pings the postgres database at dsn.
func ConnectDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return db, nil
}

// PostgresStore keeps documents as rows of the documents table, keyed by the
// same names the file backend uses.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Migrate() error {
	_, err := s.db.Exec(Schema)
	return errors.Wrap(err, "create documents table")
}

func (s *PostgresStore) ReadDocument(name string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(`SELECT body FROM documents WHERE name = $1`, name).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return body, nil
}

func (s *PostgresStore) WriteDocument(name string, body []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name)
		DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`,
		name, string(body))
	if err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}

func (s *PostgresStore) HasDocument(name string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM documents WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, errors.Wrapf(err, "check %s", name)
	}
	return exists, nil
}
