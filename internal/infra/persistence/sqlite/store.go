// Package sqlite provides a single-file durable token store for local runs.
package sqlite

import (
	"context"
	"database/sql"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"authgate/internal/domain/repository"
	"authgate/internal/errors"
	"authgate/internal/infra/persistence/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store persists client tokens in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ repository.TokenRepository = (*Store)(nil)

// Open opens the database at path and applies the embedded schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	if err := os.MkdirAll(filepath.Dir(filepath.Clean(path)), 0o750); err != nil {
		return nil, errors.Wrap(err, "create sqlite directory")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if err := applySchema(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "apply schema")
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

func applySchema(db *sql.DB) error {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return errors.WithStack(err)
	}
	sort.Strings(names)

	for _, name := range names {
		stmt, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return errors.Wrapf(err, "exec %s", name)
		}
	}

	return nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

func (s *Store) FindToken(ctx context.Context, clientID string) (string, error) {
	var token string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT token FROM client_tokens WHERE client_id = ?`, clientID,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrTokenNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "select client token")
	}

	return token, nil
}

func (s *Store) SaveToken(ctx context.Context, clientID, token string) error {
	if strings.TrimSpace(clientID) == "" {
		return errors.New("client id is required")
	}
	now := s.now().UTC().UnixMilli()
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO client_tokens (client_id, token, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		clientID, token, now, now,
	)
	if err != nil {
		return errors.Wrap(err, "upsert client token")
	}

	return nil
}

func (s *Store) DeleteToken(ctx context.Context, clientID string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM client_tokens WHERE client_id = ?`, clientID); err != nil {
		return errors.Wrap(err, "delete client token")
	}

	return nil
}
