// Package sqlitelicense stores the license record in a SQLite database.
package sqlitelicense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/user/shotframe/pkg/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS license (
	slot INTEGER PRIMARY KEY CHECK (slot = 1),
	license_key TEXT NOT NULL,
	email TEXT NOT NULL,
	activated_at TEXT NOT NULL,
	is_valid INTEGER NOT NULL
);`

// Store keeps a single license row.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database and its table.
func Open(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open license db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create license table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) (*ports.License, error) {
	var (
		lic         ports.License
		activatedAt string
		valid       int
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT license_key, email, activated_at, is_valid FROM license WHERE slot = 1",
	).Scan(&lic.Key, &lic.Email, &activatedAt, &valid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load license: %w", err)
	}
	lic.ActivatedAt, err = time.Parse(time.RFC3339Nano, activatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse activated_at: %w", err)
	}
	lic.Valid = valid != 0
	return &lic, nil
}

func (s *Store) Save(ctx context.Context, lic ports.License) error {
	valid := 0
	if lic.Valid {
		valid = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO license (slot, license_key, email, activated_at, is_valid) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET license_key = excluded.license_key, email = excluded.email,
			activated_at = excluded.activated_at, is_valid = excluded.is_valid`,
		lic.Key, lic.Email, lic.ActivatedAt.UTC().Format(time.RFC3339Nano), valid)
	if err != nil {
		return fmt.Errorf("save license: %w", err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM license WHERE slot = 1"); err != nil {
		return fmt.Errorf("remove license: %w", err)
	}
	return nil
}

var _ ports.LicenseStore = (*Store)(nil)
