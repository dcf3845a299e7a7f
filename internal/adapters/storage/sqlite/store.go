// Package sqlite は社員コレクションを SQLite の 1 行に保存するストアです。
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/slot"
	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/sqlite/migrations"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	_ "modernc.org/sqlite"
)

const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Store は storage_slots テーブルの 1 行をスロットとして扱います。
type Store struct {
	db  *sql.DB
	key string
	log *slog.Logger
	now func() time.Time
}

// Open は SQLite ファイルを開き、マイグレーションを適用します。
func Open(ctx context.Context, path, key string, log *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}
	if strings.TrimSpace(key) == "" {
		key = slot.DefaultKey
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", filepath.Clean(path)+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	return &Store{db: db, key: key, log: log, now: time.Now}, nil
}

// migrateUp は埋め込みマイグレーションを golang-migrate で適用します。
// migrate.Close は db まで閉じるため呼びません。
func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("open migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close は DB ハンドルを閉じます。
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadAll は保存済みのコレクションを返します。
func (s *Store) LoadAll(ctx context.Context) ([]onboarding.Employee, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM storage_slots WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []onboarding.Employee{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load slot %s: %w", s.key, err)
	}

	employees, ok := slot.Decode([]byte(value))
	if !ok {
		s.log.WarnContext(ctx, "stored employees are malformed, treating as empty", slog.String("slot", s.key))
	}
	return employees, nil
}

// SaveAll はスロットの内容を置き換えます。
func (s *Store) SaveAll(ctx context.Context, employees []onboarding.Employee) error {
	b, err := slot.Encode(employees)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `
        INSERT INTO storage_slots (key, value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT (key) DO UPDATE
           SET value = excluded.value,
               updated_at = excluded.updated_at
    `, s.key, string(b), s.now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("sqlite: save slot %s: %w", s.key, err)
	}
	return nil
}

// Ping は DB への疎通を確認します。
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
