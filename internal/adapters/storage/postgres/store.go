// Package postgres は社員コレクションを PostgreSQL の storage_slots テーブルに保存するストアです。
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/slot"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	pgdb "github.com/mgiwa78/hr-intern-macro-app/internal/platform/db/postgres"
)

const (
	lockQuery   = `SELECT pg_advisory_xact_lock(hashtext($1))`
	selectQuery = `SELECT value FROM storage_slots WHERE key = $1`
	upsertQuery = `
        INSERT INTO storage_slots (key, value, updated_at)
        VALUES ($1, $2::jsonb, $3)
        ON CONFLICT (key) DO UPDATE
           SET value = EXCLUDED.value,
               updated_at = EXCLUDED.updated_at
    `
	pingQuery = `SELECT 1`
)

// Store は PostgreSQL を利用したスロットストアの実装です。
type Store struct {
	pool pgdb.Queryer
	key  string
	log  *slog.Logger
	now  func() time.Time
}

// NewStore は Store を生成します。key が空の場合は既定のスロットを使います。
func NewStore(pool pgdb.Queryer, key string, log *slog.Logger) *Store {
	if strings.TrimSpace(key) == "" {
		key = slot.DefaultKey
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{pool: pool, key: key, log: log, now: time.Now}
}

// LoadAll は保存済みのコレクションを返します。
// 読み書きトランザクション内ではスロット単位のアドバイザリロックを取得し、
// 別プロセスの読み込み・書き込みサイクルと直列化します。
func (s *Store) LoadAll(ctx context.Context) ([]onboarding.Employee, error) {
	q := pgdb.QueryerFromContext(ctx, s.pool)

	if pgdb.InReadWriteTx(ctx) {
		if _, err := q.Exec(ctx, lockQuery, s.key); err != nil {
			return nil, fmt.Errorf("postgres: lock slot %s: %w", s.key, err)
		}
	}

	var value []byte
	err := q.QueryRow(ctx, selectQuery, s.key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return []onboarding.Employee{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: load slot %s: %w", s.key, err)
	}

	employees, ok := slot.Decode(value)
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

	q := pgdb.QueryerFromContext(ctx, s.pool)
	if _, err := q.Exec(ctx, upsertQuery, s.key, string(b), s.now().UTC()); err != nil {
		return fmt.Errorf("postgres: save slot %s: %w", s.key, err)
	}
	return nil
}

// Ping はデータベースへの疎通を確認します。
func (s *Store) Ping(ctx context.Context) error {
	var one int
	if err := s.pool.QueryRow(ctx, pingQuery).Scan(&one); err != nil {
		return fmt.Errorf("postgres: ping: %w", err)
	}
	return nil
}
