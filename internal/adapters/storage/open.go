// Package storage は設定に応じてスロットストアを選択します。
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/file"
	pgstore "github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/postgres"
	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/sqlite"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/config"
	pgdb "github.com/mgiwa78/hr-intern-macro-app/internal/platform/db/postgres"
)

// Backend は選択されたストアとトランザクション制御です。
// Tx が nil の場合、サービスは no-op のトランザクションを使います。
type Backend struct {
	Store onboarding.Store
	Tx    onboarding.TransactionManager

	close func()
}

// Close はストアが保持する接続を解放します。
func (b *Backend) Close() {
	if b != nil && b.close != nil {
		b.close()
	}
}

// Open は cfg.Storage.Driver に対応するストアを開きます。
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		store, err := file.New(cfg.Storage.Path, cfg.Storage.Key, log)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.Path, cfg.Storage.Key, log)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, close: func() { _ = store.Close() }}, nil

	case config.DriverPostgres:
		pool, err := pgdb.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store: pgstore.NewStore(pool, cfg.Storage.Key, log),
			Tx:    pgdb.NewTransactionManager(pool),
			close: pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Storage.Driver)
	}
}
