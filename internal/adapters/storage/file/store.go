// Package file は社員コレクションをローカルファイル 1 つに保存するストアです。
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/slot"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// Store はディレクトリ配下の <key>.json にコレクションを保存します。
type Store struct {
	path string
	log  *slog.Logger
}

// New は Store を生成します。key が空の場合は slot.DefaultKey を使います。
func New(dir, key string, log *slog.Logger) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("file: storage directory is required")
	}
	if strings.TrimSpace(key) == "" {
		key = slot.DefaultKey
	}
	if strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("file: invalid slot key %q", key)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{path: filepath.Join(filepath.Clean(dir), key+".json"), log: log}, nil
}

// Path は保存先ファイルのパスを返します。
func (s *Store) Path() string {
	return s.path
}

// LoadAll は保存済みのコレクションを返します。
func (s *Store) LoadAll(ctx context.Context) ([]onboarding.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []onboarding.Employee{}, nil
		}
		return nil, fmt.Errorf("file: read %s: %w", s.path, err)
	}

	employees, ok := slot.Decode(b)
	if !ok {
		s.log.WarnContext(ctx, "stored employees are malformed, treating as empty", slog.String("path", s.path))
	}
	return employees, nil
}

// SaveAll はコレクション全体を一時ファイル経由で置き換えます。
func (s *Store) SaveAll(ctx context.Context, employees []onboarding.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := slot.Encode(employees)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("file: create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file: close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("file: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("file: replace %s: %w", s.path, err)
	}

	committed = true
	return nil
}
