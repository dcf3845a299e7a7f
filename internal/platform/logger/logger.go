// Package logger は実行環境ごとの slog.Logger を構築します。
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/config"
)

// New は標準出力へ書き出すロガーを返します。
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter は env に応じたハンドラで w へ書き出すロガーを返します。
// local はテキスト形式の debug、development は JSON の info、
// production は時刻を省いた JSON の warn です。
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvDevelopment:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case config.EnvProduction:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelWarn,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
}
