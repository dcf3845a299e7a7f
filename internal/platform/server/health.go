package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/logger/sl"
)

// Pinger はストレージの疎通確認を行います。
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc は関数を Pinger として扱います。
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// StorePinger は store の疎通確認を返します。
// store が Ping を持たない場合は LoadAll が成功するかで判定します。
func StorePinger(store onboarding.Store) Pinger {
	if p, ok := store.(Pinger); ok {
		return p
	}
	return PingerFunc(func(ctx context.Context) error {
		_, err := store.LoadAll(ctx)
		return err
	})
}

// HealthChecker は /healthz を処理します。
type HealthChecker struct {
	storage Pinger
	log     *slog.Logger
}

func NewHealthChecker(storage Pinger, log *slog.Logger) *HealthChecker {
	return &HealthChecker{storage: storage, log: log}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	if err := h.storage.Ping(req.Context()); err != nil {
		status["storage"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: storage", sl.Err(err))
	} else {
		status["storage"] = "ok"
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", sl.Err(err))
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
