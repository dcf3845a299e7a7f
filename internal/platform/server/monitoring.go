package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 5 * time.Second

// MonitoringServer は /metrics と /healthz を提供する HTTP サーバーです。
type MonitoringServer struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	log             *slog.Logger
}

// NewMonitoringServer は gatherer のメトリクスと health のヘルスチェックを公開するサーバーを構築します。
func NewMonitoringServer(addr string, gatherer prometheus.Gatherer, health http.Handler, shutdownTimeout time.Duration, log *slog.Logger) *MonitoringServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle("/healthz", health)

	return &MonitoringServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		log:             log,
	}
}

// Handler はルーティング済みのハンドラを返します。
func (m *MonitoringServer) Handler() http.Handler {
	return m.srv.Handler
}

// Run はサーバーを起動し、コンテキストがキャンセルされると Shutdown します。
func (m *MonitoringServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", m.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", m.srv.Addr, err)
	}
	return m.Serve(ctx, lis)
}

// Serve は lis で待ち受けます。
func (m *MonitoringServer) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		m.log.InfoContext(ctx, "monitoring server listening", slog.String("addr", lis.Addr().String()))
		errCh <- m.srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve monitoring: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), m.shutdownTimeout)
	defer cancel()
	if err := m.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown monitoring: %w", err)
	}
	return nil
}
