package server_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPinger struct {
	shouldFail bool
}

func (m *mockPinger) Ping(_ context.Context) error {
	if m.shouldFail {
		return errors.New("mock storage error")
	}
	return nil
}

type loadOnlyStore struct {
	err error
}

func (s loadOnlyStore) LoadAll(context.Context) ([]onboarding.Employee, error) {
	return []onboarding.Employee{}, s.err
}

func (s loadOnlyStore) SaveAll(context.Context, []onboarding.Employee) error {
	return nil
}

type pingableStore struct {
	loadOnlyStore
	pinged bool
}

func (s *pingableStore) Ping(context.Context) error {
	s.pinged = true
	return nil
}

func TestHealthChecker(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("storage ok", func(t *testing.T) {
		healthChecker := server.NewHealthChecker(&mockPinger{}, logger)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		healthChecker.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.JSONEq(t, `{"storage":"ok"}`, rr.Body.String())
		require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})

	t.Run("storage unavailable", func(t *testing.T) {
		healthChecker := server.NewHealthChecker(&mockPinger{shouldFail: true}, logger)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()

		healthChecker.ServeHTTP(rr, req)

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		require.JSONEq(t, `{"storage":"unavailable"}`, rr.Body.String())
	})
}

func TestStorePinger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	require.NoError(t, server.StorePinger(loadOnlyStore{}).Ping(ctx))
	require.ErrorIs(t, server.StorePinger(loadOnlyStore{err: assert.AnError}).Ping(ctx), assert.AnError)

	store := &pingableStore{}
	require.NoError(t, server.StorePinger(store).Ping(ctx))
	assert.True(t, store.pinged)
}
