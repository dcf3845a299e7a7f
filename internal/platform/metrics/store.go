package metrics

import (
	"context"
	"time"

	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/mgiwa78/hr-intern-macro-app/internal/platform/metrics"

// InstrumentedStore は onboarding.Store の入出力時間を計測し、スパンを記録します。
type InstrumentedStore struct {
	next    onboarding.Store
	metrics *Metrics
	tracer  trace.Tracer
}

// NewInstrumentedStore は next を計測付きでラップします。
func NewInstrumentedStore(next onboarding.Store, m *Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: m, tracer: otel.Tracer(tracerName)}
}

func (s *InstrumentedStore) LoadAll(ctx context.Context) ([]onboarding.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LoadAll", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	defer s.observe("load_all", time.Now())

	employees, err := s.next.LoadAll(ctx)
	recordError(span, err)
	return employees, err
}

func (s *InstrumentedStore) SaveAll(ctx context.Context, employees []onboarding.Employee) error {
	ctx, span := s.tracer.Start(ctx, "storage.SaveAll", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	defer s.observe("save_all", time.Now())

	err := s.next.SaveAll(ctx, employees)
	recordError(span, err)
	return err
}

// Unwrap はラップ対象のストアを返します。
func (s *InstrumentedStore) Unwrap() onboarding.Store {
	return s.next
}

func (s *InstrumentedStore) observe(operation string, start time.Time) {
	s.metrics.StorageDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func recordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
