package metrics

import (
	"errors"

	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultFailure  = "failure"
)

// Metrics はオンボーディングサービスの計測値をまとめます。
// 変更操作の結果件数、ストレージ入出力の所要時間、状態別の社員数を持ちます。
type Metrics struct {
	Mutations       *prometheus.CounterVec
	StorageDuration *prometheus.HistogramVec
	Employees       *prometheus.GaugeVec
}

// NewMetrics は reg に登録済みの Metrics を生成します。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_mutations_total",
			Help: "Total number of onboarding mutations by operation and result.",
		}, []string{"operation", "result"}),
		StorageDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboarding_storage_duration_seconds",
			Help:    "Duration of whole-collection storage reads and writes.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}), // operation: 'load_all', 'save_all'
		Employees: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "onboarding_employees",
			Help: "Number of employees per onboarding status, refreshed on list.",
		}, []string{"status"}),
	}

	for _, op := range []string{
		onboarding.OperationCreateEmployee,
		onboarding.OperationToggleTask,
		onboarding.OperationAddCustomTask,
		onboarding.OperationMarkFullyOnboarded,
	} {
		for _, result := range []string{ResultSuccess, ResultRejected, ResultFailure} {
			m.Mutations.WithLabelValues(op, result)
		}
	}

	return m
}

// ObserveMutation は変更操作の結果を数えます。
func (m *Metrics) ObserveMutation(operation string, err error) {
	m.Mutations.WithLabelValues(operation, Result(err)).Inc()
}

// ObserveStatusCounts は状態別の社員数を更新します。
func (m *Metrics) ObserveStatusCounts(counts map[onboarding.Status]int) {
	for status, n := range counts {
		m.Employees.WithLabelValues(string(status)).Set(float64(n))
	}
}

// Result は err を計測用の結果ラベルに変換します。
// 入力不備や対象無しは rejected、それ以外のエラーは failure です。
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, onboarding.ErrInvalidID),
		errors.Is(err, onboarding.ErrInvalidFullName),
		errors.Is(err, onboarding.ErrInvalidEmail),
		errors.Is(err, onboarding.ErrInvalidJobRole),
		errors.Is(err, onboarding.ErrInvalidDepartment),
		errors.Is(err, onboarding.ErrInvalidTaskTitle),
		errors.Is(err, onboarding.ErrEmployeeNotFound),
		errors.Is(err, onboarding.ErrTaskNotFound):
		return ResultRejected
	default:
		return ResultFailure
	}
}
