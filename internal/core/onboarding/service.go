package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/logger/sl"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Recorder はユースケースの実行結果を計測基盤へ渡します。
type Recorder interface {
	ObserveMutation(operation string, err error)
	ObserveStatusCounts(counts map[Status]int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveMutation(string, error)      {}
func (noopRecorder) ObserveStatusCounts(map[Status]int) {}

const (
	OperationCreateEmployee     = "create_employee"
	OperationToggleTask         = "toggle_task"
	OperationAddCustomTask      = "add_custom_task"
	OperationMarkFullyOnboarded = "mark_fully_onboarded"
)

// Service はオンボーディングに関するユースケースをまとめます。
// 変更系の操作はすべて「全件読み込み → 1 件置換 → 全件書き込み」で行います。
type Service struct {
	store    Store
	ids      IDGenerator
	tx       TransactionManager
	log      *slog.Logger
	recorder Recorder

	mu sync.Mutex
}

// UseCase はオンボーディングユースケースの公開インターフェースです。
// ErrInvalid* / ErrEmployeeNotFound / ErrTaskNotFound を返した場合、保存済みの状態は変更されていません。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	ToggleTask(ctx context.Context, in ToggleTaskInput) (*Employee, error)
	AddCustomTask(ctx context.Context, in AddCustomTaskInput) (*Employee, error)
	MarkFullyOnboarded(ctx context.Context, in MarkFullyOnboardedInput) (*Employee, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithLogger はロガーを設定します。
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRecorder はメトリクス記録先を設定します。
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewService は Service を生成します。
func NewService(store Store, ids IDGenerator, tx TransactionManager, opts ...Option) *Service {
	if ids == nil {
		ids = uuidGenerator{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{
		store:    store,
		ids:      ids,
		tx:       tx,
		log:      slog.New(slog.DiscardHandler),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEmployeeInput は社員作成フォームの入力です。
type CreateEmployeeInput struct {
	FullName   string
	Email      string
	JobRole    string
	Department string
	StartDate  string
}

// ToggleTaskInput はタスク完了切り替えの入力です。
type ToggleTaskInput struct {
	EmployeeID string
	TaskID     string
}

// AddCustomTaskInput はカスタムタスク追加の入力です。
type AddCustomTaskInput struct {
	EmployeeID string
	Title      string
}

// MarkFullyOnboardedInput はオンボーディング完了の入力です。
type MarkFullyOnboardedInput struct {
	EmployeeID string
}

// CreateEmployee は社員を登録し、既定タスクを割り当てて保存します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	if err := validateCreateInput(in); err != nil {
		return s.reject(OperationCreateEmployee, err)
	}

	return s.update(ctx, OperationCreateEmployee, func(current []Employee) ([]Employee, *Employee, error) {
		emp := NewEmployee(in, s.ids)
		return AppendEmployee(current, emp), &emp, nil
	})
}

// ToggleTask はタスクの完了状態を反転します。
func (s *Service) ToggleTask(ctx context.Context, in ToggleTaskInput) (*Employee, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return s.reject(OperationToggleTask, fmt.Errorf("employee_id: %w", ErrInvalidID))
	}
	if strings.TrimSpace(in.TaskID) == "" {
		return s.reject(OperationToggleTask, fmt.Errorf("task_id: %w", ErrInvalidID))
	}

	return s.update(ctx, OperationToggleTask, func(current []Employee) ([]Employee, *Employee, error) {
		updated, emp, changed := ToggleTask(current, in.EmployeeID, in.TaskID)
		if emp == nil {
			return nil, nil, ErrEmployeeNotFound
		}
		if !changed {
			return nil, nil, ErrTaskNotFound
		}
		return updated, emp, nil
	})
}

// AddCustomTask は社員にカスタムタスクを追加します。
func (s *Service) AddCustomTask(ctx context.Context, in AddCustomTaskInput) (*Employee, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return s.reject(OperationAddCustomTask, fmt.Errorf("employee_id: %w", ErrInvalidID))
	}
	if strings.TrimSpace(in.Title) == "" {
		return s.reject(OperationAddCustomTask, ErrInvalidTaskTitle)
	}

	return s.update(ctx, OperationAddCustomTask, func(current []Employee) ([]Employee, *Employee, error) {
		updated, emp, changed := AddCustomTask(current, in.EmployeeID, in.Title, s.ids)
		if emp == nil {
			return nil, nil, ErrEmployeeNotFound
		}
		if !changed {
			return nil, nil, ErrInvalidTaskTitle
		}
		return updated, emp, nil
	})
}

// MarkFullyOnboarded は社員をオンボーディング完了にします。
// 完了率 100% であることの確認は呼び出し側の責務で、ここでは行いません。
func (s *Service) MarkFullyOnboarded(ctx context.Context, in MarkFullyOnboardedInput) (*Employee, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return s.reject(OperationMarkFullyOnboarded, fmt.Errorf("employee_id: %w", ErrInvalidID))
	}

	return s.update(ctx, OperationMarkFullyOnboarded, func(current []Employee) ([]Employee, *Employee, error) {
		updated, emp, changed := MarkFullyOnboarded(current, in.EmployeeID)
		if emp == nil {
			return nil, nil, ErrEmployeeNotFound
		}
		if !changed {
			// 既に完了済み。書き込みは不要です。
			return nil, emp, nil
		}
		return updated, emp, nil
	})
}

// update は全件読み込み・変更・全件書き込みを 1 トランザクションで行います。
// fn が nil のコレクションを返した場合は書き込みを省略します。
func (s *Service) update(ctx context.Context, operation string, fn func([]Employee) ([]Employee, *Employee, error)) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result *Employee
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		current, err := s.store.LoadAll(txCtx)
		if err != nil {
			return fmt.Errorf("onboarding: load employees: %w", err)
		}

		updated, emp, err := fn(current)
		if err != nil {
			return err
		}

		if updated != nil {
			if err := s.store.SaveAll(txCtx, updated); err != nil {
				return fmt.Errorf("onboarding: save employees: %w", err)
			}
		}

		result = emp
		return nil
	})
	s.recorder.ObserveMutation(operation, err)
	if err != nil {
		s.log.DebugContext(ctx, "mutation not applied", slog.String("operation", operation), sl.Err(err))
		return nil, err
	}

	s.log.DebugContext(ctx, "mutation applied", slog.String("operation", operation), slog.String("employee_id", result.ID))
	return result, nil
}

// reject はストアに触れる前に弾いた入力を記録します。
func (s *Service) reject(operation string, err error) (*Employee, error) {
	s.recorder.ObserveMutation(operation, err)
	return nil, err
}

func validateCreateInput(in CreateEmployeeInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return ErrInvalidFullName
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(in.JobRole) == "" {
		return ErrInvalidJobRole
	}
	if strings.TrimSpace(in.Department) == "" {
		return ErrInvalidDepartment
	}
	return nil
}
