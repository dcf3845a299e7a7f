package onboarding

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

const statusFilterAll = "all"

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	// Query は氏名またはメールアドレスに対する部分一致検索語です。大文字小文字は区別しません。
	Query  string
	Status *Status
}

// EmployeeSummary は一覧の 1 行分です。
type EmployeeSummary struct {
	Employee Employee
	Status   Status
	Progress float64
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees []EmployeeSummary
}

// ParseStatus は状態フィルタ文字列を解釈します。空文字または "all" はフィルタ無し (nil) です。
func ParseStatus(raw string) (*Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" || normalized == statusFilterAll {
		return nil, nil
	}

	status := Status(normalized)
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return &status, nil
}

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		employees, err := s.store.LoadAll(txCtx)
		if err != nil {
			return fmt.Errorf("onboarding: load employees: %w", err)
		}
		found, ok := FindEmployee(employees, in.ID)
		if !ok {
			return ErrEmployeeNotFound
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEmployees は検索語と状態で絞り込んだ社員一覧を返します。並び順は登録順です。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	var employees []Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		loaded, err := s.store.LoadAll(txCtx)
		if err != nil {
			return fmt.Errorf("onboarding: load employees: %w", err)
		}
		employees = loaded
		return nil
	}); err != nil {
		return nil, err
	}

	counts := map[Status]int{
		StatusNotStarted: 0,
		StatusInProgress: 0,
		StatusCompleted:  0,
	}
	match := newMatcher(in.Query)
	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		status := ClassifyStatus(emp)
		counts[status]++

		if !match(emp) {
			continue
		}
		if in.Status != nil && status != *in.Status {
			continue
		}
		summaries = append(summaries, EmployeeSummary{
			Employee: cloneEmployee(emp),
			Status:   status,
			Progress: ProgressPercent(emp),
		})
	}
	s.recorder.ObserveStatusCounts(counts)

	return &ListEmployeesResult{Employees: summaries}, nil
}

// newMatcher は氏名・メールアドレスへの大文字小文字を無視した部分一致判定を返します。
func newMatcher(query string) func(Employee) bool {
	if query == "" {
		return func(Employee) bool { return true }
	}

	fold := cases.Fold()
	needle := fold.String(query)
	return func(e Employee) bool {
		return strings.Contains(fold.String(e.FullName), needle) ||
			strings.Contains(fold.String(e.Email), needle)
	}
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
