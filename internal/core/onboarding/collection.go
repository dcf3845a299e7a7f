package onboarding

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator は社員・タスクの識別子を払い出します。
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// NewEmployee はフォーム入力から社員を組み立て、既定タスクを割り当てます。
// 入力値は加工せずそのまま保持します。
func NewEmployee(in CreateEmployeeInput, ids IDGenerator) Employee {
	if ids == nil {
		ids = uuidGenerator{}
	}

	emp := Employee{
		ID:         ids.NewID(),
		FullName:   in.FullName,
		Email:      in.Email,
		JobRole:    in.JobRole,
		Department: in.Department,
		StartDate:  in.StartDate,
	}

	emp.Tasks = make([]Task, 0, len(DefaultTaskTitles))
	for _, title := range DefaultTaskTitles {
		emp.Tasks = append(emp.Tasks, Task{
			ID:         ids.NewID(),
			Title:      title,
			EmployeeID: emp.ID,
		})
	}

	return emp
}

// FindEmployee は ID に一致する社員を返します。
func FindEmployee(employees []Employee, id string) (*Employee, bool) {
	for i := range employees {
		if employees[i].ID == id {
			found := cloneEmployee(employees[i])
			return &found, true
		}
	}
	return nil, false
}

// AppendEmployee は社員を末尾に追加した新しいコレクションを返します。
func AppendEmployee(employees []Employee, emp Employee) []Employee {
	updated := cloneEmployees(employees)
	return append(updated, cloneEmployee(emp))
}

// ToggleTask は指定タスクの完了フラグを反転します。
// 社員またはタスクが見つからない場合は元のコレクションをそのまま返し、changed は false になります。
func ToggleTask(employees []Employee, employeeID, taskID string) (updated []Employee, emp *Employee, changed bool) {
	return mutate(employees, employeeID, func(e *Employee) bool {
		for i := range e.Tasks {
			if e.Tasks[i].ID == taskID {
				e.Tasks[i].Completed = !e.Tasks[i].Completed
				return true
			}
		}
		return false
	})
}

// AddCustomTask は社員にカスタムタスクを追加します。タイトルは前後の空白を除去し、空なら何もしません。
func AddCustomTask(employees []Employee, employeeID, title string, ids IDGenerator) (updated []Employee, emp *Employee, changed bool) {
	trimmed := strings.TrimSpace(title)
	if ids == nil {
		ids = uuidGenerator{}
	}

	return mutate(employees, employeeID, func(e *Employee) bool {
		if trimmed == "" {
			return false
		}
		e.Tasks = append(e.Tasks, Task{
			ID:         ids.NewID(),
			Title:      trimmed,
			EmployeeID: e.ID,
			IsCustom:   true,
		})
		return true
	})
}

// MarkFullyOnboarded は社員をオンボーディング完了にします。一度立てたフラグは戻しません。
// タスクの完了状況は確認しません。
func MarkFullyOnboarded(employees []Employee, employeeID string) (updated []Employee, emp *Employee, changed bool) {
	return mutate(employees, employeeID, func(e *Employee) bool {
		if e.IsFullyOnboarded {
			return false
		}
		e.IsFullyOnboarded = true
		return true
	})
}

// mutate は対象社員のコピーに fn を適用し、置き換えたコレクションを返します。
func mutate(employees []Employee, employeeID string, fn func(*Employee) bool) ([]Employee, *Employee, bool) {
	for i := range employees {
		if employees[i].ID != employeeID {
			continue
		}

		target := cloneEmployee(employees[i])
		if !fn(&target) {
			return employees, &target, false
		}

		updated := cloneEmployees(employees)
		updated[i] = target
		result := cloneEmployee(target)
		return updated, &result, true
	}
	return employees, nil, false
}

func cloneEmployees(employees []Employee) []Employee {
	clone := make([]Employee, 0, len(employees)+1)
	for _, e := range employees {
		clone = append(clone, cloneEmployee(e))
	}
	return clone
}
