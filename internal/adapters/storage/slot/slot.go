// Package slot は社員コレクションを 1 つの JSON 配列として符号化します。
// どのストアも同じ形式でスロットに書き込みます。
package slot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
)

// DefaultKey はコレクションを保存するスロットのキーです。
const DefaultKey = "employees"

type employeeRecord struct {
	ID               string        `json:"id"`
	FullName         string        `json:"fullName"`
	Email            string        `json:"email"`
	JobRole          string        `json:"jobRole"`
	Department       string        `json:"department"`
	StartDate        string        `json:"startDate,omitempty"`
	Tasks            []*taskRecord `json:"tasks"`
	IsFullyOnboarded bool          `json:"isFullyOnboarded"`
}

type taskRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Completed  bool   `json:"completed"`
	EmployeeID string `json:"employeeId"`
	IsCustom   bool   `json:"isCustom,omitempty"`
}

// Encode はコレクションを JSON 配列に変換します。空のコレクションは "[]" になります。
func Encode(employees []onboarding.Employee) ([]byte, error) {
	records := make([]employeeRecord, 0, len(employees))
	for _, e := range employees {
		records = append(records, toRecord(e))
	}

	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("slot: encode employees: %w", err)
	}
	return b, nil
}

// Decode は JSON 配列からコレクションを復元します。
// 空データ・不正な形式は空コレクションとして扱い、ok=false で知らせます。
// id を持たない社員・タスク（null 要素を含む）があれば全体を不正とみなします。
func Decode(data []byte) (employees []onboarding.Employee, ok bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []onboarding.Employee{}, true
	}

	var records []*employeeRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return []onboarding.Employee{}, false
	}

	employees = make([]onboarding.Employee, 0, len(records))
	for _, r := range records {
		if !r.valid() {
			return []onboarding.Employee{}, false
		}
		employees = append(employees, fromRecord(*r))
	}
	return employees, true
}

func (r *employeeRecord) valid() bool {
	if r == nil || r.ID == "" {
		return false
	}
	for _, t := range r.Tasks {
		if t == nil || t.ID == "" {
			return false
		}
	}
	return true
}

func toRecord(e onboarding.Employee) employeeRecord {
	tasks := make([]*taskRecord, 0, len(e.Tasks))
	for _, t := range e.Tasks {
		tasks = append(tasks, &taskRecord{
			ID:         t.ID,
			Title:      t.Title,
			Completed:  t.Completed,
			EmployeeID: t.EmployeeID,
			IsCustom:   t.IsCustom,
		})
	}

	return employeeRecord{
		ID:               e.ID,
		FullName:         e.FullName,
		Email:            e.Email,
		JobRole:          e.JobRole,
		Department:       e.Department,
		StartDate:        e.StartDate,
		Tasks:            tasks,
		IsFullyOnboarded: e.IsFullyOnboarded,
	}
}

func fromRecord(r employeeRecord) onboarding.Employee {
	tasks := make([]onboarding.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		tasks = append(tasks, onboarding.Task{
			ID:         t.ID,
			Title:      t.Title,
			Completed:  t.Completed,
			EmployeeID: t.EmployeeID,
			IsCustom:   t.IsCustom,
		})
	}

	return onboarding.Employee{
		ID:               r.ID,
		FullName:         r.FullName,
		Email:            r.Email,
		JobRole:          r.JobRole,
		Department:       r.Department,
		StartDate:        r.StartDate,
		Tasks:            tasks,
		IsFullyOnboarded: r.IsFullyOnboarded,
	}
}
