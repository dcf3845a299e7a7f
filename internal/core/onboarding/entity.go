package onboarding

import "math"

// Status は社員のオンボーディング状態を表します。保存はされず、常に導出されます。
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Employee はオンボーディング対象の社員エンティティです。
type Employee struct {
	ID               string
	FullName         string
	Email            string
	JobRole          string
	Department       string
	StartDate        string
	Tasks            []Task
	IsFullyOnboarded bool
}

// Task は社員ごとのオンボーディングタスクです。
type Task struct {
	ID         string
	Title      string
	Completed  bool
	EmployeeID string
	IsCustom   bool
}

// DefaultTaskTitles は新規社員に割り当てるタスクの雛形です。順序は固定です。
var DefaultTaskTitles = []string{
	"Sign NDA",
	"Submit ID documents",
	"Set up email",
	"Complete HR orientation",
	"Access company tools (GitHub, Slack, etc.)",
	"Book intro meeting with manager",
}

// Departments は作成フォームで提示する部署の候補です。
var Departments = []string{
	"Engineering",
	"Sales",
	"Marketing",
	"Design",
	"HR",
	"Finance",
	"Legal",
	"Customer Support",
	"IT",
}

// JobRoles は作成フォームで提示する職種の候補です。
var JobRoles = []string{
	"Software Engineer",
	"Sales Manager",
	"Marketing Specialist",
	"Graphic Designer",
	"HR Manager",
	"Finance Analyst",
	"Legal Counsel",
	"Customer Support Specialist",
	"IT Technician",
}

const startDateNotSet = "Not set"

// TaskCount はタスク総数を返します。
func (e Employee) TaskCount() int {
	return len(e.Tasks)
}

// CompletedTaskCount は完了済みタスク数を返します。
func (e Employee) CompletedTaskCount() int {
	count := 0
	for _, task := range e.Tasks {
		if task.Completed {
			count++
		}
	}
	return count
}

// ClassifyStatus は社員の状態を導出します。
// 完了扱いになるのは IsFullyOnboarded が立っている場合のみで、全タスク完了だけでは InProgress のままです。
func ClassifyStatus(e Employee) Status {
	if e.IsFullyOnboarded {
		return StatusCompleted
	}
	if e.CompletedTaskCount() == 0 {
		return StatusNotStarted
	}
	return StatusInProgress
}

// ProgressPercent は完了率を 0〜100 で返します。タスクが無い場合は 0 です。
func ProgressPercent(e Employee) float64 {
	total := e.TaskCount()
	if total == 0 {
		return 0
	}
	return 100 * float64(e.CompletedTaskCount()) / float64(total)
}

// RoundedProgress は表示用に四捨五入した完了率を返します。
func RoundedProgress(e Employee) int {
	return int(math.Round(ProgressPercent(e)))
}

// StartDateLabel は入社日の表示文字列を返します。
func StartDateLabel(e Employee) string {
	if e.StartDate == "" {
		return startDateNotSet
	}
	return e.StartDate
}

func cloneEmployee(e Employee) Employee {
	clone := e
	if e.Tasks != nil {
		clone.Tasks = make([]Task, len(e.Tasks))
		copy(clone.Tasks, e.Tasks)
	}
	return clone
}
