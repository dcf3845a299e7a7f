package onboarding

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	employees []Employee
	saves     int
	loadErr   error
	saveErr   error
}

func (s *fakeStore) LoadAll(context.Context) ([]Employee, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return cloneEmployees(s.employees), nil
}

func (s *fakeStore) SaveAll(_ context.Context, employees []Employee) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.employees = cloneEmployees(employees)
	return nil
}

type recordedMutation struct {
	operation string
	err       error
}

type fakeRecorder struct {
	mutations []recordedMutation
	counts    map[Status]int
}

func (r *fakeRecorder) ObserveMutation(operation string, err error) {
	r.mutations = append(r.mutations, recordedMutation{operation: operation, err: err})
}

func (r *fakeRecorder) ObserveStatusCounts(counts map[Status]int) {
	r.counts = counts
}

func newTestService(store *fakeStore) *Service {
	return NewService(store, &sequenceIDs{prefix: "id"}, nil)
}

func createJane(t *testing.T, svc *Service) *Employee {
	t.Helper()

	created, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		FullName:   "Jane Doe",
		Email:      "jane@co.com",
		JobRole:    "Software Engineer",
		Department: "Engineering",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	return created
}

func TestService_CreateEmployee_Scenario(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)

	created := createJane(t, svc)

	loaded, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 stored employee, got %d", len(loaded))
	}
	if loaded[0].ID != created.ID {
		t.Fatalf("expected stored id %s, got %s", created.ID, loaded[0].ID)
	}
	if len(loaded[0].Tasks) != 6 {
		t.Fatalf("expected 6 tasks, got %d", len(loaded[0].Tasks))
	}
	if loaded[0].CompletedTaskCount() != 0 || loaded[0].IsFullyOnboarded {
		t.Fatal("expected all tasks incomplete and not onboarded")
	}
	if got := ClassifyStatus(loaded[0]); got != StatusNotStarted {
		t.Fatalf("expected not_started, got %s", got)
	}
}

func TestService_CreateEmployee_AppendsToExisting(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)

	first := createJane(t, svc)
	second := createJane(t, svc)

	if first.ID == second.ID {
		t.Fatal("expected distinct ids for each creation")
	}
	if len(store.employees) != 2 || store.employees[0].ID != first.ID || store.employees[1].ID != second.ID {
		t.Fatalf("expected employees appended in order, got %+v", store.employees)
	}
}

func TestService_CreateEmployee_RequiredFields(t *testing.T) {
	t.Parallel()

	valid := CreateEmployeeInput{FullName: "Jane", Email: "jane@co.com", JobRole: "HR Manager", Department: "HR"}

	tests := []struct {
		name   string
		mutate func(*CreateEmployeeInput)
		want   error
	}{
		{name: "full name", mutate: func(in *CreateEmployeeInput) { in.FullName = "  " }, want: ErrInvalidFullName},
		{name: "email", mutate: func(in *CreateEmployeeInput) { in.Email = "" }, want: ErrInvalidEmail},
		{name: "job role", mutate: func(in *CreateEmployeeInput) { in.JobRole = "" }, want: ErrInvalidJobRole},
		{name: "department", mutate: func(in *CreateEmployeeInput) { in.Department = "\t" }, want: ErrInvalidDepartment},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{}
			svc := newTestService(store)
			in := valid
			tt.mutate(&in)

			_, err := svc.CreateEmployee(context.Background(), in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if store.saves != 0 {
				t.Fatal("expected nothing to be saved")
			}
		})
	}
}

func TestService_ToggleTask_HalfwayScenario(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)
	created := createJane(t, svc)

	var latest *Employee
	for _, task := range created.Tasks[:3] {
		updated, err := svc.ToggleTask(context.Background(), ToggleTaskInput{EmployeeID: created.ID, TaskID: task.ID})
		if err != nil {
			t.Fatalf("ToggleTask returned error: %v", err)
		}
		latest = updated
	}

	if got := ProgressPercent(*latest); got != 50 {
		t.Fatalf("expected 50%% progress, got %v", got)
	}
	if got := ClassifyStatus(*latest); got != StatusInProgress {
		t.Fatalf("expected in_progress, got %s", got)
	}
	if got := ProgressPercent(store.employees[0]); got != 50 {
		t.Fatalf("expected stored progress 50%%, got %v", got)
	}
}

func TestService_ToggleTask_Twice(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeStore{})
	created := createJane(t, svc)
	in := ToggleTaskInput{EmployeeID: created.ID, TaskID: created.Tasks[0].ID}

	if _, err := svc.ToggleTask(context.Background(), in); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	updated, err := svc.ToggleTask(context.Background(), in)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if updated.Tasks[0].Completed {
		t.Fatal("expected task to return to incomplete")
	}
}

func TestService_ToggleTask_MissingTargetsLeaveStateUntouched(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)
	created := createJane(t, svc)
	savesBefore := store.saves

	_, err := svc.ToggleTask(context.Background(), ToggleTaskInput{EmployeeID: "unknown", TaskID: created.Tasks[0].ID})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	_, err = svc.ToggleTask(context.Background(), ToggleTaskInput{EmployeeID: created.ID, TaskID: "unknown"})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	if store.saves != savesBefore {
		t.Fatalf("expected no writes, got %d", store.saves-savesBefore)
	}
	if store.employees[0].CompletedTaskCount() != 0 {
		t.Fatal("expected tasks to stay incomplete")
	}
}

func TestService_AddCustomTask(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)
	created := createJane(t, svc)

	updated, err := svc.AddCustomTask(context.Background(), AddCustomTaskInput{EmployeeID: created.ID, Title: " Pair with buddy "})
	if err != nil {
		t.Fatalf("AddCustomTask returned error: %v", err)
	}

	if len(updated.Tasks) != 7 {
		t.Fatalf("expected 7 tasks, got %d", len(updated.Tasks))
	}
	added := updated.Tasks[6]
	if added.Title != "Pair with buddy" || !added.IsCustom || added.EmployeeID != created.ID {
		t.Fatalf("unexpected custom task %+v", added)
	}
	if len(store.employees[0].Tasks) != 7 {
		t.Fatal("expected custom task to be persisted")
	}
}

func TestService_AddCustomTask_BlankTitle(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)
	created := createJane(t, svc)
	savesBefore := store.saves

	_, err := svc.AddCustomTask(context.Background(), AddCustomTaskInput{EmployeeID: created.ID, Title: "   "})
	if !errors.Is(err, ErrInvalidTaskTitle) {
		t.Fatalf("expected ErrInvalidTaskTitle, got %v", err)
	}
	if store.saves != savesBefore || len(store.employees[0].Tasks) != 6 {
		t.Fatal("expected task list to stay unchanged")
	}
}

func TestService_MarkFullyOnboarded_AfterAllTasks(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeStore{})
	created := createJane(t, svc)

	for _, task := range created.Tasks {
		if _, err := svc.ToggleTask(context.Background(), ToggleTaskInput{EmployeeID: created.ID, TaskID: task.ID}); err != nil {
			t.Fatalf("ToggleTask returned error: %v", err)
		}
	}

	before, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: created.ID})
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	if got := ClassifyStatus(*before); got != StatusInProgress {
		t.Fatalf("expected in_progress before explicit completion, got %s", got)
	}

	done, err := svc.MarkFullyOnboarded(context.Background(), MarkFullyOnboardedInput{EmployeeID: created.ID})
	if err != nil {
		t.Fatalf("MarkFullyOnboarded returned error: %v", err)
	}
	if got := ProgressPercent(*done); got != 100 {
		t.Fatalf("expected 100%% progress, got %v", got)
	}
	if got := ClassifyStatus(*done); got != StatusCompleted {
		t.Fatalf("expected completed, got %s", got)
	}
}

func TestService_MarkFullyOnboarded_WithoutCompletedTasks(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)
	created := createJane(t, svc)

	done, err := svc.MarkFullyOnboarded(context.Background(), MarkFullyOnboardedInput{EmployeeID: created.ID})
	if err != nil {
		t.Fatalf("MarkFullyOnboarded returned error: %v", err)
	}
	if !done.IsFullyOnboarded || !store.employees[0].IsFullyOnboarded {
		t.Fatal("expected flag to be set even though no task is completed")
	}
	if got := ClassifyStatus(*done); got != StatusCompleted {
		t.Fatalf("expected completed, got %s", got)
	}

	savesBefore := store.saves
	if _, err := svc.MarkFullyOnboarded(context.Background(), MarkFullyOnboardedInput{EmployeeID: created.ID}); err != nil {
		t.Fatalf("second MarkFullyOnboarded returned error: %v", err)
	}
	if store.saves != savesBefore {
		t.Fatal("expected repeated completion to skip the write")
	}
}

func TestService_MarkFullyOnboarded_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeStore{})

	_, err := svc.MarkFullyOnboarded(context.Background(), MarkFullyOnboardedInput{EmployeeID: "missing"})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_StorageErrors(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("disk unavailable")
	svc := newTestService(&fakeStore{loadErr: loadErr})
	if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{}); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error to propagate, got %v", err)
	}

	saveErr := errors.New("read-only filesystem")
	recorder := &fakeRecorder{}
	svc = NewService(&fakeStore{saveErr: saveErr}, nil, nil, WithRecorder(recorder))
	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{FullName: "A", Email: "a@co.com", JobRole: "IT Technician", Department: "IT"})
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error to propagate, got %v", err)
	}
	if len(recorder.mutations) != 1 || recorder.mutations[0].operation != OperationCreateEmployee || recorder.mutations[0].err == nil {
		t.Fatalf("expected failed mutation to be recorded, got %+v", recorder.mutations)
	}
}

func TestService_InvalidIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeStore{})
	ctx := context.Background()

	if _, err := svc.ToggleTask(ctx, ToggleTaskInput{TaskID: "t"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.ToggleTask(ctx, ToggleTaskInput{EmployeeID: "e"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.AddCustomTask(ctx, AddCustomTaskInput{Title: "x"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.MarkFullyOnboarded(ctx, MarkFullyOnboardedInput{}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetEmployee(ctx, GetEmployeeInput{ID: " "}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_RejectedInputsAreRecorded(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	recorder := &fakeRecorder{}
	svc := NewService(store, nil, nil, WithRecorder(recorder))
	ctx := context.Background()

	_, _ = svc.CreateEmployee(ctx, CreateEmployeeInput{})
	_, _ = svc.ToggleTask(ctx, ToggleTaskInput{TaskID: "t"})
	_, _ = svc.ToggleTask(ctx, ToggleTaskInput{EmployeeID: "e"})
	_, _ = svc.AddCustomTask(ctx, AddCustomTaskInput{Title: "x"})
	_, _ = svc.AddCustomTask(ctx, AddCustomTaskInput{EmployeeID: "e", Title: " "})
	_, _ = svc.MarkFullyOnboarded(ctx, MarkFullyOnboardedInput{})

	want := []string{
		OperationCreateEmployee,
		OperationToggleTask,
		OperationToggleTask,
		OperationAddCustomTask,
		OperationAddCustomTask,
		OperationMarkFullyOnboarded,
	}
	if len(recorder.mutations) != len(want) {
		t.Fatalf("expected %d recorded rejections, got %+v", len(want), recorder.mutations)
	}
	for i, m := range recorder.mutations {
		if m.operation != want[i] || m.err == nil {
			t.Errorf("mutation %d: expected failed %s, got %+v", i, want[i], m)
		}
	}
	if store.saves != 0 {
		t.Fatalf("expected no writes for rejected input, got %d", store.saves)
	}
}
