package handler

import (
	"context"
	"net"
	"sync"
	"testing"

	onboardingpb "github.com/mgiwa78/hr-intern-macro-app/internal/adapters/grpc/gen/onboarding/v1"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type memoryStore struct {
	mu        sync.Mutex
	employees []onboarding.Employee
}

func (s *memoryStore) LoadAll(context.Context) ([]onboarding.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]onboarding.Employee{}, s.employees...), nil
}

func (s *memoryStore) SaveAll(_ context.Context, employees []onboarding.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = employees
	return nil
}

func newBufconnClient(t *testing.T) onboardingpb.OnboardingServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	onboardingpb.RegisterOnboardingServiceServer(srv, NewOnboardingGrpcHandler(onboarding.NewService(&memoryStore{}, nil, nil)))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return onboardingpb.NewOnboardingServiceClient(conn)
}

func TestOnboardingService_OverBufconn(t *testing.T) {
	t.Parallel()

	client := newBufconnClient(t)
	ctx := context.Background()

	created, err := client.CreateEmployee(ctx, &onboardingpb.CreateEmployeeRequest{
		FullName:   "Grace Hopper",
		Email:      "grace@example.com",
		JobRole:    "Software Engineer",
		Department: "Engineering",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	emp := created.GetEmployee()
	if len(emp.GetTasks()) != len(onboarding.DefaultTaskTitles) {
		t.Fatalf("expected %d default tasks, got %d", len(onboarding.DefaultTaskTitles), len(emp.GetTasks()))
	}
	if emp.GetStatus() != onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_NOT_STARTED {
		t.Fatalf("expected not started, got %s", emp.GetStatus())
	}

	toggled, err := client.ToggleTask(ctx, &onboardingpb.ToggleTaskRequest{EmployeeId: emp.GetId(), TaskId: emp.GetTasks()[0].GetId()})
	if err != nil {
		t.Fatalf("ToggleTask returned error: %v", err)
	}
	if !toggled.GetEmployee().GetTasks()[0].GetCompleted() ||
		toggled.GetEmployee().GetStatus() != onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_IN_PROGRESS {
		t.Fatalf("unexpected employee after toggle %v", toggled.GetEmployee())
	}

	added, err := client.AddCustomTask(ctx, &onboardingpb.AddCustomTaskRequest{EmployeeId: emp.GetId(), Title: "  Meet the team  "})
	if err != nil {
		t.Fatalf("AddCustomTask returned error: %v", err)
	}
	tasks := added.GetEmployee().GetTasks()
	last := tasks[len(tasks)-1]
	if last.GetTitle() != "Meet the team" || !last.GetIsCustom() || last.GetEmployeeId() != emp.GetId() {
		t.Fatalf("unexpected custom task %v", last)
	}

	list, err := client.ListEmployees(ctx, &onboardingpb.ListEmployeesRequest{
		Query:  "GRACE",
		Status: onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_IN_PROGRESS,
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(list.GetEmployees()) != 1 || list.GetEmployees()[0].GetId() != emp.GetId() {
		t.Fatalf("unexpected list %v", list.GetEmployees())
	}

	done, err := client.MarkFullyOnboarded(ctx, &onboardingpb.MarkFullyOnboardedRequest{EmployeeId: emp.GetId()})
	if err != nil {
		t.Fatalf("MarkFullyOnboarded returned error: %v", err)
	}
	if !done.GetEmployee().GetIsFullyOnboarded() ||
		done.GetEmployee().GetStatus() != onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_COMPLETED {
		t.Fatalf("unexpected employee after completion %v", done.GetEmployee())
	}

	got, err := client.GetEmployee(ctx, &onboardingpb.GetEmployeeRequest{Id: emp.GetId()})
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	if got.GetEmployee().GetEmail() != "grace@example.com" || len(got.GetEmployee().GetTasks()) != len(onboarding.DefaultTaskTitles)+1 {
		t.Fatalf("unexpected employee %v", got.GetEmployee())
	}
}

func TestOnboardingService_OverBufconn_NotFound(t *testing.T) {
	t.Parallel()

	client := newBufconnClient(t)

	_, err := client.GetEmployee(context.Background(), &onboardingpb.GetEmployeeRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	_, err = client.AddCustomTask(context.Background(), &onboardingpb.AddCustomTaskRequest{EmployeeId: "missing", Title: "   "})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for blank title, got %v", err)
	}
}
