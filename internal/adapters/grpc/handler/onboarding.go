package handler

import (
	"context"

	onboardingpb "github.com/mgiwa78/hr-intern-macro-app/internal/adapters/grpc/gen/onboarding/v1"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OnboardingGrpcHandler は OnboardingService の gRPC 実装です。
type OnboardingGrpcHandler struct {
	svc onboarding.UseCase
	onboardingpb.UnimplementedOnboardingServiceServer
}

// NewOnboardingGrpcHandler は OnboardingGrpcHandler を生成します。
func NewOnboardingGrpcHandler(svc onboarding.UseCase) *OnboardingGrpcHandler {
	return &OnboardingGrpcHandler{svc: svc}
}

// CreateEmployee は社員を登録します。
func (h *OnboardingGrpcHandler) CreateEmployee(ctx context.Context, req *onboardingpb.CreateEmployeeRequest) (*onboardingpb.CreateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateEmployee(ctx, onboarding.CreateEmployeeInput{
		FullName:   req.GetFullName(),
		Email:      req.GetEmail(),
		JobRole:    req.GetJobRole(),
		Department: req.GetDepartment(),
		StartDate:  req.GetStartDate(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.CreateEmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// GetEmployee は社員の詳細を返します。
func (h *OnboardingGrpcHandler) GetEmployee(ctx context.Context, req *onboardingpb.GetEmployeeRequest) (*onboardingpb.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, onboarding.GetEmployeeInput{ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// ListEmployees は検索語と状態で絞り込んだ社員一覧を返します。
func (h *OnboardingGrpcHandler) ListEmployees(ctx context.Context, req *onboardingpb.ListEmployeesRequest) (*onboardingpb.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *onboarding.Status
	if req.GetStatus() != onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED {
		domainStatus, err := toDomainStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	result, err := h.svc.ListEmployees(ctx, onboarding.ListEmployeesInput{
		Query:  req.GetQuery(),
		Status: statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	employees := make([]*onboardingpb.Employee, 0, len(result.Employees))
	for _, row := range result.Employees {
		employees = append(employees, toProtoSummary(row))
	}

	return &onboardingpb.ListEmployeesResponse{Employees: employees}, nil
}

// ToggleTask はタスクの完了状態を反転します。
func (h *OnboardingGrpcHandler) ToggleTask(ctx context.Context, req *onboardingpb.ToggleTaskRequest) (*onboardingpb.ToggleTaskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.ToggleTask(ctx, onboarding.ToggleTaskInput{
		EmployeeID: req.GetEmployeeId(),
		TaskID:     req.GetTaskId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.ToggleTaskResponse{Employee: toProtoEmployee(updated)}, nil
}

// AddCustomTask はカスタムタスクを追加します。
func (h *OnboardingGrpcHandler) AddCustomTask(ctx context.Context, req *onboardingpb.AddCustomTaskRequest) (*onboardingpb.AddCustomTaskResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.AddCustomTask(ctx, onboarding.AddCustomTaskInput{
		EmployeeID: req.GetEmployeeId(),
		Title:      req.GetTitle(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.AddCustomTaskResponse{Employee: toProtoEmployee(updated)}, nil
}

// MarkFullyOnboarded は社員をオンボーディング完了にします。
func (h *OnboardingGrpcHandler) MarkFullyOnboarded(ctx context.Context, req *onboardingpb.MarkFullyOnboardedRequest) (*onboardingpb.MarkFullyOnboardedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.MarkFullyOnboarded(ctx, onboarding.MarkFullyOnboardedInput{EmployeeID: req.GetEmployeeId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.MarkFullyOnboardedResponse{Employee: toProtoEmployee(updated)}, nil
}

func toProtoEmployee(e *onboarding.Employee) *onboardingpb.Employee {
	if e == nil {
		return nil
	}
	return toProtoSummary(onboarding.EmployeeSummary{
		Employee: *e,
		Status:   onboarding.ClassifyStatus(*e),
		Progress: onboarding.ProgressPercent(*e),
	})
}

func toProtoSummary(row onboarding.EmployeeSummary) *onboardingpb.Employee {
	e := row.Employee
	tasks := make([]*onboardingpb.Task, 0, len(e.Tasks))
	for _, t := range e.Tasks {
		tasks = append(tasks, &onboardingpb.Task{
			Id:         t.ID,
			Title:      t.Title,
			Completed:  t.Completed,
			EmployeeId: t.EmployeeID,
			IsCustom:   t.IsCustom,
		})
	}

	return &onboardingpb.Employee{
		Id:               e.ID,
		FullName:         e.FullName,
		Email:            e.Email,
		JobRole:          e.JobRole,
		Department:       e.Department,
		StartDate:        e.StartDate,
		Tasks:            tasks,
		IsFullyOnboarded: e.IsFullyOnboarded,
		Status:           toProtoStatus(row.Status),
		Progress:         row.Progress,
	}
}

func toProtoStatus(status onboarding.Status) onboardingpb.EmployeeStatus {
	switch status {
	case onboarding.StatusNotStarted:
		return onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_NOT_STARTED
	case onboarding.StatusInProgress:
		return onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_IN_PROGRESS
	case onboarding.StatusCompleted:
		return onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_COMPLETED
	default:
		return onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_UNSPECIFIED
	}
}

func toDomainStatus(status onboardingpb.EmployeeStatus) (onboarding.Status, error) {
	switch status {
	case onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_NOT_STARTED:
		return onboarding.StatusNotStarted, nil
	case onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_IN_PROGRESS:
		return onboarding.StatusInProgress, nil
	case onboardingpb.EmployeeStatus_EMPLOYEE_STATUS_COMPLETED:
		return onboarding.StatusCompleted, nil
	default:
		return "", onboarding.ErrInvalidStatus
	}
}
