package handler

import (
	"errors"

	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, onboarding.ErrInvalidID),
		errors.Is(err, onboarding.ErrInvalidFullName),
		errors.Is(err, onboarding.ErrInvalidEmail),
		errors.Is(err, onboarding.ErrInvalidJobRole),
		errors.Is(err, onboarding.ErrInvalidDepartment),
		errors.Is(err, onboarding.ErrInvalidTaskTitle),
		errors.Is(err, onboarding.ErrInvalidStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, onboarding.ErrEmployeeNotFound), errors.Is(err, onboarding.ErrTaskNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
