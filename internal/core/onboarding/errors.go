package onboarding

import "errors"

var (
	ErrInvalidID         = errors.New("onboarding: invalid id")
	ErrInvalidFullName   = errors.New("onboarding: invalid full name")
	ErrInvalidEmail      = errors.New("onboarding: invalid email")
	ErrInvalidJobRole    = errors.New("onboarding: invalid job role")
	ErrInvalidDepartment = errors.New("onboarding: invalid department")
	ErrInvalidTaskTitle  = errors.New("onboarding: invalid task title")
	ErrInvalidStatus     = errors.New("onboarding: invalid status")
	ErrEmployeeNotFound  = errors.New("onboarding: employee not found")
	ErrTaskNotFound      = errors.New("onboarding: task not found")
)
