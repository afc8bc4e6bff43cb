package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailTaken         = errors.New("employee email already registered")
	ErrEmployeeIDTaken    = errors.New("employee id already exists")
	ErrEmployeeIDRequired = errors.New("employee id is required")
	ErrReportGeneration   = errors.New("failed to generate employee report")
)
