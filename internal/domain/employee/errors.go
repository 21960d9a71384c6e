package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeIDExists       = errors.New("employee id already exists")
	ErrEmployeeInactive       = errors.New("employee is inactive")
	ErrProfileCountryMismatch = errors.New("country profile does not match employee country")
	ErrProfileNotFound        = errors.New("country profile not found")
)
