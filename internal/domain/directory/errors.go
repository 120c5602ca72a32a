package directory

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrMissingEmployeeID = errors.New("employee id is required")
)
