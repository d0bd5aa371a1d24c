package employee

import "errors"

var (
	ErrInvalidID             = errors.New("employee: invalid id")
	ErrInvalidName           = errors.New("employee: invalid name")
	ErrInvalidEmail          = errors.New("employee: invalid email")
	ErrInvalidDepartment     = errors.New("employee: invalid department")
	ErrInvalidPosition       = errors.New("employee: invalid position")
	ErrInvalidEmploymentType = errors.New("employee: invalid employment type")
	ErrInvalidHireDate       = errors.New("employee: invalid hire date")
	ErrInvalidStatus         = errors.New("employee: invalid status")
	ErrEmployeeNotFound      = errors.New("employee: not found")
)
