package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrHRPrivilegeRequired = errors.New("hr privilege required")
)
