package location

import "errors"

var (
	ErrAssignmentNotFound = errors.New("work zone assignment not found")
)
