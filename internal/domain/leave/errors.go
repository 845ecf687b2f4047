package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request has already been accepted or rejected")
	ErrDuplicateRequest = errors.New("a leave request for this date already exists")
	ErrInvalidDecision  = errors.New("decision must be accepted or rejected")
)
