package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn = errors.New("you already have an open session today")
	ErrNotClockedIn     = errors.New("you have not clocked in yet")
	ErrDayNotFound      = errors.New("attendance record not found")
	ErrSummaryNotFound  = errors.New("monthly summary not found")
	ErrSummaryConflict  = errors.New("monthly summary was modified concurrently")
)
