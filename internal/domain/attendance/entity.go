package attendance

import (
	"time"
)

// TimeOfDayFormat is the 12-hour wall-clock layout sessions are recorded in,
// e.g. "9:05:30 AM". Only the time of day matters; the date component of a
// parsed value is a fixed reference date.
const TimeOfDayFormat = "3:04:05 PM"

type DayStatus string

const (
	DayStatusPresent DayStatus = "Present"
	DayStatusHalfDay DayStatus = "Half Day"
	DayStatusAbsent  DayStatus = "Absent"
)

// Session is one login/logout interval within a single work day. Logout is
// empty while the employee is still clocked in.
type Session struct {
	Login         string  `json:"login"`
	Logout        string  `json:"logout"`
	LoginAddress  *string `json:"login_address,omitempty"`
	LogoutAddress *string `json:"logout_address,omitempty"`
}

// Open reports whether the session has no logout yet.
func (s Session) Open() bool {
	return s.Logout == ""
}

// DayRecord holds all sessions of one employee on one calendar day.
// It is created by the first clock-in of the day and appended to by later
// clock events; once the date has passed nothing writes to it again.
type DayRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Sessions   []Session
	Location   *string
	TotalHours string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// MonthlySummary is the per-employee monthly rollup consumed by leave
// approval and payslip generation. Version is the optimistic-concurrency
// token guarding counter merges.
type MonthlySummary struct {
	EmployeeID         string
	Month              string // "2006-01"
	PresentDays        int
	HalfDays           int
	AbsentDays         int
	LeavesTaken        int
	ExtraLeaves        int
	CarryForwardLeaves int
	TotalWorkingDays   int
	TotalHours         string
	CountedDates       []string
	Version            int64
	GeneratedAt        time.Time
}

// DateCounted reports whether a leave credit was already applied for date.
func (m *MonthlySummary) DateCounted(date string) bool {
	for _, d := range m.CountedDates {
		if d == date {
			return true
		}
	}
	return false
}
