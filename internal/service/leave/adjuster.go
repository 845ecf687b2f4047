package leave

import (
	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/domain/leave"
)

// CreditResult describes how an accepted leave was applied to a summary.
type CreditResult struct {
	CarryForwardUsed bool
	MarkedAs         string
	AlreadyCounted   bool
}

// ApplyLeaveCredit mutates summary for one accepted leave on date.
//
// A remaining carry-forward leave covers the day: the balance drops by one
// and the day is upgraded to present. With no balance left the day stays an
// absence. Either way the taken-leave counter advances and the date is
// remembered so a second decision for the same day is a no-op.
func ApplyLeaveCredit(summary *attendance.MonthlySummary, date string) CreditResult {
	if summary.DateCounted(date) {
		return CreditResult{AlreadyCounted: true}
	}

	result := CreditResult{}
	if summary.CarryForwardLeaves > 0 {
		summary.CarryForwardLeaves--
		summary.PresentDays++
		result.CarryForwardUsed = true
		result.MarkedAs = leave.MarkedPresent
	} else {
		summary.AbsentDays++
		result.MarkedAs = leave.MarkedAbsent
	}

	summary.LeavesTaken++
	summary.CountedDates = append(summary.CountedDates, date)

	return result
}
