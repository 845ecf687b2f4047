package leave

import (
	"testing"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func baseSummary() *attendance.MonthlySummary {
	return &attendance.MonthlySummary{
		EmployeeID:         "emp-1",
		Month:              "2024-03",
		PresentDays:        18,
		AbsentDays:         2,
		LeavesTaken:        1,
		CarryForwardLeaves: 2,
		CountedDates:       []string{},
	}
}

func TestApplyLeaveCredit(t *testing.T) {
	t.Run("carry forward covers the day", func(t *testing.T) {
		summary := baseSummary()

		result := ApplyLeaveCredit(summary, "2024-03-05")

		assert.True(t, result.CarryForwardUsed)
		assert.Equal(t, leave.MarkedPresent, result.MarkedAs)
		assert.False(t, result.AlreadyCounted)
		assert.Equal(t, 1, summary.CarryForwardLeaves)
		assert.Equal(t, 19, summary.PresentDays)
		assert.Equal(t, 2, summary.AbsentDays)
		assert.Equal(t, 2, summary.LeavesTaken)
		assert.Contains(t, summary.CountedDates, "2024-03-05")
	})

	t.Run("no balance marks the day absent", func(t *testing.T) {
		summary := baseSummary()
		summary.CarryForwardLeaves = 0

		result := ApplyLeaveCredit(summary, "2024-03-05")

		assert.False(t, result.CarryForwardUsed)
		assert.Equal(t, leave.MarkedAbsent, result.MarkedAs)
		assert.Equal(t, 3, summary.AbsentDays)
		assert.Equal(t, 18, summary.PresentDays)
		assert.Equal(t, 2, summary.LeavesTaken)
	})

	t.Run("second credit for the same date is a no-op", func(t *testing.T) {
		summary := baseSummary()

		first := ApplyLeaveCredit(summary, "2024-03-05")
		after := *summary
		second := ApplyLeaveCredit(summary, "2024-03-05")

		assert.False(t, first.AlreadyCounted)
		assert.True(t, second.AlreadyCounted)
		assert.Equal(t, after, *summary)
	})

	t.Run("balance drains one day at a time", func(t *testing.T) {
		summary := baseSummary()

		ApplyLeaveCredit(summary, "2024-03-05")
		ApplyLeaveCredit(summary, "2024-03-06")
		third := ApplyLeaveCredit(summary, "2024-03-07")

		assert.Equal(t, 0, summary.CarryForwardLeaves)
		assert.False(t, third.CarryForwardUsed)
		assert.Equal(t, leave.MarkedAbsent, third.MarkedAs)
		assert.Equal(t, 4, summary.LeavesTaken)
		assert.Len(t, summary.CountedDates, 3)
	})
}
