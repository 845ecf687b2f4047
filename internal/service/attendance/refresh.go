package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/domain/employee"
)

// NewSummaryRefreshJob returns a cron function that regenerates the current
// month's summary for every employee, so leave approval and payroll always
// see rollups that include the latest clock events. Per-employee failures
// are logged and skipped.
func NewSummaryRefreshJob(
	service attendance.AttendanceService,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		month := time.Now().Format("2006-01")

		ids, err := employeeRepo.ListIDs(ctx)
		if err != nil {
			return err
		}

		for _, id := range ids {
			_, err := service.GenerateMonthlySummary(ctx, attendance.GenerateSummaryRequest{
				EmployeeID: id,
				Month:      month,
			})
			if err != nil {
				logger.WarnContext(ctx, "summary refresh failed",
					slog.String("employee_id", id),
					slog.String("month", month),
					slog.Any("error", err),
				)
			}
		}

		return nil
	}
}
