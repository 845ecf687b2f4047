package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/domain/location"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/enkonix/hr-backend-go/internal/pkg/utils"
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	attendance.SummaryRepository
	location.ZoneAssignmentRepository
	logger *slog.Logger
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	summaryRepo attendance.SummaryRepository,
	zoneRepo location.ZoneAssignmentRepository,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                       db,
		AttendanceRepository:     attendanceRepo,
		SummaryRepository:        summaryRepo,
		ZoneAssignmentRepository: zoneRepo,
		logger:                   logger,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	now := time.Now()
	today := dateOnly(now)

	record, err := a.AttendanceRepository.GetDay(ctx, employeeID, today)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	if record != nil {
		for _, session := range record.Sessions {
			if session.Open() {
				return attendance.DayResponse{}, attendance.ErrAlreadyClockedIn
			}
		}
	}

	withinFence := a.fenceCheck(ctx, employeeID, req.Latitude, req.Longitude)

	session := attendance.Session{
		Login:        FormatTimeOfDay(now),
		LoginAddress: req.Address,
	}

	if record == nil {
		created, err := a.AttendanceRepository.CreateDay(ctx, attendance.DayRecord{
			EmployeeID: employeeID,
			Date:       today,
			Sessions:   []attendance.Session{session},
			Location:   req.Address,
			TotalHours: FormatDuration(0),
		})
		if err != nil {
			return attendance.DayResponse{}, err
		}
		record = &created
	} else {
		record.Sessions = append(record.Sessions, session)
		if err := a.AttendanceRepository.UpdateDay(ctx, *record); err != nil {
			return attendance.DayResponse{}, err
		}
	}

	a.logger.InfoContext(ctx, "employee clocked in",
		slog.String("employee_id", employeeID),
		slog.String("date", today.Format("2006-01-02")),
	)

	response := toDayResponse(*record, false, now)
	if len(response.Sessions) > 0 {
		response.Sessions[len(response.Sessions)-1].WithinFence = withinFence
	}
	return response, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	now := time.Now()
	today := dateOnly(now)

	record, err := a.AttendanceRepository.GetDay(ctx, employeeID, today)
	if err != nil {
		return attendance.DayResponse{}, err
	}
	if record == nil {
		return attendance.DayResponse{}, attendance.ErrNotClockedIn
	}

	open := -1
	for i, session := range record.Sessions {
		if session.Open() {
			open = i
			break
		}
	}
	if open < 0 {
		return attendance.DayResponse{}, attendance.ErrNotClockedIn
	}

	withinFence := a.fenceCheck(ctx, employeeID, req.Latitude, req.Longitude)

	record.Sessions[open].Logout = FormatTimeOfDay(now)
	record.Sessions[open].LogoutAddress = req.Address
	record.TotalHours = FormatDuration(DaySeconds(record.Sessions, false, now))

	if err := a.AttendanceRepository.UpdateDay(ctx, *record); err != nil {
		return attendance.DayResponse{}, err
	}

	a.logger.InfoContext(ctx, "employee clocked out",
		slog.String("employee_id", employeeID),
		slog.String("date", today.Format("2006-01-02")),
		slog.String("total_hours", record.TotalHours),
	)

	response := toDayResponse(*record, false, now)
	response.Sessions[open].WithinFence = withinFence
	return response, nil
}

// fenceCheck reports whether the coordinates fall inside the employee's
// assigned work zone. Nil when no coordinates were sent or no zone is
// assigned; informational only.
func (a *AttendanceServiceImpl) fenceCheck(ctx context.Context, employeeID string, lat, lng *float64) *bool {
	if lat == nil || lng == nil {
		return nil
	}

	zone, err := a.ZoneAssignmentRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		a.logger.WarnContext(ctx, "work zone lookup failed",
			slog.String("employee_id", employeeID),
			slog.Any("error", err),
		)
		return nil
	}
	if zone == nil {
		return nil
	}

	within := zone.WorkFromHome ||
		utils.WithinRadius(*lat, *lng, zone.Latitude, zone.Longitude, zone.RadiusMeters)
	return &within
}

// GetMyMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyMonth(ctx context.Context, month string, includeOpen bool) (attendance.ListDaysResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListDaysResponse{}, err
	}

	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return attendance.ListDaysResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	records, err := a.AttendanceRepository.ListDaysInMonth(ctx, employeeID, monthStart)
	if err != nil {
		return attendance.ListDaysResponse{}, err
	}

	now := time.Now()
	days := make([]attendance.DayResponse, 0, len(records))
	for _, record := range records {
		// A running session only counts on today's record.
		open := includeOpen && sameDate(record.Date, now)
		days = append(days, toDayResponse(record, open, now))
	}

	return attendance.ListDaysResponse{Month: month, Days: days}, nil
}

// ListByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.DayResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	records, err := a.AttendanceRepository.ListDaysByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]attendance.DayResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toDayResponse(record, false, now))
	}

	return responses, nil
}

// GenerateMonthlySummary implements attendance.AttendanceService.
// The rollup is recomputed from the day records alone and persisted by full
// overwrite, so regeneration after new clock events is idempotent. Any
// leave adjustments previously merged into the summary are recomputed from
// scratch; the leave audit trail is the durable record of those decisions.
func (a *AttendanceServiceImpl) GenerateMonthlySummary(ctx context.Context, req attendance.GenerateSummaryRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	monthStart, _ := validator.IsValidMonth(req.Month)

	records, err := a.AttendanceRepository.ListDaysInMonth(ctx, req.EmployeeID, monthStart)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	rollup := AccumulateMonth(records, monthStart)

	summary := attendance.MonthlySummary{
		EmployeeID:         req.EmployeeID,
		Month:              req.Month,
		PresentDays:        rollup.PresentDays,
		HalfDays:           rollup.HalfDays,
		AbsentDays:         rollup.AbsentDays,
		LeavesTaken:        rollup.LeavesTaken,
		ExtraLeaves:        rollup.ExtraLeaves,
		CarryForwardLeaves: rollup.CarryForwardLeaves,
		TotalWorkingDays:   rollup.TotalWorkingDays,
		TotalHours:         FormatDuration(rollup.TotalSeconds),
		CountedDates:       []string{},
		GeneratedAt:        time.Now(),
	}

	if err := a.SummaryRepository.Save(ctx, summary); err != nil {
		return attendance.SummaryResponse{}, err
	}

	a.logger.InfoContext(ctx, "monthly summary generated",
		slog.String("employee_id", req.EmployeeID),
		slog.String("month", req.Month),
		slog.Int("working_days", summary.TotalWorkingDays),
	)

	return toSummaryResponse(summary), nil
}

// GetSummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetSummary(ctx context.Context, employeeID string, month string) (attendance.SummaryResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return attendance.SummaryResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	summary, err := a.SummaryRepository.Get(ctx, employeeID, month)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}
	if summary == nil {
		return attendance.SummaryResponse{}, attendance.ErrSummaryNotFound
	}

	return toSummaryResponse(*summary), nil
}

// GetMySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMySummary(ctx context.Context, month string) (attendance.SummaryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}
	return a.GetSummary(ctx, employeeID, month)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func toDayResponse(record attendance.DayRecord, includeOpen bool, now time.Time) attendance.DayResponse {
	sessions := make([]attendance.SessionResponse, 0, len(record.Sessions))
	for _, session := range record.Sessions {
		sessions = append(sessions, attendance.SessionResponse{
			Login:         session.Login,
			Logout:        session.Logout,
			LoginAddress:  session.LoginAddress,
			LogoutAddress: session.LogoutAddress,
		})
	}

	seconds := DaySeconds(record.Sessions, includeOpen, now)

	return attendance.DayResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		Sessions:     sessions,
		Location:     record.Location,
		TotalHours:   FormatDuration(seconds),
		Status:       string(Classify(seconds)),
	}
}

func toSummaryResponse(summary attendance.MonthlySummary) attendance.SummaryResponse {
	return attendance.SummaryResponse{
		EmployeeID:         summary.EmployeeID,
		Month:              summary.Month,
		PresentDays:        summary.PresentDays,
		HalfDays:           summary.HalfDays,
		AbsentDays:         summary.AbsentDays,
		LeavesTaken:        summary.LeavesTaken,
		ExtraLeaves:        summary.ExtraLeaves,
		CarryForwardLeaves: summary.CarryForwardLeaves,
		TotalWorkingDays:   summary.TotalWorkingDays,
		TotalHours:         summary.TotalHours,
		CountedDates:       summary.CountedDates,
		GeneratedAt:        summary.GeneratedAt.Format(time.RFC3339),
	}
}
