package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/domain/leave"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/enkonix/hr-backend-go/internal/pkg/email"
	"github.com/enkonix/hr-backend-go/internal/pkg/sse"
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
	"github.com/enkonix/hr-backend-go/internal/repository/postgresql"
	attendancesvc "github.com/enkonix/hr-backend-go/internal/service/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	leave.LeaveHistoryRepository
	attendance.AttendanceRepository
	attendance.SummaryRepository
	hub          *sse.Hub
	emailService email.EmailService
	logger       *slog.Logger
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.LeaveRequestRepository,
	historyRepo leave.LeaveHistoryRepository,
	attendanceRepo attendance.AttendanceRepository,
	summaryRepo attendance.SummaryRepository,
	hub *sse.Hub,
	emailService email.EmailService,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: requestRepo,
		LeaveHistoryRepository: historyRepo,
		AttendanceRepository:   attendanceRepo,
		SummaryRepository:      summaryRepo,
		hub:                    hub,
		emailService:           emailService,
		logger:                 logger,
	}
}

func claimsFromContext(ctx context.Context) (employeeID, name string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, _ = claims["employee_id"].(string)
	name, _ = claims["name"].(string)
	return employeeID, name, nil
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if employeeID == "" {
		return leave.RequestResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		Date:       date,
		Reason:     req.Reason,
		LeaveType:  req.LeaveType,
		IsExtra:    req.IsExtra,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	l.logger.InfoContext(ctx, "leave request submitted",
		slog.String("employee_id", employeeID),
		slog.String("date", req.Date),
	)

	return toRequestResponse(created), nil
}

// GetMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.RequestResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}
	return responses, nil
}

// ListByMonth implements leave.LeaveService.
func (l *LeaveServiceImpl) ListByMonth(ctx context.Context, month string, status string) ([]leave.RequestResponse, error) {
	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	filter := leave.RequestStatus(status)
	switch filter {
	case "", leave.StatusPending, leave.StatusAccepted, leave.StatusRejected:
	default:
		return nil, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be pending, accepted or rejected",
		}}
	}

	requests, err := l.LeaveRequestRepository.ListByMonth(ctx, monthStart, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}
	return responses, nil
}

// Decide implements leave.LeaveService.
//
// Rejection only flips the request status. Acceptance additionally adjusts
// the monthly summary under a row lock and appends the audit entry, all in
// one transaction; a date that was already credited leaves the summary
// untouched. Stream and email notifications go out after commit and never
// fail the decision.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideRequest) (leave.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DecisionResponse{}, err
	}

	_, deciderName, err := claimsFromContext(ctx)
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	month := date.Format("2006-01")
	now := time.Now()
	status := leave.RequestStatus(req.Status)

	var result CreditResult

	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		request, err := l.LeaveRequestRepository.GetByEmployeeAndDate(txCtx, req.EmployeeID, date)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		if err := l.LeaveRequestRepository.Decide(txCtx, req.EmployeeID, date, status, req.Comment, deciderName, now); err != nil {
			return err
		}

		if status != leave.StatusAccepted {
			return nil
		}

		summary, err := l.summaryForUpdate(txCtx, req.EmployeeID, month)
		if err != nil {
			return err
		}

		result = ApplyLeaveCredit(summary, req.Date)
		if result.AlreadyCounted {
			return nil
		}

		if err := l.SummaryRepository.MergeCounters(txCtx, *summary); err != nil {
			return err
		}

		_, err = l.LeaveHistoryRepository.Insert(txCtx, leave.HistoryEntry{
			EmployeeID:            req.EmployeeID,
			Date:                  req.Date,
			Month:                 month,
			Reason:                request.Reason,
			LeaveType:             request.LeaveType,
			HRComment:             req.Comment,
			DecidedBy:             deciderName,
			CarryForwardAtTheTime: summary.CarryForwardLeaves + boolToInt(result.CarryForwardUsed),
			CarryForwardUsed:      result.CarryForwardUsed,
			MarkedAs:              result.MarkedAs,
			FinalCarryForwardLeft: summary.CarryForwardLeaves,
		})
		return err
	})
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	decided, err := l.LeaveRequestRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return leave.DecisionResponse{}, err
	}

	l.logger.InfoContext(ctx, "leave request decided",
		slog.String("employee_id", req.EmployeeID),
		slog.String("date", req.Date),
		slog.String("status", req.Status),
		slog.Bool("carry_forward_used", result.CarryForwardUsed),
	)

	l.notify(ctx, decided, req)

	return leave.DecisionResponse{
		Request:          toRequestResponse(decided),
		CarryForwardUsed: result.CarryForwardUsed,
		MarkedAs:         result.MarkedAs,
		AlreadyCounted:   result.AlreadyCounted,
	}, nil
}

// summaryForUpdate locks the employee's summary row, generating it from the
// day records first when the month was never rolled up.
func (l *LeaveServiceImpl) summaryForUpdate(ctx context.Context, employeeID, month string) (*attendance.MonthlySummary, error) {
	summary, err := l.SummaryRepository.GetForUpdate(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}
	if summary != nil {
		return summary, nil
	}

	monthStart, _ := validator.IsValidMonth(month)
	records, err := l.AttendanceRepository.ListDaysInMonth(ctx, employeeID, monthStart)
	if err != nil {
		return nil, err
	}

	rollup := attendancesvc.AccumulateMonth(records, monthStart)
	fresh := attendance.MonthlySummary{
		EmployeeID:         employeeID,
		Month:              month,
		PresentDays:        rollup.PresentDays,
		HalfDays:           rollup.HalfDays,
		AbsentDays:         rollup.AbsentDays,
		LeavesTaken:        rollup.LeavesTaken,
		ExtraLeaves:        rollup.ExtraLeaves,
		CarryForwardLeaves: rollup.CarryForwardLeaves,
		TotalWorkingDays:   rollup.TotalWorkingDays,
		TotalHours:         attendancesvc.FormatDuration(rollup.TotalSeconds),
		CountedDates:       []string{},
		GeneratedAt:        time.Now(),
	}

	if err := l.SummaryRepository.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return l.SummaryRepository.GetForUpdate(ctx, employeeID, month)
}

func (l *LeaveServiceImpl) notify(ctx context.Context, decided leave.LeaveRequest, req leave.DecideRequest) {
	l.hub.Publish(req.EmployeeID, sse.Event{
		UserID: req.EmployeeID,
		Event:  "leave_decision",
		Data:   toRequestResponse(decided),
	})

	if decided.EmployeeEmail == nil || decided.EmployeeName == nil {
		return
	}
	if err := l.emailService.SendLeaveDecision(
		*decided.EmployeeEmail, *decided.EmployeeName, req.Date, req.Status, req.Comment,
	); err != nil {
		l.logger.WarnContext(ctx, "leave decision email failed",
			slog.String("employee_id", req.EmployeeID),
			slog.Any("error", err),
		)
	}
}

// GetHistory implements leave.LeaveService.
func (l *LeaveServiceImpl) GetHistory(ctx context.Context, employeeID string) ([]leave.HistoryResponse, error) {
	entries, err := l.LeaveHistoryRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.HistoryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, leave.HistoryResponse{
			ID:                    entry.ID,
			EmployeeID:            entry.EmployeeID,
			Date:                  entry.Date,
			Month:                 entry.Month,
			Reason:                entry.Reason,
			LeaveType:             entry.LeaveType,
			HRComment:             entry.HRComment,
			DecidedBy:             entry.DecidedBy,
			CarryForwardAtTheTime: entry.CarryForwardAtTheTime,
			CarryForwardUsed:      entry.CarryForwardUsed,
			MarkedAs:              entry.MarkedAs,
			FinalCarryForwardLeft: entry.FinalCarryForwardLeft,
			CreatedAt:             entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toRequestResponse(request leave.LeaveRequest) leave.RequestResponse {
	response := leave.RequestResponse{
		ID:            request.ID,
		EmployeeID:    request.EmployeeID,
		EmployeeName:  request.EmployeeName,
		EmployeePhone: request.EmployeePhone,
		Date:          request.Date.Format("2006-01-02"),
		Reason:        request.Reason,
		LeaveType:     request.LeaveType,
		IsExtra:       request.IsExtra,
		Status:        string(request.Status),
		HRComment:     request.HRComment,
		DecidedBy:     request.DecidedBy,
		SubmittedAt:   request.SubmittedAt.Format(time.RFC3339),
	}
	if request.DecidedAt != nil {
		decidedAt := request.DecidedAt.Format(time.RFC3339)
		response.DecidedAt = &decidedAt
	}
	return response
}
