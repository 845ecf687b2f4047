package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// stubAttendanceService records the arguments GetSummary was called with.
type stubAttendanceService struct {
	attendance.AttendanceService
	gotEmployeeID string
	gotMonth      string
}

func (s *stubAttendanceService) GetSummary(_ context.Context, employeeID string, month string) (attendance.SummaryResponse, error) {
	s.gotEmployeeID = employeeID
	s.gotMonth = month
	return attendance.SummaryResponse{EmployeeID: employeeID, Month: month}, nil
}

func summaryRequest(month string) *http.Request {
	target := "/attendance/summaries/emp-1"
	if month != "" {
		target += "?month=" + month
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("employeeID", "emp-1")
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetSummaryDefaultsToCurrentMonth(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetSummary(rec, summaryRequest(""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", svc.gotEmployeeID)
	assert.Equal(t, time.Now().Format("2006-01"), svc.gotMonth)
}

func TestGetSummaryPassesExplicitMonth(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetSummary(rec, summaryRequest("2024-02"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-02", svc.gotMonth)
}
