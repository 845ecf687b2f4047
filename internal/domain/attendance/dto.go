package attendance

import (
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}

func (r *ClockOutRequest) Validate() error {
	in := ClockInRequest{Latitude: r.Latitude, Longitude: r.Longitude, Address: r.Address}
	return in.Validate()
}

type GenerateSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r *GenerateSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	Login         string  `json:"login"`
	Logout        string  `json:"logout,omitempty"`
	LoginAddress  *string `json:"login_address,omitempty"`
	LogoutAddress *string `json:"logout_address,omitempty"`
	WithinFence   *bool   `json:"within_fence,omitempty"`
}

type DayResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName *string           `json:"employee_name,omitempty"`
	Date         string            `json:"date"`
	Sessions     []SessionResponse `json:"sessions"`
	Location     *string           `json:"location,omitempty"`
	TotalHours   string            `json:"total_hours"`
	Status       string            `json:"status"`
}

type ListDaysResponse struct {
	Month string        `json:"month"`
	Days  []DayResponse `json:"days"`
}

type SummaryResponse struct {
	EmployeeID         string   `json:"employee_id"`
	Month              string   `json:"month"`
	PresentDays        int      `json:"present_days"`
	HalfDays           int      `json:"half_days"`
	AbsentDays         int      `json:"absent_days"`
	LeavesTaken        int      `json:"leaves_taken"`
	ExtraLeaves        int      `json:"extra_leaves"`
	CarryForwardLeaves int      `json:"carry_forward_leaves"`
	TotalWorkingDays   int      `json:"total_working_days"`
	TotalHours         string   `json:"total_hours"`
	CountedDates       []string `json:"counted_dates,omitempty"`
	GeneratedAt        string   `json:"generated_at"`
}
