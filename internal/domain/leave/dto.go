package leave

import (
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
)

type SubmitRequestRequest struct {
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	LeaveType string `json:"leave_type"`
	IsExtra   bool   `json:"is_extra"`
}

func (r *SubmitRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideRequest carries an HR reviewer's accept/reject decision.
// A non-empty comment is mandatory; without it nothing is mutated.
type DecideRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Comment    string `json:"comment"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != string(StatusAccepted) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be accepted or rejected",
		})
	}

	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "a reviewer comment is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeePhone *string `json:"employee_phone,omitempty"`
	Date          string  `json:"date"`
	Reason        string  `json:"reason"`
	LeaveType     string  `json:"leave_type"`
	IsExtra       bool    `json:"is_extra"`
	Status        string  `json:"status"`
	HRComment     *string `json:"hr_comment,omitempty"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	SubmittedAt   string  `json:"submitted_at"`
}

type DecisionResponse struct {
	Request          RequestResponse `json:"request"`
	CarryForwardUsed bool            `json:"carry_forward_used"`
	MarkedAs         string          `json:"marked_as"`
	AlreadyCounted   bool            `json:"already_counted"`
}

type HistoryResponse struct {
	ID                    string `json:"id"`
	EmployeeID            string `json:"employee_id"`
	Date                  string `json:"date"`
	Month                 string `json:"month"`
	Reason                string `json:"reason"`
	LeaveType             string `json:"leave_type"`
	HRComment             string `json:"hr_comment"`
	DecidedBy             string `json:"decided_by"`
	CarryForwardAtTheTime int    `json:"carry_forward_at_the_time"`
	CarryForwardUsed      bool   `json:"carry_forward_used"`
	MarkedAs              string `json:"marked_as"`
	FinalCarryForwardLeft int    `json:"final_carry_forward_left"`
	CreatedAt             string `json:"created_at"`
}
