package attendance

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
)

const secondsPerDay = 24 * 60 * 60

// Classification thresholds in worked hours.
const (
	presentThresholdHours = 9.0
	halfDayThresholdHours = 4.5
)

// ParseTimeOfDay converts a 12-hour wall-clock string ("9:05:30 AM") to
// seconds since midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse(attendance.TimeOfDayFormat, s)
	if err != nil {
		return 0, fmt.Errorf("malformed time of day %q: %w", s, err)
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// FormatTimeOfDay renders t's wall clock in the session layout.
func FormatTimeOfDay(t time.Time) string {
	return t.Format(attendance.TimeOfDayFormat)
}

// SessionSeconds returns the duration of a closed session. A logout that
// reads earlier than its login means the session crossed midnight and gets
// one day added.
func SessionSeconds(login, logout string) (int, error) {
	in, err := ParseTimeOfDay(login)
	if err != nil {
		return 0, err
	}
	out, err := ParseTimeOfDay(logout)
	if err != nil {
		return 0, err
	}

	diff := out - in
	if diff < 0 {
		diff += secondsPerDay
	}
	return diff, nil
}

// DaySeconds sums the worked seconds of a day's sessions. Sessions that fail
// to parse are logged and contribute nothing. An open session contributes
// nothing unless includeOpen is set, in which case it is measured against
// now's wall clock.
func DaySeconds(sessions []attendance.Session, includeOpen bool, now time.Time) int {
	total := 0
	for _, session := range sessions {
		if session.Login == "" {
			continue
		}
		logout := session.Logout
		if session.Open() {
			if !includeOpen {
				continue
			}
			logout = FormatTimeOfDay(now)
		}
		seconds, err := SessionSeconds(session.Login, logout)
		if err != nil {
			slog.Warn("Unparseable session skipped",
				"login", session.Login,
				"logout", logout,
				"error", err,
			)
			continue
		}
		total += seconds
	}
	return total
}

// Classify maps a day's worked seconds to its status.
func Classify(seconds int) attendance.DayStatus {
	hours := float64(seconds) / 3600
	switch {
	case hours >= presentThresholdHours:
		return attendance.DayStatusPresent
	case hours >= halfDayThresholdHours:
		return attendance.DayStatusHalfDay
	default:
		return attendance.DayStatusAbsent
	}
}

// FormatDuration renders seconds as "Xh Ym Zs".
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// Rollup is the result of accumulating one employee's month.
type Rollup struct {
	PresentDays        int
	HalfDays           int
	AbsentDays         int
	LeavesTaken        int
	ExtraLeaves        int
	CarryForwardLeaves int
	TotalWorkingDays   int
	TotalSeconds       int
}

// AccumulateMonth walks every calendar day of the month starting at
// monthStart and classifies the days that have records. Days without a
// record are not counted at all: TotalWorkingDays is the number of recorded
// days, not the calendar length.
//
// Leave bookkeeping follows the absence count: the first classified-absent
// day becomes a taken leave, every further one an extra leave, and a month
// with zero absences banks two carry-forward leaves.
func AccumulateMonth(records []attendance.DayRecord, monthStart time.Time) Rollup {
	byDay := make(map[int]attendance.DayRecord, len(records))
	for _, record := range records {
		byDay[record.Date.Day()] = record
	}

	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	var rollup Rollup
	for day := 1; day <= daysInMonth; day++ {
		record, ok := byDay[day]
		if !ok {
			continue
		}

		seconds := DaySeconds(record.Sessions, false, time.Time{})
		rollup.TotalSeconds += seconds
		rollup.TotalWorkingDays++

		switch Classify(seconds) {
		case attendance.DayStatusPresent:
			rollup.PresentDays++
		case attendance.DayStatusHalfDay:
			rollup.HalfDays++
		default:
			rollup.AbsentDays++
		}
	}

	if rollup.AbsentDays > 0 {
		rollup.LeavesTaken = 1
		rollup.ExtraLeaves = rollup.AbsentDays - 1
	} else {
		rollup.CarryForwardLeaves = 2
	}

	return rollup
}
