package attendance

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureHandler collects log records so tests can assert on them.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "9:00:00 AM", want: 9 * 3600},
		{name: "afternoon", input: "1:30:15 PM", want: 13*3600 + 30*60 + 15},
		{name: "noon", input: "12:00:00 PM", want: 12 * 3600},
		{name: "midnight", input: "12:00:00 AM", want: 0},
		{name: "zero hour am", input: "00:10:00 AM", want: 10 * 60},
		{name: "garbage", input: "not a time", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "24 hour clock rejected", input: "17:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionSeconds(t *testing.T) {
	t.Run("normal day session", func(t *testing.T) {
		got, err := SessionSeconds("9:00:00 AM", "6:00:00 PM")
		require.NoError(t, err)
		assert.Equal(t, 9*3600, got)
	})

	t.Run("overnight session wraps past midnight", func(t *testing.T) {
		got, err := SessionSeconds("11:50:00 PM", "00:10:00 AM")
		require.NoError(t, err)
		assert.Equal(t, 1200, got)
	})

	t.Run("zero length session", func(t *testing.T) {
		got, err := SessionSeconds("9:00:00 AM", "9:00:00 AM")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})
}

func TestDaySeconds(t *testing.T) {
	now := time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC) // 3:00 PM

	t.Run("sums closed sessions", func(t *testing.T) {
		sessions := []attendance.Session{
			{Login: "9:00:00 AM", Logout: "12:00:00 PM"},
			{Login: "1:00:00 PM", Logout: "6:00:00 PM"},
		}
		assert.Equal(t, 8*3600, DaySeconds(sessions, false, now))
	})

	t.Run("open session excluded by default", func(t *testing.T) {
		sessions := []attendance.Session{
			{Login: "9:00:00 AM", Logout: "12:00:00 PM"},
			{Login: "1:00:00 PM"},
		}
		assert.Equal(t, 3*3600, DaySeconds(sessions, false, now))
	})

	t.Run("open session measured against now when included", func(t *testing.T) {
		sessions := []attendance.Session{
			{Login: "1:00:00 PM"},
		}
		assert.Equal(t, 2*3600, DaySeconds(sessions, true, now))
	})

	t.Run("malformed session contributes nothing and is logged", func(t *testing.T) {
		handler := &captureHandler{}
		prev := slog.Default()
		slog.SetDefault(slog.New(handler))
		defer slog.SetDefault(prev)

		sessions := []attendance.Session{
			{Login: "garbage", Logout: "6:00:00 PM"},
			{Login: "9:00:00 AM", Logout: "10:00:00 AM"},
		}
		assert.Equal(t, 3600, DaySeconds(sessions, false, now))

		require.Len(t, handler.records, 1)
		assert.Equal(t, slog.LevelWarn, handler.records[0].Level)
		assert.Equal(t, "Unparseable session skipped", handler.records[0].Message)
	})

	t.Run("total is independent of session order", func(t *testing.T) {
		sessions := []attendance.Session{
			{Login: "1:00:00 PM", Logout: "6:00:00 PM"},
			{Login: "9:00:00 AM", Logout: "12:00:00 PM"},
			{Login: "7:00:00 PM", Logout: "8:30:00 PM"},
		}
		reversed := make([]attendance.Session, len(sessions))
		for i, session := range sessions {
			reversed[len(sessions)-1-i] = session
		}

		assert.Equal(t, 8*3600+90*60, DaySeconds(sessions, false, now))
		assert.Equal(t, DaySeconds(sessions, false, now), DaySeconds(reversed, false, now))
	})

	t.Run("empty login skipped", func(t *testing.T) {
		sessions := []attendance.Session{{Logout: "6:00:00 PM"}}
		assert.Equal(t, 0, DaySeconds(sessions, false, now))
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    attendance.DayStatus
	}{
		{name: "nine hours is present", seconds: 9 * 3600, want: attendance.DayStatusPresent},
		{name: "just under nine is half day", seconds: 9*3600 - 1, want: attendance.DayStatusHalfDay},
		{name: "four and a half hours is half day", seconds: 16200, want: attendance.DayStatusHalfDay},
		{name: "just under four and a half is absent", seconds: 16199, want: attendance.DayStatusAbsent},
		{name: "zero is absent", seconds: 0, want: attendance.DayStatusAbsent},
		{name: "overnight long shift is present", seconds: 10 * 3600, want: attendance.DayStatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.seconds))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 0m 0s", FormatDuration(0))
	assert.Equal(t, "9h 0m 0s", FormatDuration(9*3600))
	assert.Equal(t, "8h 30m 15s", FormatDuration(8*3600+30*60+15))
	assert.Equal(t, "180h 0m 0s", FormatDuration(180*3600))
}

func day(t *testing.T, date string, sessions ...attendance.Session) attendance.DayRecord {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return attendance.DayRecord{EmployeeID: "emp-1", Date: d, Sessions: sessions}
}

func fullDay(t *testing.T, date string) attendance.DayRecord {
	return day(t, date, attendance.Session{Login: "9:00:00 AM", Logout: "6:00:00 PM"})
}

func TestAccumulateMonth(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("counts only recorded days", func(t *testing.T) {
		records := []attendance.DayRecord{
			fullDay(t, "2024-03-01"),
			fullDay(t, "2024-03-04"),
			day(t, "2024-03-05", attendance.Session{Login: "9:00:00 AM", Logout: "2:00:00 PM"}),
		}

		rollup := AccumulateMonth(records, march)

		assert.Equal(t, 2, rollup.PresentDays)
		assert.Equal(t, 1, rollup.HalfDays)
		assert.Equal(t, 0, rollup.AbsentDays)
		assert.Equal(t, 3, rollup.TotalWorkingDays)
		assert.Equal(t, 2*9*3600+5*3600, rollup.TotalSeconds)
	})

	t.Run("no absences banks two carry forward leaves", func(t *testing.T) {
		rollup := AccumulateMonth([]attendance.DayRecord{fullDay(t, "2024-03-01")}, march)

		assert.Equal(t, 0, rollup.LeavesTaken)
		assert.Equal(t, 0, rollup.ExtraLeaves)
		assert.Equal(t, 2, rollup.CarryForwardLeaves)
	})

	t.Run("first absence is a taken leave, rest are extra", func(t *testing.T) {
		records := []attendance.DayRecord{
			day(t, "2024-03-01", attendance.Session{Login: "9:00:00 AM", Logout: "10:00:00 AM"}),
			day(t, "2024-03-04", attendance.Session{Login: "9:00:00 AM", Logout: "11:00:00 AM"}),
			day(t, "2024-03-05", attendance.Session{Login: "9:00:00 AM", Logout: "9:30:00 AM"}),
			fullDay(t, "2024-03-06"),
		}

		rollup := AccumulateMonth(records, march)

		assert.Equal(t, 3, rollup.AbsentDays)
		assert.Equal(t, 1, rollup.LeavesTaken)
		assert.Equal(t, 2, rollup.ExtraLeaves)
		assert.Equal(t, 0, rollup.CarryForwardLeaves)
	})

	t.Run("empty month", func(t *testing.T) {
		rollup := AccumulateMonth(nil, march)

		assert.Equal(t, 0, rollup.TotalWorkingDays)
		assert.Equal(t, 0, rollup.TotalSeconds)
		assert.Equal(t, 2, rollup.CarryForwardLeaves)
	})

	t.Run("leap february includes day 29", func(t *testing.T) {
		feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		rollup := AccumulateMonth([]attendance.DayRecord{fullDay(t, "2024-02-29")}, feb)

		assert.Equal(t, 1, rollup.PresentDays)
		assert.Equal(t, 1, rollup.TotalWorkingDays)
	})

	t.Run("open session does not count toward the rollup", func(t *testing.T) {
		records := []attendance.DayRecord{
			day(t, "2024-03-01",
				attendance.Session{Login: "9:00:00 AM", Logout: "6:00:00 PM"},
				attendance.Session{Login: "8:00:00 PM"},
			),
		}

		rollup := AccumulateMonth(records, march)

		assert.Equal(t, 9*3600, rollup.TotalSeconds)
		assert.Equal(t, 1, rollup.PresentDays)
	})

	t.Run("idempotent over the same records", func(t *testing.T) {
		records := []attendance.DayRecord{
			fullDay(t, "2024-03-01"),
			day(t, "2024-03-04", attendance.Session{Login: "9:00:00 AM", Logout: "10:00:00 AM"}),
		}

		first := AccumulateMonth(records, march)
		second := AccumulateMonth(records, march)
		assert.Equal(t, first, second)
	})
}
