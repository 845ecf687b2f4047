package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseWorkedHours(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  decimal.Decimal
	}{
		{name: "whole hours", input: "180h 0m 0s", want: dec("180")},
		{name: "half hour", input: "8h 30m 0s", want: dec("8.5")},
		{name: "seconds", input: "0h 0m 36s", want: dec("0.01")},
		{name: "zero", input: "0h 0m 0s", want: decimal.Zero},
		{name: "garbage", input: "n/a", want: decimal.Zero},
		{name: "empty", input: "", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseWorkedHours(tt.input)),
				"got %s", ParseWorkedHours(tt.input))
		})
	}
}

func TestProject(t *testing.T) {
	t.Run("reference projection", func(t *testing.T) {
		// 50000 gross, 180 of 198 hours, 5% tax, one absence at 200.
		got := Project(ProjectionInput{
			Gross:         dec("50000"),
			WorkedHours:   dec("180"),
			StandardHours: dec("198"),
			TaxPercent:    dec("5"),
			AbsentDays:    1,
			PenaltyPerDay: dec("200"),
		})

		assert.Equal(t, "0.9091", got.HourRatio.String())
		assert.Equal(t, "45454.55", got.GrossAdjusted.String())
		assert.Equal(t, "2272.73", got.Tax.String())
		assert.Equal(t, "200", got.Penalty.String())
		assert.Equal(t, "42981.82", got.Net.String())
	})

	t.Run("ratio capped at one", func(t *testing.T) {
		got := Project(ProjectionInput{
			Gross:         dec("50000"),
			WorkedHours:   dec("250"),
			StandardHours: dec("198"),
			TaxPercent:    dec("5"),
		})

		assert.Equal(t, "1", got.HourRatio.String())
		assert.Equal(t, "50000", got.GrossAdjusted.String())
		assert.Equal(t, "2500", got.Tax.String())
		assert.Equal(t, "47500", got.Net.String())
	})

	t.Run("zero worked hours zeroes the projection", func(t *testing.T) {
		got := Project(ProjectionInput{
			Gross:         dec("50000"),
			WorkedHours:   decimal.Zero,
			StandardHours: dec("198"),
			TaxPercent:    dec("5"),
			AbsentDays:    3,
			PenaltyPerDay: dec("200"),
		})

		assert.True(t, got.GrossAdjusted.IsZero())
		assert.True(t, got.Tax.IsZero())
		assert.Equal(t, "600", got.Penalty.String())
		assert.Equal(t, "-600", got.Net.String())
	})

	t.Run("zero tax and penalty", func(t *testing.T) {
		got := Project(ProjectionInput{
			Gross:         dec("30000"),
			WorkedHours:   dec("198"),
			StandardHours: dec("198"),
			TaxPercent:    decimal.Zero,
		})

		assert.Equal(t, "30000", got.Net.String())
	})

	t.Run("non-positive standard hours falls back to full ratio", func(t *testing.T) {
		got := Project(ProjectionInput{
			Gross:         dec("10000"),
			WorkedHours:   dec("10"),
			StandardHours: decimal.Zero,
			TaxPercent:    dec("10"),
		})

		assert.Equal(t, "1", got.HourRatio.String())
		assert.Equal(t, "9000", got.Net.String())
	})

	t.Run("deterministic over repeated runs", func(t *testing.T) {
		in := ProjectionInput{
			Gross:         dec("73500.50"),
			WorkedHours:   dec("187.25"),
			StandardHours: dec("198"),
			TaxPercent:    dec("7.5"),
			AbsentDays:    2,
			PenaltyPerDay: dec("150"),
		}

		assert.Equal(t, Project(in), Project(in))
	})
}
