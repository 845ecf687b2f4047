package payroll

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

var durationPattern = regexp.MustCompile(`(\d+)h\s+(\d+)m\s+(\d+)s`)

// ParseWorkedHours converts a summary's "Xh Ym Zs" total into decimal
// hours. An unrecognized string counts as zero hours worked.
func ParseWorkedHours(total string) decimal.Decimal {
	match := durationPattern.FindStringSubmatch(total)
	if match == nil {
		return decimal.Zero
	}

	h, _ := strconv.ParseInt(match[1], 10, 64)
	m, _ := strconv.ParseInt(match[2], 10, 64)
	s, _ := strconv.ParseInt(match[3], 10, 64)

	seconds := decimal.NewFromInt(h*3600 + m*60 + s)
	return seconds.Div(decimal.NewFromInt(3600))
}

// ProjectionInput is everything the payslip projection depends on.
type ProjectionInput struct {
	Gross         decimal.Decimal
	WorkedHours   decimal.Decimal
	StandardHours decimal.Decimal
	TaxPercent    decimal.Decimal
	AbsentDays    int
	PenaltyPerDay decimal.Decimal
}

// Projection is the computed payslip breakdown. All figures are rounded to
// two decimal places except HourRatio, which keeps four.
type Projection struct {
	HourRatio     decimal.Decimal
	GrossAdjusted decimal.Decimal
	Tax           decimal.Decimal
	Penalty       decimal.Decimal
	Net           decimal.Decimal
}

// Project prorates the gross by hours worked against the monthly standard
// (capped at 1), applies the percentage tax on the prorated gross, and
// subtracts the per-day absence penalty. Intermediate figures stay at full
// precision; rounding happens once at the end.
func Project(in ProjectionInput) Projection {
	one := decimal.NewFromInt(1)

	ratio := one
	if in.StandardHours.IsPositive() {
		ratio = in.WorkedHours.Div(in.StandardHours)
		if ratio.GreaterThan(one) {
			ratio = one
		}
	}

	grossAdjusted := in.Gross.Mul(ratio)
	tax := grossAdjusted.Mul(in.TaxPercent).Div(decimal.NewFromInt(100))
	penalty := in.PenaltyPerDay.Mul(decimal.NewFromInt(int64(in.AbsentDays)))
	net := grossAdjusted.Sub(tax).Sub(penalty)

	return Projection{
		HourRatio:     ratio.Round(4),
		GrossAdjusted: grossAdjusted.Round(2),
		Tax:           tax.Round(2),
		Penalty:       penalty.Round(2),
		Net:           net.Round(2),
	}
}
