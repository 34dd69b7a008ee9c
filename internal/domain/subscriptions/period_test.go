package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputePeriodMonth(t *testing.T) {
	from := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.UTC)
	p := ComputePeriod("month", from)

	assert.Equal(t, from, p.Start)
	assert.Equal(t, time.Date(2026, time.September, 28, 14, 30, 0, 0, time.UTC), p.End)
	// Next payment is the first calendar boundary past the end month,
	// not end + another month.
	assert.Equal(t, date(2026, time.October, 1), p.NextPayment)
}

func TestComputePeriodMonthClampsToShorterMonth(t *testing.T) {
	p := ComputePeriod("month", date(2026, time.January, 31))

	assert.Equal(t, date(2026, time.February, 28), p.End)
	assert.Equal(t, date(2026, time.March, 1), p.NextPayment)
}

func TestComputePeriodMonthClampsLeapFebruary(t *testing.T) {
	p := ComputePeriod("month", date(2024, time.January, 31))

	assert.Equal(t, date(2024, time.February, 29), p.End)
	assert.Equal(t, date(2024, time.March, 1), p.NextPayment)
}

func TestComputePeriodMonthAcrossYearEnd(t *testing.T) {
	p := ComputePeriod("month", date(2025, time.December, 15))

	assert.Equal(t, date(2026, time.January, 15), p.End)
	assert.Equal(t, date(2026, time.February, 1), p.NextPayment)
}

func TestComputePeriodYear(t *testing.T) {
	from := date(2026, time.August, 28)
	p := ComputePeriod("year", from)

	assert.Equal(t, from, p.Start)
	assert.Equal(t, date(2027, time.August, 28), p.End)
	assert.Equal(t, date(2028, time.August, 1), p.NextPayment)
}

func TestComputePeriodYearFromLeapDay(t *testing.T) {
	p := ComputePeriod("year", date(2024, time.February, 29))

	assert.Equal(t, date(2025, time.February, 28), p.End)
	assert.Equal(t, date(2026, time.February, 1), p.NextPayment)
}

func TestComputePeriodUnknownIntervalDoesNotAdvance(t *testing.T) {
	from := date(2026, time.August, 28)
	p := ComputePeriod("weekly", from)

	assert.Equal(t, from, p.Start)
	assert.Equal(t, from, p.End)
	assert.Equal(t, from, p.NextPayment)
}
