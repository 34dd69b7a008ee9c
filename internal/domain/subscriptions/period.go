package subscriptions

import (
	"time"

	"subshop-backend/internal/domain/products"
)

// Period is the billing window derived for a new subscription.
// NextPayment is the first calendar boundary one interval beyond End's
// month — the date after which the following renewal would be due — not
// End plus another interval.
type Period struct {
	Start       time.Time
	End         time.Time
	NextPayment time.Time
}

// ComputePeriod maps a billing interval onto concrete dates starting at
// from. This is calendar arithmetic: advancing Jan 31 by one month ends
// on the last valid day of February, not on March 2. Unknown intervals
// produce no advancement.
func ComputePeriod(interval string, from time.Time) Period {
	p := Period{Start: from, End: from, NextPayment: from}

	switch interval {
	case products.IntervalMonth:
		p.End = addMonthsClamped(from, 1)
		p.NextPayment = firstOfMonth(p.End.Year(), p.End.Month()+1, p.End.Location())
	case products.IntervalYear:
		p.End = addMonthsClamped(from, 12)
		p.NextPayment = firstOfMonth(p.End.Year()+1, p.End.Month(), p.End.Location())
	}

	return p
}

// addMonthsClamped advances t by n calendar months, clamping the day of
// month to the target month's last valid day. time.AddDate would
// normalize Jan 31 + 1 month into March, which is wrong for billing.
func addMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	month += time.Month(n)
	// time.Date normalizes out-of-range months for us.
	last := daysInMonth(year, month, t.Location())
	if day > last {
		day = last
	}
	h, m, s := t.Clock()
	return time.Date(year, month, day, h, m, s, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func firstOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}
