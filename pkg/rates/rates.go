package rates

import (
	"time"

	"github.com/shopspring/decimal"
)

const dayFormat = "2006-01-02"

// Series holds one closing rate per calendar day, keyed "2006-01-02".
// A dense series (one produced by Backfill) has no gaps inside its range.
type Series map[string]decimal.Decimal

// Rate returns the close for the given day, or decimal.Zero when the day is
// absent. Callers treat zero as "conversion unavailable", never as a real rate.
func (s Series) Rate(date time.Time) decimal.Decimal {
	return s[date.UTC().Format(dayFormat)]
}

// Backfill turns a sparse set of trading-day closes into a dense per-day
// series over [start, end] inclusive. Days without a close carry the last
// seen close forward; days before the first close use the earliest close in
// the whole set. The last-seen accumulator is local to one call, so state
// never leaks between windows.
func Backfill(closes Series, start, end time.Time) Series {
	series := Series{}
	if len(closes) == 0 {
		return series
	}

	earliest := earliestClose(closes)
	lastSeen := decimal.Decimal{}
	haveSeen := false

	for day := startOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayFormat)

		close, ok := closes[key]
		if !ok {
			if haveSeen {
				series[key] = lastSeen
			} else {
				series[key] = earliest
			}
			continue
		}

		series[key] = close
		lastSeen = close
		haveSeen = true
	}

	return series
}

func earliestClose(closes Series) decimal.Decimal {
	var earliestKey string
	var earliest decimal.Decimal

	for key, close := range closes {
		if earliestKey == "" || key < earliestKey {
			earliestKey = key
			earliest = close
		}
	}

	return earliest
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
