// Package metrics builds the dashboard metrics card: period selection, the
// date range each period covers, and the chart and summary tiles.
package metrics

import (
	"time"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
)

type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// DefaultPeriod is selected when a card mounts.
const DefaultPeriod = Weekly

// Periods lists the tabs in display order.
var Periods = []Period{Daily, Weekly, Monthly, Yearly}

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Daily, Weekly, Monthly, Yearly:
		return p, nil
	default:
		return "", errors.ErrInvalidPeriod
	}
}

// DateLayout is DD-MM-YYYY.
const DateLayout = "02-01-2006"

// RangeFor returns the window a period covers, ending today. Month
// arithmetic overflows into the next month, so 31 July minus five months
// lands in early March.
func RangeFor(p Period, now time.Time) models.DateRange {
	var from time.Time
	switch p {
	case Daily:
		from = now.AddDate(0, 0, -6)
	case Weekly:
		from = now.AddDate(0, 0, -27)
	case Monthly:
		from = now.AddDate(0, -5, 0)
	case Yearly:
		from = now.AddDate(-3, 0, 0)
	default:
		from = now
	}
	return models.DateRange{
		FromDate: from.Format(DateLayout),
		ToDate:   now.Format(DateLayout),
	}
}
