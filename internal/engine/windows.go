package engine

import (
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/shopspring/decimal"
)

// windows is the profit of the calendar periods containing "now".
type windows struct {
	today decimal.Decimal
	week  decimal.Decimal
	month decimal.Decimal
	year  decimal.Decimal
}

// boundaries are the date keys of the periods containing now, in loc.
type boundaries struct {
	today      string
	weekStart  string
	monthStart string
	yearStart  string
}

func boundariesAt(now time.Time, loc *time.Location) boundaries {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	return boundaries{
		today:      midnight.Format(model.DateLayout),
		weekStart:  weekStart(midnight).Format(model.DateLayout),
		monthStart: time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).Format(model.DateLayout),
		yearStart:  time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, loc).Format(model.DateLayout),
	}
}

// weekStart returns the Monday on or before day.
func weekStart(day time.Time) time.Time {
	if day.Weekday() == time.Sunday {
		return day.AddDate(0, 0, -6)
	}
	return day.AddDate(0, 0, -int(day.Weekday()-time.Monday))
}

// summarizeWindows derives today/week/month/year profit from the daily rollup.
// Keys are compared as strings, which is only valid because they are fixed-width.
func summarizeWindows(daily map[string]*bucket, now time.Time, loc *time.Location) windows {
	b := boundariesAt(now, loc)

	var w windows
	for date, day := range daily {
		if date == b.today {
			w.today = day.profit
		}
		if date >= b.yearStart {
			w.year = w.year.Add(day.profit)
		}
		if date >= b.monthStart {
			w.month = w.month.Add(day.profit)
		}
		if date >= b.weekStart {
			w.week = w.week.Add(day.profit)
		}
	}
	return w
}
