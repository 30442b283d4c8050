package settlement

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var periodStarts = map[string]func(*now.Now) time.Time{
	PeriodAll:   func(*now.Now) time.Time { return time.Time{} },
	PeriodWeek:  (*now.Now).BeginningOfWeek,
	PeriodMonth: (*now.Now).BeginningOfMonth,
	PeriodYear:  (*now.Now).BeginningOfYear,
}

// PeriodStart returns the first instant of the period containing at.
func PeriodStart(period string, at time.Time) (time.Time, error) {
	start, ok := periodStarts[period]
	if !ok {
		return time.Time{}, fmt.Errorf("period %q is not supported", period)
	}
	return start(now.With(at)), nil
}

// Since keeps the records set on or after the day of from, in order.
func Since(records []expense.Record, from time.Time) []expense.Record {
	if from.IsZero() {
		return records
	}
	day := expense.DateOf(from)
	res := make([]expense.Record, 0, len(records))
	for _, rec := range records {
		if !rec.SetDate.Before(day.Time) {
			res = append(res, rec)
		}
	}
	return res
}

func Periods() []string {
	return []string{PeriodAll, PeriodWeek, PeriodMonth, PeriodYear}
}
