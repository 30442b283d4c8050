package expense

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DateLayout is the ISO 8601 calendar date used on the wire.
const DateLayout = "2006-01-02"

func init() {
	// record sources speak plain JSON numbers for prices
	decimal.MarshalJSONWithoutQuotes = true
}

// ID is assigned by the record source, never by this module.
type ID string

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both numeric and string ids.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "unmarshal id")
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "unmarshal id")
	}
	*id = ID(n.String())
	return nil
}

// IDFromInt formats a numeric id issued by a database sequence.
func IDFromInt(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}

// Date is a calendar day without a time component.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	d := now.With(t).BeginningOfDay()
	return NewDate(d.Year(), d.Month(), d.Day())
}

// Today is the default set date of a new expense.
func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrap(err, "parse date")
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "unmarshal date")
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	// some backends store full timestamps, only the day matters
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
