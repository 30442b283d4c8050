package settlement

import (
	"github.com/shopspring/decimal"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

var two = decimal.NewFromInt(2)

// DefaultPair is used when no participants are configured.
var DefaultPair = Pair{First: "Ajay", Second: "Tom"}

// Pair names the two participants sharing expenses.
// First is the distinguished payee: every record not paid by First
// is counted as paid by Second.
type Pair struct {
	First  string
	Second string
}

// Result tells who has to pay and how much to equalize the spend.
type Result struct {
	Owing  string
	Amount decimal.Decimal
}

type Summary struct {
	Total      decimal.Decimal
	FirstPaid  decimal.Decimal
	SecondPaid decimal.Decimal
	Settlement Result
}

func TotalByPayee(records []expense.Record, payee string) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		if rec.PayeeName == payee {
			total = total.Add(rec.Price)
		}
	}
	return total
}

func TotalAll(records []expense.Record) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Price)
	}
	return total
}

// Settle returns half of the spending gap and the participant who spent less.
// Ties resolve to First owing zero.
func (p Pair) Settle(records []expense.Record) Result {
	first, second := decimal.Zero, decimal.Zero
	for _, rec := range records {
		if rec.PayeeName == p.First {
			first = first.Add(rec.Price)
		} else {
			second = second.Add(rec.Price)
		}
	}

	res := Result{
		Owing:  p.First,
		Amount: first.Sub(second).Abs().Div(two),
	}
	if first.GreaterThan(second) {
		res.Owing = p.Second
	}
	return res
}

func (p Pair) Summarize(records []expense.Record) Summary {
	return Summary{
		Total:      TotalAll(records),
		FirstPaid:  TotalByPayee(records, p.First),
		SecondPaid: TotalByPayee(records, p.Second),
		Settlement: p.Settle(records),
	}
}

// Contains reports whether name is one of the participants.
func (p Pair) Contains(name string) bool {
	return name == p.First || name == p.Second
}

func (p Pair) Names() []string {
	return []string{p.First, p.Second}
}
