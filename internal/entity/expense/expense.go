package expense

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPayee    = errors.New("payee name is empty")
	ErrNegativePrice = errors.New("price is negative")
	ErrEmptyDate     = errors.New("set date is empty")
)

// Record is a single expense as issued by the record source.
type Record struct {
	ID        ID              `json:"id"`
	PayeeName string          `json:"payeeName"`
	Product   string          `json:"product"`
	Price     decimal.Decimal `json:"price"`
	SetDate   Date            `json:"setDate"`
}

// Draft is a record that was not persisted yet and has no id.
type Draft struct {
	PayeeName string          `json:"payeeName"`
	Product   string          `json:"product"`
	Price     decimal.Decimal `json:"price"`
	SetDate   Date            `json:"setDate"`
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.PayeeName) == "" {
		return ErrEmptyPayee
	}
	if d.Price.IsNegative() {
		return ErrNegativePrice
	}
	if d.SetDate.IsZero() {
		return ErrEmptyDate
	}
	return nil
}

// WithID turns the draft into a record carrying the id assigned by a source.
func (d Draft) WithID(id ID) Record {
	return Record{
		ID:        id,
		PayeeName: d.PayeeName,
		Product:   d.Product,
		Price:     d.Price,
		SetDate:   d.SetDate,
	}
}
