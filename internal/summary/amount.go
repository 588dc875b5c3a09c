package summary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidAmountError reports a monto value that is not a valid decimal.
// It is row-level: the aggregator records a diagnostic and skips the row
// instead of failing the run.
type InvalidAmountError struct {
	ID    string
	Value string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q in transaction %s", e.Value, e.ID)
}

// ParseAmount converts a raw monto string into an exact decimal. The
// transaction id travels with the error for diagnostics.
func ParseAmount(value, id string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &InvalidAmountError{ID: id, Value: value}
	}
	return d, nil
}
