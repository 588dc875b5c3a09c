// Package summary folds raw statement rows into the run's statistics.
package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/odic3o/interbank-academy-25/internal/model"
)

// DiagnosticKind discriminates the row-level events recorded while
// aggregating.
type DiagnosticKind string

const (
	// DiagInvalidAmount marks a row whose monto could not be parsed.
	DiagInvalidAmount DiagnosticKind = "invalid-amount"
	// DiagUnknownType marks a row whose tipo is not a recognized category.
	DiagUnknownType DiagnosticKind = "unknown-type"
)

// Diagnostic is one row-level event. Skipped rows are reported through
// these instead of printed, so callers decide how to surface them.
type Diagnostic struct {
	Kind  DiagnosticKind
	ID    string // transaction the event belongs to
	Value string // offending raw value (monto or tipo)
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagInvalidAmount:
		return fmt.Sprintf("invalid amount %q in transaction %s", d.Value, d.ID)
	case DiagUnknownType:
		return fmt.Sprintf("unknown transaction type %q in transaction %s", d.Value, d.ID)
	}
	return fmt.Sprintf("%s in transaction %s", d.Kind, d.ID)
}

// Summarize folds raw transactions into a Summary, in input order. Rows
// with an unparseable amount or an unrecognized type are recorded as
// diagnostics and excluded from every statistic, including the largest
// transaction. Summarize itself never fails.
func Summarize(txns []model.Transaction) (model.Summary, []Diagnostic) {
	s := model.Summary{
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
	}
	var diags []Diagnostic

	maxAmount := decimal.Zero
	var maxID string
	var hasMax bool

	for _, tx := range txns {
		amount, err := ParseAmount(tx.Amount, tx.ID)
		if err != nil {
			diags = append(diags, Diagnostic{Kind: DiagInvalidAmount, ID: tx.ID, Value: tx.Amount})
			continue
		}

		switch Classify(tx.Type) {
		case model.CategoryCredit:
			s.TotalCredits = s.TotalCredits.Add(amount)
			s.CreditCount++
		case model.CategoryDebit:
			s.TotalDebits = s.TotalDebits.Add(amount)
			s.DebitCount++
		default:
			diags = append(diags, Diagnostic{Kind: DiagUnknownType, ID: tx.ID, Value: tx.Type})
			continue
		}

		// Strictly greater: ties keep the first row seen, and the initial
		// zero keeps non-positive amounts out of the max entirely.
		if amount.GreaterThan(maxAmount) {
			maxAmount = amount
			maxID = tx.ID
			hasMax = true
		}
	}

	s.FinalBalance = s.TotalCredits.Sub(s.TotalDebits)
	if hasMax {
		s.Max = &model.MaxTransaction{ID: maxID, Amount: maxAmount}
	}
	return s, diags
}
