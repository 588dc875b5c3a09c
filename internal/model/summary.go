package model

import "github.com/shopspring/decimal"

// MaxTransaction identifies the classified transaction with the largest
// amount seen during a run.
type MaxTransaction struct {
	ID     string
	Amount decimal.Decimal
}

// Summary is the aggregate result of one processing run.
// CreditCount+DebitCount never exceeds the number of input rows: rows
// skipped for an invalid amount or an unknown category are excluded.
type Summary struct {
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	FinalBalance decimal.Decimal // TotalCredits - TotalDebits; may be negative
	Max          *MaxTransaction // nil until a credit/debit row beats the initial zero
	CreditCount  int
	DebitCount   int
}

// Total returns the number of transactions included in the sums.
func (s Summary) Total() int {
	return s.CreditCount + s.DebitCount
}
