package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odic3o/interbank-academy-25/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func tx(id, tipo, monto string) model.Transaction {
	return model.Transaction{ID: id, Type: tipo, Amount: monto}
}

func TestSummarizeExactDecimals(t *testing.T) {
	s, diags := Summarize([]model.Transaction{
		tx("1", "Crédito", "100.10"),
		tx("2", "Débito", "30.05"),
		tx("3", "Crédito", "50.00"),
	})

	require.Empty(t, diags)
	assert.Equal(t, "150.10", s.TotalCredits.String())
	assert.Equal(t, "30.05", s.TotalDebits.String())
	assert.Equal(t, "120.05", s.FinalBalance.String())
	assert.Equal(t, 2, s.CreditCount)
	assert.Equal(t, 1, s.DebitCount)
	assert.Equal(t, 3, s.Total())

	require.NotNil(t, s.Max)
	assert.Equal(t, "1", s.Max.ID)
	assert.Equal(t, "100.10", s.Max.Amount.String())
}

func TestSummarizeSkipsInvalidAmount(t *testing.T) {
	s, diags := Summarize([]model.Transaction{
		tx("1", "Crédito", "100.00"),
		tx("2", "Débito", "abc"),
		tx("3", "Débito", "40.00"),
	})

	require.Len(t, diags, 1)
	assert.Equal(t, DiagInvalidAmount, diags[0].Kind)
	assert.Equal(t, "2", diags[0].ID)
	assert.Equal(t, "abc", diags[0].Value)

	assert.True(t, s.TotalCredits.Equal(dec("100.00")))
	assert.True(t, s.TotalDebits.Equal(dec("40.00")))
	assert.Equal(t, 1, s.CreditCount)
	assert.Equal(t, 1, s.DebitCount)
	assert.Equal(t, 2, s.Total())
}

func TestSummarizeUnknownTypeExcluded(t *testing.T) {
	s, diags := Summarize([]model.Transaction{
		tx("1", "Crédito", "100.00"),
		tx("2", "transferencia", "500.00"),
		tx("3", "Débito", "40.00"),
	})

	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnknownType, diags[0].Kind)
	assert.Equal(t, "2", diags[0].ID)
	assert.Equal(t, "transferencia", diags[0].Value)

	// The unknown row counts toward nothing, not even the maximum.
	assert.True(t, s.TotalCredits.Equal(dec("100.00")))
	assert.True(t, s.TotalDebits.Equal(dec("40.00")))
	assert.Equal(t, 2, s.Total())
	require.NotNil(t, s.Max)
	assert.Equal(t, "1", s.Max.ID)
	assert.True(t, s.Max.Amount.Equal(dec("100.00")))
}

func TestSummarizeMaxAcrossCategories(t *testing.T) {
	s, diags := Summarize([]model.Transaction{
		tx("1", "Crédito", "50.00"),
		tx("2", "Débito", "200.00"),
		tx("3", "Crédito", "75.00"),
	})

	require.Empty(t, diags)
	require.NotNil(t, s.Max)
	assert.Equal(t, "2", s.Max.ID)
	assert.True(t, s.Max.Amount.Equal(dec("200.00")))
}

func TestSummarizeMaxTieKeepsFirst(t *testing.T) {
	s, _ := Summarize([]model.Transaction{
		tx("1", "Crédito", "100.00"),
		tx("2", "Débito", "100.00"),
	})

	require.NotNil(t, s.Max)
	assert.Equal(t, "1", s.Max.ID)
}

func TestSummarizeZeroAmountsLeaveNoMax(t *testing.T) {
	s, diags := Summarize([]model.Transaction{
		tx("1", "Crédito", "0"),
		tx("2", "Débito", "0.00"),
	})

	require.Empty(t, diags)
	assert.Nil(t, s.Max)
	assert.Equal(t, 2, s.Total())
	assert.True(t, s.FinalBalance.IsZero())
}

func TestSummarizeEmpty(t *testing.T) {
	s, diags := Summarize(nil)

	assert.Empty(t, diags)
	assert.True(t, s.TotalCredits.IsZero())
	assert.True(t, s.TotalDebits.IsZero())
	assert.True(t, s.FinalBalance.IsZero())
	assert.Nil(t, s.Max)
	assert.Equal(t, 0, s.Total())
}

func TestSummarizeNegativeBalance(t *testing.T) {
	s, _ := Summarize([]model.Transaction{
		tx("1", "Crédito", "10.00"),
		tx("2", "Débito", "25.50"),
	})

	assert.Equal(t, "-15.50", s.FinalBalance.String())
}

func TestSummarizeDiagnosticOrder(t *testing.T) {
	_, diags := Summarize([]model.Transaction{
		tx("1", "transferencia", "10.00"),
		tx("2", "Crédito", "oops"),
		tx("3", "pago", "5.00"),
	})

	require.Len(t, diags, 3)
	assert.Equal(t, DiagUnknownType, diags[0].Kind)
	assert.Equal(t, "1", diags[0].ID)
	assert.Equal(t, DiagInvalidAmount, diags[1].Kind)
	assert.Equal(t, "2", diags[1].ID)
	assert.Equal(t, DiagUnknownType, diags[2].Kind)
	assert.Equal(t, "3", diags[2].ID)
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Kind: DiagInvalidAmount, ID: "7", Value: "abc"}
	assert.Equal(t, `invalid amount "abc" in transaction 7`, d.String())

	d = Diagnostic{Kind: DiagUnknownType, ID: "9", Value: "giro"}
	assert.Equal(t, `unknown transaction type "giro" in transaction 9`, d.String())
}
