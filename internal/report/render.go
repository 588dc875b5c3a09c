// Package report renders a statement summary as the fixed text block
// shown on the console and saved to the report file.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/odic3o/interbank-academy-25/internal/model"
)

// Render produces the report text for s. Amounts keep the scale they
// were parsed with and carry the currency prefix. The result is
// newline terminated and identical for console and file output.
func Render(s model.Summary, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "===== REPORTE DE TRANSACCIONES BANCARIAS =====\n")
	fmt.Fprintf(&b, "\nResumen de Montos:\n")
	fmt.Fprintf(&b, "  - Total Créditos: %s%s\n", currency, s.TotalCredits)
	fmt.Fprintf(&b, "  - Total Débitos: %s%s\n", currency, s.TotalDebits)
	fmt.Fprintf(&b, "Balance Final: %s%s\n", currency, s.FinalBalance)

	maxID, maxAmount := "N/A", "0"
	if s.Max != nil {
		maxID = s.Max.ID
		maxAmount = s.Max.Amount.String()
	}
	fmt.Fprintf(&b, "\nTransacción de Mayor Monto: ID %s con %s%s\n", maxID, currency, maxAmount)

	fmt.Fprintf(&b, "\nConteo de Transacciones:\n")
	fmt.Fprintf(&b, "  - Créditos: %d\n", s.CreditCount)
	fmt.Fprintf(&b, "  - Débitos: %d\n", s.DebitCount)
	fmt.Fprintf(&b, "  - Total: %d\n", s.Total())

	return b.String()
}

// Write renders s to w.
func Write(w io.Writer, s model.Summary, currency string) error {
	_, err := io.WriteString(w, Render(s, currency))
	return err
}

// Save writes the rendered report to path, replacing any existing file.
func Save(path string, s model.Summary, currency string) error {
	if err := os.WriteFile(path, []byte(Render(s, currency)), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// OutputPath derives the report filename from the input path: everything
// up to the first period, with suffix appended.
func OutputPath(input, suffix string) string {
	base, _, _ := strings.Cut(input, ".")
	return base + suffix
}
