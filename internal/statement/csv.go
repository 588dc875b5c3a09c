// Package statement reads bank transaction statements from CSV files.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/odic3o/interbank-academy-25/internal/model"
)

// Required statement columns. The header may carry extra columns in any
// order; extras are ignored.
var requiredColumns = []string{"id", "tipo", "monto"}

// SchemaError reports required columns missing from the statement header.
// It rejects the whole file: no rows are returned alongside it.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("statement header missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Read parses statement rows from r. The first record is the header; it
// must contain at least the required columns. Row values are kept exactly
// as written, with no trimming.
func Read(r io.Reader, sep rune) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading statement header: %w", err)
	}

	// Map column names to their position; the first occurrence wins.
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement rows: %w", err)
	}

	txns := make([]model.Transaction, 0, len(records))
	for _, rec := range records {
		txns = append(txns, model.Transaction{
			ID:     rec[idx["id"]],
			Type:   rec[idx["tipo"]],
			Amount: rec[idx["monto"]],
		})
	}
	return txns, nil
}

// Load reads the statement file at path. A missing file is detectable with
// errors.Is(err, fs.ErrNotExist); a bad header surfaces as a *SchemaError.
func Load(path string, sep rune) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement %s: %w", path, err)
	}
	defer f.Close()

	txns, err := Read(f, sep)
	if err != nil {
		return nil, fmt.Errorf("reading statement %s: %w", path, err)
	}
	return txns, nil
}
