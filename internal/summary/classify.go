package summary

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/odic3o/interbank-academy-25/internal/model"
)

// Classify resolves a raw tipo value to a category. Matching is
// case-insensitive and the accented and unaccented Spanish spellings are
// equivalent. Every unrecognized value maps to CategoryUnknown; Classify
// is total over its input.
func Classify(tipo string) model.Category {
	switch strings.ToLower(norm.NFC.String(tipo)) {
	case "crédito", "credito":
		return model.CategoryCredit
	case "débito", "debito":
		return model.CategoryDebit
	default:
		return model.CategoryUnknown
	}
}
