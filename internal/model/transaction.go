package model

// Category is the resolved classification of a transaction's tipo field.
type Category string

const (
	CategoryCredit  Category = "credito"
	CategoryDebit   Category = "debito"
	CategoryUnknown Category = "desconocido"
)

// IsValid reports whether c is one of the three recognized categories.
func (c Category) IsValid() bool {
	return c == CategoryCredit || c == CategoryDebit || c == CategoryUnknown
}

// String returns the category name as it appears in the statement domain.
func (c Category) String() string { return string(c) }

// Transaction is one raw row from the input statement. Values are kept
// exactly as read; nothing is trimmed or normalized.
type Transaction struct {
	ID     string // label from the id column; uniqueness is not required
	Type   string // free-text tipo column, resolved later by classification
	Amount string // unparsed monto column; expected to be a decimal string
}
