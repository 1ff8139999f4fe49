package store

import (
	"context"
	"errors"

	"finboard/internal/models"
)

// ErrNotFound is returned when no transaction matches the requested id.
var ErrNotFound = errors.New("transaction not found")

// TransactionStore is the accessor over the external transactions
// collection. It is a thin pass-through: no caching, no retries, no
// cross-document transactionality.
type TransactionStore interface {
	// List returns every transaction, in whatever order the store yields.
	List(ctx context.Context) ([]models.Transaction, error)

	// GetByID returns the transaction with the given id or ErrNotFound.
	GetByID(ctx context.Context, id int64) (models.Transaction, error)

	// UpdateByID applies a merge-patch to the matching transaction and
	// returns the updated document. Any "id" key in fields is stripped
	// before applying, so a record's id can never be reassigned.
	UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) (models.Transaction, error)

	// DeleteByID removes the matching transaction or returns ErrNotFound.
	DeleteByID(ctx context.Context, id int64) error

	// Distinct returns the unique string values of the named field,
	// sorted ascending regardless of store order.
	Distinct(ctx context.Context, field string) ([]string, error)
}
