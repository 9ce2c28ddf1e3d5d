package shared

import (
	"context"

	"courtbook/internal/infra/db"
)

// TxRunner abstracts transaction boundaries away from the command layer.
type TxRunner interface {
	// Within: full transaction for write operations with retry on
	// serialization failure / deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}
