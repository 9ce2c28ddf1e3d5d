// Package dbtest provides test doubles for the persistence boundary.
package dbtest

import (
	"context"

	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"
)

// StubTxRunner runs the callback directly with a nil DBTX. Repository mocks
// ignore the DBTX argument, so command logic can be exercised without a
// database.
type StubTxRunner struct{}

func NewStubTxRunner() shared.TxRunner {
	return &StubTxRunner{}
}

func (r *StubTxRunner) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (r *StubTxRunner) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}
