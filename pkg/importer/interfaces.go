package importer

import (
	"context"

	"github.com/psedge/firefly-wise-importer/pkg/firefly"
	"github.com/psedge/firefly-wise-importer/pkg/wise"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package importer_test -source=interfaces.go

type StatementFetcher interface {
	Fetch(
		ctx context.Context,
		request *wise.FetchRequest,
	) ([]*wise.Transaction, error)
}

type Ledger interface {
	SearchTransactions(ctx context.Context, query string) ([]*firefly.TransactionRead, error)
	CreateTransaction(ctx context.Context, payload *firefly.TransactionRequest) error
	UpdateTransaction(ctx context.Context, id string, payload *firefly.TransactionRequest) error
}
