package tracker

import (
	"context"
	"time"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type ITracker interface {
	// Register starts tracking a transaction as pending with zero confirmations
	Register(ctx context.Context, input model.RegisterTransactionInput) (*model.TransactionRecord, error)

	// Poll advances a pending record by one confirmation and returns it.
	// Terminal records are returned unchanged.
	Poll(ctx context.Context, hash string) (*model.TransactionRecord, error)

	Get(ctx context.Context, hash string) (*model.TransactionRecord, error)

	// MarkFailed moves a pending record to failed
	MarkFailed(ctx context.Context, hash, reason string) (*model.TransactionRecord, error)

	// Await polls every interval until the record is terminal or timeout elapses
	Await(ctx context.Context, hash string, interval, timeout time.Duration) (*model.TransactionRecord, error)

	PendingCount(ctx context.Context) (int64, error)
}

// IStore persists transaction records. Update runs fn against the stored record with
// mutation of that record serialized, and persists whatever fn leaves behind.
type IStore interface {
	Create(ctx context.Context, record *model.TransactionRecord) error
	Get(ctx context.Context, hash string) (*model.TransactionRecord, error)
	Update(ctx context.Context, hash string, fn func(record *model.TransactionRecord) error) (*model.TransactionRecord, error)
	CountByStatus(ctx context.Context, status model.TransactionStatus) (int64, error)
}
