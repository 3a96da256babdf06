package withdrawal

import (
	"context"
	"time"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type IWithdrawal interface {
	// Submit records a processing withdrawal that completes on its own after the configured delay
	Submit(ctx context.Context, input model.SubmitWithdrawalInput) (*model.WithdrawalRequest, error)
	Get(ctx context.Context, id string) (*model.WithdrawalRequest, error)
	PendingCount(ctx context.Context) (int64, error)
	// Resume schedules completion for requests left processing by a previous process
	Resume(ctx context.Context) error
	// Shutdown stops outstanding completion timers
	Shutdown()
}

type IStore interface {
	Create(ctx context.Context, request *model.WithdrawalRequest) error
	Get(ctx context.Context, id string) (*model.WithdrawalRequest, error)
	// Complete flips a processing request to completed and reports whether it did
	Complete(ctx context.Context, id string, completedAt time.Time) (bool, error)
	ListProcessing(ctx context.Context) ([]*model.WithdrawalRequest, error)
}
