package tracker

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const (
	blockNumberBase  = 1000000
	blockNumberRange = 1000000
)

type tracker struct {
	store     IStore
	threshold int
	logger    *logger.Logger
	metrics   *monitoring.BusinessMetricsRecorder

	now         func() time.Time
	blockNumber func() int64
}

// New builds a tracker confirming records after threshold polls. threshold must be within
// 1..consts.MaxConfirmations. metrics may be nil.
func New(store IStore, threshold int, logger *logger.Logger, metrics *monitoring.BusinessMetricsRecorder) (ITracker, error) {
	if threshold < 1 || threshold > consts.MaxConfirmations {
		return nil, errors.Errorf("confirmation threshold %d outside 1..%d", threshold, consts.MaxConfirmations)
	}

	return &tracker{
		store:     store,
		threshold: threshold,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
		blockNumber: func() int64 {
			return blockNumberBase + rand.Int63n(blockNumberRange)
		},
	}, nil
}

func (t *tracker) Register(ctx context.Context, input model.RegisterTransactionInput) (*model.TransactionRecord, error) {
	start := time.Now()
	record, err := t.register(ctx, input)
	t.record("register", err, start)
	return record, err
}

func (t *tracker) register(ctx context.Context, input model.RegisterTransactionInput) (*model.TransactionRecord, error) {
	required := []struct{ field, value string }{
		{"hash", input.Hash},
		{"from", input.From},
		{"to", input.To},
		{"amount", input.Amount},
		{"currency", input.Currency},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, errors.Wrapf(errs.ErrMissingField, "%s is required", r.field)
		}
	}

	now := t.now()
	record := &model.TransactionRecord{
		Hash:          strings.TrimSpace(input.Hash),
		Status:        model.TransactionStatusPending,
		From:          input.From,
		To:            input.To,
		Amount:        input.Amount,
		Currency:      consts.NormalizeCurrency(input.Currency),
		GasUsed:       input.GasUsed,
		GasPrice:      input.GasPrice,
		Confirmations: 0,
		Timestamp:     now,
		UpdatedAt:     now,
	}

	if err := t.store.Create(ctx, record); err != nil {
		if !errors.Is(err, errs.ErrDuplicateHash) {
			t.logger.Error("[Tracker][Register]", map[string]string{
				"error": err.Error(),
				"hash":  record.Hash,
			})
		}
		return nil, err
	}

	t.logger.Info("[Tracker][Register] tracking transaction", map[string]string{
		"hash":     record.Hash,
		"currency": record.Currency,
	})
	return record, nil
}

func (t *tracker) Poll(ctx context.Context, hash string) (*model.TransactionRecord, error) {
	start := time.Now()
	record, err := t.store.Update(ctx, hash, func(record *model.TransactionRecord) error {
		if record.Status != model.TransactionStatusPending {
			return nil
		}

		if record.Confirmations < t.threshold {
			record.Confirmations++
		}
		if record.Confirmations >= t.threshold {
			record.Confirmations = t.threshold
			record.Status = model.TransactionStatusConfirmed
			blockNumber := t.blockNumber()
			record.BlockNumber = &blockNumber

			t.logger.Info("[Tracker][Poll] transaction confirmed", map[string]string{
				"hash":        record.Hash,
				"blockNumber": strconv.FormatInt(blockNumber, 10),
			})
		}
		record.UpdatedAt = t.now()
		return nil
	})
	t.record("poll", err, start)
	return record, err
}

func (t *tracker) Get(ctx context.Context, hash string) (*model.TransactionRecord, error) {
	return t.store.Get(ctx, hash)
}

func (t *tracker) MarkFailed(ctx context.Context, hash, reason string) (*model.TransactionRecord, error) {
	start := time.Now()
	record, err := t.store.Update(ctx, hash, func(record *model.TransactionRecord) error {
		if record.Status != model.TransactionStatusPending {
			return nil
		}
		record.Status = model.TransactionStatusFailed
		record.FailureReason = reason
		record.UpdatedAt = t.now()
		return nil
	})
	t.record("fail", err, start)
	if err == nil && record.Status == model.TransactionStatusFailed {
		t.logger.Warn("[Tracker][MarkFailed] transaction failed", map[string]string{
			"hash":   hash,
			"reason": reason,
		})
	}
	return record, err
}

func (t *tracker) Await(ctx context.Context, hash string, interval, timeout time.Duration) (*model.TransactionRecord, error) {
	if interval <= 0 || timeout <= 0 {
		return nil, errors.Errorf("poll interval %s and timeout %s must be positive", interval, timeout)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	record, err := t.Poll(ctx, hash)
	for {
		if err != nil {
			return record, err
		}
		if record.Status.IsTerminal() {
			return record, nil
		}

		select {
		case <-ctx.Done():
			return record, ctx.Err()
		case <-deadline.C:
			return record, errors.Wrapf(errs.ErrPollTimeout, "transaction %s still %s after %s", hash, record.Status, timeout)
		case <-ticker.C:
			var next *model.TransactionRecord
			next, err = t.Poll(ctx, hash)
			if err == nil {
				record = next
			}
		}
	}
}

func (t *tracker) PendingCount(ctx context.Context) (int64, error) {
	return t.store.CountByStatus(ctx, model.TransactionStatusPending)
}

func (t *tracker) record(operation string, err error, start time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	t.metrics.RecordTransactionOperation(operation, status, time.Since(start).Seconds())
}
