package withdrawal

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const idPrefix = "WD"

type simulator struct {
	store   IStore
	feeRate decimal.Decimal
	delay   time.Duration
	logger  *logger.Logger
	metrics *monitoring.BusinessMetricsRecorder

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool

	now   func() time.Time
	newID func() string
}

// New builds a simulator whose requests complete delay after submission. metrics may be nil.
func New(store IStore, feeRate decimal.Decimal, delay time.Duration, logger *logger.Logger, metrics *monitoring.BusinessMetricsRecorder) IWithdrawal {
	return &simulator{
		store:   store,
		feeRate: feeRate,
		delay:   delay,
		logger:  logger,
		metrics: metrics,
		timers:  make(map[string]*time.Timer),
		now:     time.Now,
		newID: func() string {
			return idPrefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		},
	}
}

func (s *simulator) Submit(ctx context.Context, input model.SubmitWithdrawalInput) (*model.WithdrawalRequest, error) {
	start := time.Now()
	request, err := s.submit(ctx, input)
	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.RecordWithdrawalOperation("submit", status, time.Since(start).Seconds())
	return request, err
}

func (s *simulator) submit(ctx context.Context, input model.SubmitWithdrawalInput) (*model.WithdrawalRequest, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	request := &model.WithdrawalRequest{
		ID:       s.newID(),
		Amount:   *input.Amount,
		Currency: consts.FiatCurrencyINR,
		BankDetails: model.BankDetails{
			AccountNumber: strings.TrimSpace(input.BankDetails.AccountNumber),
			IFSCCode:      strings.ToUpper(strings.TrimSpace(input.BankDetails.IFSCCode)),
			AccountHolder: strings.TrimSpace(input.BankDetails.AccountHolder),
		},
		Status:        model.WithdrawalStatusProcessing,
		Fee:           input.Amount.Mul(s.feeRate).Round(consts.FiatDecimals),
		EstimatedTime: consts.WithdrawalEstimatedTime,
		Timestamp:     s.now(),
	}

	if err := s.store.Create(ctx, request); err != nil {
		s.logger.Error("[Withdrawal][Submit]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	s.schedule(request.ID, s.delay)

	s.logger.Info("[Withdrawal][Submit] withdrawal accepted", map[string]string{
		"id":     request.ID,
		"amount": request.Amount.String(),
	})
	return request, nil
}

func (s *simulator) Get(ctx context.Context, id string) (*model.WithdrawalRequest, error) {
	return s.store.Get(ctx, id)
}

func (s *simulator) PendingCount(ctx context.Context) (int64, error) {
	processing, err := s.store.ListProcessing(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(processing)), nil
}

func (s *simulator) Resume(ctx context.Context) error {
	processing, err := s.store.ListProcessing(ctx)
	if err != nil {
		return errors.Wrap(err, "list processing withdrawals")
	}

	now := s.now()
	for _, request := range processing {
		remaining := request.Timestamp.Add(s.delay).Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		s.schedule(request.ID, remaining)
	}

	if len(processing) > 0 {
		s.logger.Info("[Withdrawal][Resume] rescheduled processing withdrawals", map[string]string{
			"count": strconv.Itoa(len(processing)),
		})
	}
	return nil
}

func (s *simulator) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *simulator) schedule(id string, after time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, ok := s.timers[id]; ok {
		return
	}
	s.timers[id] = time.AfterFunc(after, func() { s.complete(id) })
}

func (s *simulator) complete(id string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	start := time.Now()
	ok, err := s.store.Complete(context.Background(), id, s.now())
	if err != nil {
		s.metrics.RecordWithdrawalOperation("complete", "error", time.Since(start).Seconds())
		s.logger.Error("[Withdrawal][Complete]", map[string]string{
			"error": err.Error(),
			"id":    id,
		})
		return
	}
	if ok {
		s.metrics.RecordWithdrawalOperation("complete", "success", time.Since(start).Seconds())
		s.logger.Info("[Withdrawal][Complete] withdrawal completed", map[string]string{
			"id": id,
		})
	}
}

func validate(input model.SubmitWithdrawalInput) error {
	if input.Amount == nil {
		return errors.Wrap(errs.ErrMissingField, "amount is required")
	}
	if input.BankDetails == nil {
		return errors.Wrap(errs.ErrMissingField, "bankDetails is required")
	}

	required := []struct{ field, value string }{
		{"bankDetails.accountNumber", input.BankDetails.AccountNumber},
		{"bankDetails.ifscCode", input.BankDetails.IFSCCode},
		{"bankDetails.accountHolder", input.BankDetails.AccountHolder},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Wrapf(errs.ErrMissingField, "%s is required", r.field)
		}
	}

	if !input.Amount.IsPositive() {
		return errors.Wrapf(errs.ErrInvalidAmount, "amount %s must be positive", input.Amount)
	}
	return nil
}
