package withdrawal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/store"
)

type memoryStore struct {
	mu       sync.RWMutex
	requests map[string]*model.WithdrawalRequest
}

func NewMemoryStore() IStore {
	return &memoryStore{
		requests: make(map[string]*model.WithdrawalRequest),
	}
}

func (s *memoryStore) Create(_ context.Context, request *model.WithdrawalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[request.ID] = request.Clone()
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*model.WithdrawalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "withdrawal %s", id)
	}
	return request.Clone(), nil
}

func (s *memoryStore) Complete(_ context.Context, id string, completedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok {
		return false, errors.Wrapf(errs.ErrNotFound, "withdrawal %s", id)
	}
	if request.Status != model.WithdrawalStatusProcessing {
		return false, nil
	}
	request.Status = model.WithdrawalStatusCompleted
	request.CompletedAt = &completedAt
	return true, nil
}

func (s *memoryStore) ListProcessing(_ context.Context) ([]*model.WithdrawalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.WithdrawalRequest
	for _, request := range s.requests {
		if request.Status == model.WithdrawalStatusProcessing {
			out = append(out, request.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

type pgStore struct {
	db    *gorm.DB
	store *store.Store
}

// NewPostgresStore persists requests in withdrawal_requests.
func NewPostgresStore(db *gorm.DB, s *store.Store) IStore {
	return &pgStore{db: db, store: s}
}

func (p *pgStore) Create(ctx context.Context, request *model.WithdrawalRequest) error {
	_, err := p.store.WithdrawalRequest.Create(p.db.WithContext(ctx), request.Clone())
	return errors.Wrap(err, "create withdrawal request")
}

func (p *pgStore) Get(ctx context.Context, id string) (*model.WithdrawalRequest, error) {
	request, err := p.store.WithdrawalRequest.GetByID(p.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(errs.ErrNotFound, "withdrawal %s", id)
		}
		return nil, err
	}
	return request, nil
}

func (p *pgStore) Complete(ctx context.Context, id string, completedAt time.Time) (bool, error) {
	var updated bool
	err := store.DoInTx(p.db.WithContext(ctx), func(tx *gorm.DB) error {
		var err error
		updated, err = p.store.WithdrawalRequest.MarkCompleted(tx, id, completedAt)
		return err
	})
	return updated, err
}

func (p *pgStore) ListProcessing(ctx context.Context) ([]*model.WithdrawalRequest, error) {
	rows, err := p.store.WithdrawalRequest.FindByStatus(p.db.WithContext(ctx), model.WithdrawalStatusProcessing)
	if err != nil {
		return nil, err
	}
	out := make([]*model.WithdrawalRequest, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}
