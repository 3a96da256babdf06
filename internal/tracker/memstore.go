package tracker

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type memoryStore struct {
	mu      sync.Mutex
	records map[string]*model.TransactionRecord
}

// NewMemoryStore keeps records for the lifetime of the process.
func NewMemoryStore() IStore {
	return &memoryStore{
		records: make(map[string]*model.TransactionRecord),
	}
}

func (s *memoryStore) Create(_ context.Context, record *model.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[record.Hash]; ok {
		return errors.Wrapf(errs.ErrDuplicateHash, "hash %s", record.Hash)
	}
	s.records[record.Hash] = record.Clone()
	return nil
}

func (s *memoryStore) Get(_ context.Context, hash string) (*model.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[hash]
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "transaction %s", hash)
	}
	return record.Clone(), nil
}

func (s *memoryStore) Update(_ context.Context, hash string, fn func(record *model.TransactionRecord) error) (*model.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[hash]
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "transaction %s", hash)
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	s.records[hash] = working
	return working.Clone(), nil
}

func (s *memoryStore) CountByStatus(_ context.Context, status model.TransactionStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, record := range s.records {
		if record.Status == status {
			count++
		}
	}
	return count, nil
}
