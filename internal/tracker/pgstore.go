package tracker

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/store"
)

const uniqueViolation = "23505"

type pgStore struct {
	db    *gorm.DB
	store *store.Store
}

// NewPostgresStore persists records in transaction_records. Update locks the row for its duration.
func NewPostgresStore(db *gorm.DB, s *store.Store) IStore {
	return &pgStore{db: db, store: s}
}

func (p *pgStore) Create(ctx context.Context, record *model.TransactionRecord) error {
	_, err := p.store.TransactionRecord.Create(p.db.WithContext(ctx), record.Clone())
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Wrapf(errs.ErrDuplicateHash, "hash %s", record.Hash)
		}
		return errors.Wrap(err, "create transaction record")
	}
	return nil
}

func (p *pgStore) Get(ctx context.Context, hash string) (*model.TransactionRecord, error) {
	record, err := p.store.TransactionRecord.GetByHash(p.db.WithContext(ctx), hash)
	if err != nil {
		return nil, mapNotFound(err, hash)
	}
	return record, nil
}

func (p *pgStore) Update(ctx context.Context, hash string, fn func(record *model.TransactionRecord) error) (*model.TransactionRecord, error) {
	var updated *model.TransactionRecord
	err := store.DoInTx(p.db.WithContext(ctx), func(tx *gorm.DB) error {
		record, err := p.store.TransactionRecord.GetByHashForUpdate(tx, hash)
		if err != nil {
			return mapNotFound(err, hash)
		}
		if err := fn(record); err != nil {
			return err
		}
		if err := p.store.TransactionRecord.Save(tx, record); err != nil {
			return errors.Wrap(err, "save transaction record")
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (p *pgStore) CountByStatus(ctx context.Context, status model.TransactionStatus) (int64, error) {
	return p.store.TransactionRecord.CountByStatus(p.db.WithContext(ctx), status)
}

func mapNotFound(err error, hash string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(errs.ErrNotFound, "transaction %s", hash)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
