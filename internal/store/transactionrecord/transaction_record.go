package transactionrecord

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, record *model.TransactionRecord) (*model.TransactionRecord, error) {
	return record, tx.Create(record).Error
}

func (s *Store) GetByHash(tx *gorm.DB, hash string) (*model.TransactionRecord, error) {
	var record model.TransactionRecord
	err := tx.Where("hash = ?", hash).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) GetByHashForUpdate(tx *gorm.DB, hash string) (*model.TransactionRecord, error) {
	var record model.TransactionRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("hash = ?", hash).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) Save(tx *gorm.DB, record *model.TransactionRecord) error {
	return tx.Model(&model.TransactionRecord{}).
		Where("hash = ?", record.Hash).
		Updates(map[string]interface{}{
			"status":         record.Status,
			"confirmations":  record.Confirmations,
			"block_number":   record.BlockNumber,
			"failure_reason": record.FailureReason,
			"updated_at":     record.UpdatedAt,
		}).Error
}

func (s *Store) CountByStatus(tx *gorm.DB, status model.TransactionStatus) (int64, error) {
	var count int64
	err := tx.Model(&model.TransactionRecord{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
