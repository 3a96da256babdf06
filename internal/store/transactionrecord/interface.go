package transactionrecord

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, record *model.TransactionRecord) (*model.TransactionRecord, error)
	GetByHash(tx *gorm.DB, hash string) (*model.TransactionRecord, error)
	// GetByHashForUpdate locks the row until tx ends
	GetByHashForUpdate(tx *gorm.DB, hash string) (*model.TransactionRecord, error)
	Save(tx *gorm.DB, record *model.TransactionRecord) error
	CountByStatus(tx *gorm.DB, status model.TransactionStatus) (int64, error)
}
