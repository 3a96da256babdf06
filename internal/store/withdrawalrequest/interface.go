package withdrawalrequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, request *model.WithdrawalRequest) (*model.WithdrawalRequest, error)
	GetByID(tx *gorm.DB, id string) (*model.WithdrawalRequest, error)
	FindByStatus(tx *gorm.DB, status model.WithdrawalStatus) ([]model.WithdrawalRequest, error)
	// MarkCompleted only touches rows still processing and reports whether one was updated
	MarkCompleted(tx *gorm.DB, id string, completedAt time.Time) (bool, error)
}
