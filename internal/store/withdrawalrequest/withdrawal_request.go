package withdrawalrequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, request *model.WithdrawalRequest) (*model.WithdrawalRequest, error) {
	return request, tx.Create(request).Error
}

func (s *Store) GetByID(tx *gorm.DB, id string) (*model.WithdrawalRequest, error) {
	var request model.WithdrawalRequest
	err := tx.Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *Store) FindByStatus(tx *gorm.DB, status model.WithdrawalStatus) ([]model.WithdrawalRequest, error) {
	var requests []model.WithdrawalRequest
	err := tx.Where("status = ?", status).Order("created_at ASC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *Store) MarkCompleted(tx *gorm.DB, id string, completedAt time.Time) (bool, error) {
	res := tx.Model(&model.WithdrawalRequest{}).
		Where("id = ? AND status = ?", id, model.WithdrawalStatusProcessing).
		Updates(map[string]interface{}{
			"status":       model.WithdrawalStatusCompleted,
			"completed_at": completedAt,
		})
	return res.RowsAffected > 0, res.Error
}
