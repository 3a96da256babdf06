package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
)

type BankDetails struct {
	AccountNumber string `json:"accountNumber" binding:"required" gorm:"column:account_number;type:varchar(34);not null"`
	IFSCCode      string `json:"ifscCode" binding:"required" gorm:"column:ifsc_code;type:varchar(11);not null"`
	AccountHolder string `json:"accountHolder" binding:"required" gorm:"column:account_holder;type:varchar(255);not null"`
}

type WithdrawalRequest struct {
	ID            string           `json:"id" gorm:"column:id;type:varchar(40);primaryKey"`
	Amount        decimal.Decimal  `json:"amount" gorm:"column:amount;type:numeric(20,2);not null"`
	Currency      string           `json:"currency" gorm:"column:currency;type:varchar(10);not null"`
	BankDetails   BankDetails      `json:"bankDetails" gorm:"embedded"`
	Status        WithdrawalStatus `json:"status" gorm:"column:status;type:varchar(20);not null"`
	Fee           decimal.Decimal  `json:"fee" gorm:"column:fee;type:numeric(20,2);not null"`
	EstimatedTime string           `json:"estimatedTime" gorm:"column:estimated_time;type:varchar(50)"`
	Timestamp     time.Time        `json:"timestamp" gorm:"column:created_at;not null"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty" gorm:"column:completed_at"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}

func (w *WithdrawalRequest) Clone() *WithdrawalRequest {
	if w == nil {
		return nil
	}
	c := *w
	if w.CompletedAt != nil {
		t := *w.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

// SubmitWithdrawalInput uses pointers so an absent field is distinguishable from a zero value.
type SubmitWithdrawalInput struct {
	Amount      *decimal.Decimal `json:"amount"`
	BankDetails *BankDetails     `json:"bankDetails"`
}
