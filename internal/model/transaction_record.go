package model

import "time"

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusConfirmed || s == TransactionStatusFailed
}

type TransactionRecord struct {
	Hash          string            `json:"hash" gorm:"column:hash;type:varchar(66);primaryKey"`
	Status        TransactionStatus `json:"status" gorm:"column:status;type:varchar(20);not null;default:'pending'"`
	From          string            `json:"from" gorm:"column:from_address;type:varchar(255);not null"`
	To            string            `json:"to" gorm:"column:to_address;type:varchar(255);not null"`
	Amount        string            `json:"amount" gorm:"column:amount;type:varchar(78);not null"`
	Currency      string            `json:"currency" gorm:"column:currency;type:varchar(10);not null"`
	GasUsed       string            `json:"gasUsed" gorm:"column:gas_used;type:varchar(78)"`
	GasPrice      string            `json:"gasPrice" gorm:"column:gas_price;type:varchar(78)"`
	Confirmations int               `json:"confirmations" gorm:"column:confirmations;not null;default:0"`
	BlockNumber   *int64            `json:"blockNumber" gorm:"column:block_number"`
	FailureReason string            `json:"failureReason,omitempty" gorm:"column:failure_reason;type:text"`
	Timestamp     time.Time         `json:"timestamp" gorm:"column:created_at;not null"`
	UpdatedAt     time.Time         `json:"updatedAt" gorm:"column:updated_at;not null"`
}

func (TransactionRecord) TableName() string {
	return "transaction_records"
}

// Clone returns a detached copy so callers never share a stored record.
func (r *TransactionRecord) Clone() *TransactionRecord {
	if r == nil {
		return nil
	}
	c := *r
	if r.BlockNumber != nil {
		bn := *r.BlockNumber
		c.BlockNumber = &bn
	}
	return &c
}

type RegisterTransactionInput struct {
	Hash     string `json:"hash" binding:"required"`
	From     string `json:"from" binding:"required"`
	To       string `json:"to" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required"`
	GasUsed  string `json:"gasUsed"`
	GasPrice string `json:"gasPrice"`
}

// SentTransaction is what the wallet connector returns after a send.
type SentTransaction struct {
	Hash     string
	From     string
	To       string
	Amount   string
	Currency string
	GasUsed  string
	GasPrice string
	ChainID  int64
	Nonce    uint64
}
