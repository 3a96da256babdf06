package store

import (
	"github.com/dwarvesf/swiftchain-backend/internal/store/transactionrecord"
	"github.com/dwarvesf/swiftchain-backend/internal/store/withdrawalrequest"
)

type Store struct {
	TransactionRecord transactionrecord.IStore
	WithdrawalRequest withdrawalrequest.IStore
}

func New() *Store {
	return &Store{
		TransactionRecord: transactionrecord.New(),
		WithdrawalRequest: withdrawalrequest.New(),
	}
}
