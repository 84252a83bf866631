package repository

import "vocalwork/src/internal/entity"

type TransactionRepository struct {
	Store *Store
}

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{Store: store}
}

func (r *TransactionRepository) ListByUser(userID string) []entity.Transaction {
	return r.Store.ListTransactionsByUser(userID)
}
