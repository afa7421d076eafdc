package queries

import (
	"context"

	"travel-booking/internal/infra/store"
)

type TransactionViewRepo interface {
	FindAll(ctx context.Context) ([]store.Transaction, error)
}

type TransactionQueries interface {
	List(ctx context.Context) ([]*TransactionView, error)
}

type transactionQueriesImpl struct {
	repo TransactionViewRepo
}

func NewTransactionQueries(repo TransactionViewRepo) TransactionQueries {
	return &transactionQueriesImpl{repo: repo}
}

func (q *transactionQueriesImpl) List(ctx context.Context) ([]*TransactionView, error) {
	rows, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*TransactionView, 0, len(rows))
	for _, tx := range rows {
		views = append(views, &TransactionView{
			Date:          formatDate(tx.Date),
			Amount:        tx.Amount,
			ReservationID: tx.ReservationID,
			CustomerID:    tx.CustomerID,
			Type:          string(tx.Type),
		})
	}
	return views, nil
}
