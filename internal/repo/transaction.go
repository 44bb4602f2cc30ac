package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/repo/selector"
)

type Transaction struct {
	db  *bun.DB
	sel selector.S[model.Transaction]
}

func NewTransaction(db *bun.DB) *Transaction {
	return &Transaction{db: db, sel: selector.New[model.Transaction](db)}
}

// TransactionFilter narrows GetTransactions. Zero values mean "no constraint".
type TransactionFilter struct {
	Nature    string
	Status    string
	StartDate time.Time
	EndDate   time.Time
}

func (r *Transaction) GetTransactions(ctx context.Context, filter TransactionFilter) ([]*model.Transaction, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		if filter.Nature != "" {
			q = q.Where("transaction_nature = ?", filter.Nature)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if !filter.StartDate.IsZero() {
			q = q.Where("date >= ?", filter.StartDate)
		}
		if !filter.EndDate.IsZero() {
			q = q.Where("date <= ?", filter.EndDate)
		}
		return q.Order("date DESC")
	})
}

// GetTransactionsBetween returns transactions within [start, end] in ascending
// date order, for the calendar ledger view.
func (r *Transaction) GetTransactionsBetween(ctx context.Context, start, end time.Time) ([]*model.Transaction, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("date >= ?", start).
			Where("date <= ?", end).
			Order("date ASC")
	})
}

func (r *Transaction) GetTransactionById(ctx context.Context, transactionId int64) (*model.Transaction, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("transaction_id = ?", transactionId)
	})
}

func (r *Transaction) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	_, err := r.db.NewInsert().
		Model(transaction).
		Returning("transaction_id").
		Exec(ctx)
	return err
}

func (r *Transaction) UpdateTransaction(ctx context.Context, transaction *model.Transaction) error {
	_, err := r.db.NewUpdate().
		Model(transaction).
		WherePK().
		ExcludeColumn("created_at").
		Exec(ctx)
	return err
}

func (r *Transaction) DeleteTransaction(ctx context.Context, transactionId int64) error {
	_, err := r.db.NewDelete().
		Model((*model.Transaction)(nil)).
		Where("transaction_id = ?", transactionId).
		Exec(ctx)
	return err
}

// NatureStatusSum is one aggregation bucket of the stats query.
type NatureStatusSum struct {
	TransactionNature string  `bun:"transaction_nature"`
	Status            string  `bun:"status"`
	Total             float64 `bun:"total"`
	Count             int     `bun:"count"`
}

// SumByNatureAndStatus aggregates amount totals grouped by nature and status.
func (r *Transaction) SumByNatureAndStatus(ctx context.Context) ([]*NatureStatusSum, error) {
	results := make([]*NatureStatusSum, 0)
	err := r.db.NewSelect().
		Model((*model.Transaction)(nil)).
		Column("transaction_nature", "status").
		ColumnExpr("SUM(amount) AS total").
		ColumnExpr("COUNT(*) AS count").
		Group("transaction_nature", "status").
		Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}
