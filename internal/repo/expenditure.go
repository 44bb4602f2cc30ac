package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/repo/selector"
)

type Expenditure struct {
	db  *bun.DB
	sel selector.S[model.Expenditure]
}

func NewExpenditure(db *bun.DB) *Expenditure {
	return &Expenditure{db: db, sel: selector.New[model.Expenditure](db)}
}

// ExpenditureFilter narrows GetExpenditures. Zero values mean "no constraint".
type ExpenditureFilter struct {
	Category  string
	SpentBy   string
	StartDate time.Time
	EndDate   time.Time
}

func (r *Expenditure) GetExpenditures(ctx context.Context, filter ExpenditureFilter) ([]*model.Expenditure, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		if filter.Category != "" {
			q = q.Where("category = ?", filter.Category)
		}
		if filter.SpentBy != "" {
			q = q.Where("spent_by = ?", filter.SpentBy)
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

func (r *Expenditure) GetExpenditureById(ctx context.Context, expenditureId int64) (*model.Expenditure, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("expenditure_id = ?", expenditureId)
	})
}

func (r *Expenditure) CreateExpenditure(ctx context.Context, expenditure *model.Expenditure) error {
	_, err := r.db.NewInsert().
		Model(expenditure).
		Returning("expenditure_id").
		Exec(ctx)
	return err
}

func (r *Expenditure) UpdateExpenditure(ctx context.Context, expenditure *model.Expenditure) error {
	_, err := r.db.NewUpdate().
		Model(expenditure).
		WherePK().
		ExcludeColumn("created_at").
		Exec(ctx)
	return err
}

func (r *Expenditure) DeleteExpenditure(ctx context.Context, expenditureId int64) error {
	_, err := r.db.NewDelete().
		Model((*model.Expenditure)(nil)).
		Where("expenditure_id = ?", expenditureId).
		Exec(ctx)
	return err
}

// PeriodSum is one aggregation bucket of the report queries. Period is
// YYYY-MM for monthly reports and YYYY for yearly ones.
type PeriodSum struct {
	Period   string  `bun:"period"`
	Category string  `bun:"category"`
	Total    float64 `bun:"total"`
	Count    int     `bun:"count"`
}

// SumByPeriod aggregates expenditure totals per period and category.
// periodExpr must be a to_char format, e.g. YYYY-MM.
func (r *Expenditure) SumByPeriod(ctx context.Context, periodFormat string, start, end time.Time) ([]*PeriodSum, error) {
	results := make([]*PeriodSum, 0)
	q := r.db.NewSelect().
		Model((*model.Expenditure)(nil)).
		ColumnExpr("to_char(date, ?) AS period", periodFormat).
		Column("category").
		ColumnExpr("SUM(amount) AS total").
		ColumnExpr("COUNT(*) AS count")
	if !start.IsZero() {
		q = q.Where("date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("date <= ?", end)
	}
	err := q.
		GroupExpr("to_char(date, ?), category", periodFormat).
		OrderExpr("period ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// MemberSum is one per-member aggregation bucket.
type MemberSum struct {
	SpentBy string  `bun:"spent_by"`
	Total   float64 `bun:"total"`
	Count   int     `bun:"count"`
}

// SumByMember aggregates expenditure totals per member.
func (r *Expenditure) SumByMember(ctx context.Context) ([]*MemberSum, error) {
	results := make([]*MemberSum, 0)
	err := r.db.NewSelect().
		Model((*model.Expenditure)(nil)).
		Column("spent_by").
		ColumnExpr("SUM(amount) AS total").
		ColumnExpr("COUNT(*) AS count").
		Group("spent_by").
		OrderExpr("total DESC").
		Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}
