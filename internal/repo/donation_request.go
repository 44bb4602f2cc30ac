package repo

import (
	"context"

	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/repo/selector"
)

type DonationRequest struct {
	db  *bun.DB
	sel selector.S[model.DonationRequest]
}

func NewDonationRequest(db *bun.DB) *DonationRequest {
	return &DonationRequest{db: db, sel: selector.New[model.DonationRequest](db)}
}

// InsertBatch persists one chunk of donation requests in a single transaction.
func (r *DonationRequest) InsertBatch(ctx context.Context, requests []*model.DonationRequest) ([]int64, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&requests).Returning("donation_request_id").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(requests, func(d *model.DonationRequest, _ int) int64 {
		return d.DonationRequestID
	}), nil
}

func (r *DonationRequest) GetDonationRequests(ctx context.Context, status string) ([]*model.DonationRequest, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q.Order("created_at DESC")
	})
}

func (r *DonationRequest) GetDonationRequestById(ctx context.Context, requestId int64) (*model.DonationRequest, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("donation_request_id = ?", requestId)
	})
}

func (r *DonationRequest) UpdateDonationRequestStatus(ctx context.Context, requestId int64, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.DonationRequest)(nil)).
		Set("status = ?", status).
		Where("donation_request_id = ?", requestId).
		Exec(ctx)
	return err
}
