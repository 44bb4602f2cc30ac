package repo

import (
	"context"

	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/repo/selector"
)

type Certificate struct {
	db  *bun.DB
	sel selector.S[model.Certificate]
}

func NewCertificate(db *bun.DB) *Certificate {
	return &Certificate{db: db, sel: selector.New[model.Certificate](db)}
}

// InsertBatch persists one chunk of certificates in a single transaction.
func (r *Certificate) InsertBatch(ctx context.Context, certificates []*model.Certificate) ([]int64, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&certificates).Returning("certificate_id").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(certificates, func(c *model.Certificate, _ int) int64 {
		return c.CertificateID
	}), nil
}

func (r *Certificate) GetCertificates(ctx context.Context) ([]*model.Certificate, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at DESC")
	})
}

func (r *Certificate) GetCertificateById(ctx context.Context, certificateId int64) (*model.Certificate, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("certificate_id = ?", certificateId)
	})
}

func (r *Certificate) GetCertificateByDonationId(ctx context.Context, donationId string) (*model.Certificate, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("donation_id = ?", donationId)
	})
}

func (r *Certificate) DeleteCertificate(ctx context.Context, certificateId int64) error {
	_, err := r.db.NewDelete().
		Model((*model.Certificate)(nil)).
		Where("certificate_id = ?", certificateId).
		Exec(ctx)
	return err
}
