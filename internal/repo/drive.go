package repo

import (
	"context"

	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/repo/selector"
)

type Drive struct {
	db  *bun.DB
	sel selector.S[model.Drive]
}

func NewDrive(db *bun.DB) *Drive {
	return &Drive{db: db, sel: selector.New[model.Drive](db)}
}

// InsertBatch persists one chunk of drives in a single transaction. Either
// every drive in the chunk is persisted or none.
func (r *Drive) InsertBatch(ctx context.Context, drives []*model.Drive) ([]int64, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&drives).Returning("drive_id").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(drives, func(d *model.Drive, _ int) int64 {
		return d.DriveID
	}), nil
}

func (r *Drive) GetDrives(ctx context.Context, status string) ([]*model.Drive, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q.Order("start_date ASC")
	})
}

func (r *Drive) GetDriveById(ctx context.Context, driveId int64) (*model.Drive, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("drive_id = ?", driveId)
	})
}

func (r *Drive) CreateDrive(ctx context.Context, drive *model.Drive) error {
	_, err := r.db.NewInsert().
		Model(drive).
		Returning("drive_id").
		Exec(ctx)
	return err
}

func (r *Drive) UpdateDrive(ctx context.Context, drive *model.Drive) error {
	_, err := r.db.NewUpdate().
		Model(drive).
		WherePK().
		ExcludeColumn("created_at").
		Exec(ctx)
	return err
}

func (r *Drive) DeleteDrive(ctx context.Context, driveId int64) error {
	_, err := r.db.NewDelete().
		Model((*model.Drive)(nil)).
		Where("drive_id = ?", driveId).
		Exec(ctx)
	return err
}
