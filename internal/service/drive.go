package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"gopkg.in/guregu/null.v3"

	"pasaydan.org/backend/internal/constant"
	"pasaydan.org/backend/internal/imports"
	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/repo"
)

type Drive struct {
	DriveRepo *repo.Drive
	Notify    *Notify
}

func NewDrive(driveRepo *repo.Drive, notify *Notify) *Drive {
	return &Drive{
		DriveRepo: driveRepo,
		Notify:    notify,
	}
}

func (s *Drive) GetDrives(ctx context.Context, status string) ([]*model.Drive, error) {
	return s.DriveRepo.GetDrives(ctx, status)
}

func (s *Drive) GetDriveById(ctx context.Context, driveId int64) (*model.Drive, error) {
	return s.DriveRepo.GetDriveById(ctx, driveId)
}

func (s *Drive) CreateDrive(ctx context.Context, request *types.CreateDriveRequest) (*model.Drive, error) {
	if !imports.IsValidDate(request.StartDate) {
		return nil, pserr.ErrInvalidReq.Msg("startDate must be a valid DD-MM-YYYY or YYYY-MM-DD date")
	}
	if !imports.IsValidDate(request.EndDate) {
		return nil, pserr.ErrInvalidReq.Msg("EndDate must be a valid DD-MM-YYYY or YYYY-MM-DD date")
	}

	drive := &model.Drive{}
	if err := copier.Copy(drive, request); err != nil {
		return nil, err
	}
	drive.StartDate = imports.NormalizeDate(request.StartDate)
	drive.EndDate = imports.NormalizeDate(request.EndDate)
	drive.Status = normalizeDriveStatus(request.Status)
	drive.PlaceLink = null.NewString(request.PlaceLink, request.PlaceLink != "")
	drive.Photos = []string{}
	if request.Geolocation != nil {
		drive.GeoLocation = &model.GeoLocation{
			Latitude:  request.Geolocation.Latitude,
			Longitude: request.Geolocation.Longitude,
		}
	}

	if err := s.DriveRepo.CreateDrive(ctx, drive); err != nil {
		return nil, err
	}

	s.Notify.Fire(fmt.Sprintf("New drive created: %s at %s (%s to %s)", drive.Title, drive.Location, drive.StartDate, drive.EndDate))

	return drive, nil
}

func (s *Drive) UpdateDrive(ctx context.Context, driveId int64, request *types.UpdateDriveRequest) (*model.Drive, error) {
	drive, err := s.DriveRepo.GetDriveById(ctx, driveId)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, v null.String) {
		if v.Valid {
			*dst = v.String
		}
	}
	applyString(&drive.Title, request.Title)
	applyString(&drive.Location, request.Location)
	applyString(&drive.Description, request.Description)
	applyString(&drive.Dtype, request.Dtype)
	applyString(&drive.TimeInterval, request.TimeInterval)

	if request.StartDate.Valid {
		if !imports.IsValidDate(request.StartDate.String) {
			return nil, pserr.ErrInvalidReq.Msg("startDate must be a valid DD-MM-YYYY or YYYY-MM-DD date")
		}
		drive.StartDate = imports.NormalizeDate(request.StartDate.String)
	}
	if request.EndDate.Valid {
		if !imports.IsValidDate(request.EndDate.String) {
			return nil, pserr.ErrInvalidReq.Msg("EndDate must be a valid DD-MM-YYYY or YYYY-MM-DD date")
		}
		drive.EndDate = imports.NormalizeDate(request.EndDate.String)
	}
	if drive.EndDate < drive.StartDate {
		return nil, pserr.ErrInvalidReq.Msg("End date cannot be before start date")
	}

	if request.Status.Valid {
		drive.Status = normalizeDriveStatus(request.Status.String)
	}
	if request.PlaceLink.Valid {
		drive.PlaceLink = null.NewString(request.PlaceLink.String, request.PlaceLink.String != "")
	}

	if err := s.DriveRepo.UpdateDrive(ctx, drive); err != nil {
		return nil, err
	}
	return drive, nil
}

func (s *Drive) DeleteDrive(ctx context.Context, driveId int64) error {
	if _, err := s.DriveRepo.GetDriveById(ctx, driveId); err != nil {
		return err
	}
	return s.DriveRepo.DeleteDrive(ctx, driveId)
}

// normalizeDriveStatus lower-cases a caller-supplied status and falls back to
// pending, mirroring what the bulk import normalizer does.
func normalizeDriveStatus(status string) string {
	r := imports.Record{"status": status}
	imports.LowerFields(r, "status")
	imports.DefaultFields(r, constant.DriveStatusPending, "status")
	return r.Str("status")
}
