package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
	"pasaydan.org/backend/internal/util/rekuest"
)

type DriveController struct {
	fx.In

	DriveService *service.Drive
}

func RegisterDrive(v1 *svr.V1, c DriveController) {
	v1.Get("/drives", c.GetDrives)
	v1.Get("/drives/:driveId", c.GetDriveById)
	v1.Post("/drives", c.CreateDrive)
	v1.Put("/drives/:driveId", c.UpdateDrive)
	v1.Delete("/drives/:driveId", c.DeleteDrive)
}

func (c *DriveController) GetDrives(ctx *fiber.Ctx) error {
	drives, err := c.DriveService.GetDrives(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}

	return ctx.JSON(drives)
}

func (c *DriveController) GetDriveById(ctx *fiber.Ctx) error {
	driveId, err := pathId(ctx, "driveId")
	if err != nil {
		return err
	}

	drive, err := c.DriveService.GetDriveById(ctx.Context(), driveId)
	if err != nil {
		return err
	}

	return ctx.JSON(drive)
}

func (c *DriveController) CreateDrive(ctx *fiber.Ctx) error {
	var request types.CreateDriveRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	drive, err := c.DriveService.CreateDrive(ctx.Context(), &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(drive)
}

func (c *DriveController) UpdateDrive(ctx *fiber.Ctx) error {
	driveId, err := pathId(ctx, "driveId")
	if err != nil {
		return err
	}

	var request types.UpdateDriveRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	drive, err := c.DriveService.UpdateDrive(ctx.Context(), driveId, &request)
	if err != nil {
		return err
	}

	return ctx.JSON(drive)
}

func (c *DriveController) DeleteDrive(ctx *fiber.Ctx) error {
	driveId, err := pathId(ctx, "driveId")
	if err != nil {
		return err
	}

	if err := c.DriveService.DeleteDrive(ctx.Context(), driveId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Drive deleted successfully",
		"success": true,
	})
}

// pathId parses a positive integer path parameter.
func pathId(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, pserr.ErrInvalidReq.Msg("invalid or missing %s", name)
	}
	return id, nil
}
