package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
	"pasaydan.org/backend/internal/util/rekuest"
)

type DonationRequestController struct {
	fx.In

	DonationRequestService *service.DonationRequest
}

func RegisterDonationRequest(admin *svr.Admin, c DonationRequestController) {
	admin.Get("/donation-requests", c.GetDonationRequests)
	admin.Get("/donation-requests/:requestId", c.GetDonationRequestById)
	admin.Patch("/donation-requests/:requestId/status", c.UpdateStatus)
}

func (c *DonationRequestController) GetDonationRequests(ctx *fiber.Ctx) error {
	requests, err := c.DonationRequestService.GetDonationRequests(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}

	return ctx.JSON(requests)
}

func (c *DonationRequestController) GetDonationRequestById(ctx *fiber.Ctx) error {
	requestId, err := pathId(ctx, "requestId")
	if err != nil {
		return err
	}

	request, err := c.DonationRequestService.GetDonationRequestById(ctx.Context(), requestId)
	if err != nil {
		return err
	}

	return ctx.JSON(request)
}

func (c *DonationRequestController) UpdateStatus(ctx *fiber.Ctx) error {
	requestId, err := pathId(ctx, "requestId")
	if err != nil {
		return err
	}

	var body types.UpdateDonationRequestStatusRequest
	if err := rekuest.ValidBody(ctx, &body); err != nil {
		return err
	}

	request, err := c.DonationRequestService.UpdateStatus(ctx.Context(), requestId, body.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(request)
}
