package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
	"pasaydan.org/backend/internal/util/rekuest"
)

type NotifyController struct {
	fx.In

	NotifyService *service.Notify
}

func RegisterNotify(admin *svr.Admin, c NotifyController) {
	admin.Post("/notify", c.Broadcast)
}

// Broadcast delivers an admin-authored message to every configured chat.
// Unlike the notifications fired off domain events, delivery failure here is
// surfaced to the caller.
func (c *NotifyController) Broadcast(ctx *fiber.Ctx) error {
	var request types.NotifyRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if !c.NotifyService.Telegram.Enabled() {
		return pserr.ErrInternalError.Msg("telegram notifications are not configured")
	}

	if err := c.NotifyService.Broadcast(ctx.Context(), request.Message); err != nil {
		return pserr.ErrInternalError.Msg("failed to deliver notification")
	}

	return ctx.JSON(fiber.Map{
		"message": "Notification sent successfully",
		"success": true,
	})
}
