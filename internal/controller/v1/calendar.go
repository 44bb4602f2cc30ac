package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
)

type CalendarController struct {
	fx.In

	TransactionService *service.Transaction
}

func RegisterCalendar(admin *svr.Admin, c CalendarController) {
	admin.Get("/calendar", c.GetCalendar)
}

// GetCalendar returns the donation ledger for the requested date window.
func (c *CalendarController) GetCalendar(ctx *fiber.Ctx) error {
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")
	if startDate == "" || endDate == "" {
		return pserr.ErrInvalidReq.Msg("Start and end dates are required")
	}

	entries, err := c.TransactionService.GetCalendarEntries(ctx.Context(), startDate, endDate)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"donations": entries,
	})
}
