package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/repo"
	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
	"pasaydan.org/backend/internal/util/rekuest"
)

type ExpenditureController struct {
	fx.In

	ExpenditureService *service.Expenditure
}

func RegisterExpenditure(admin *svr.Admin, c ExpenditureController) {
	admin.Get("/expenditures", c.GetExpenditures)
	admin.Get("/expenditures/reports/monthly", c.MonthlyReport)
	admin.Get("/expenditures/reports/yearly", c.YearlyReport)
	admin.Get("/expenditures/reports/members", c.MemberReport)
	admin.Get("/expenditures/:expenditureId", c.GetExpenditureById)
	admin.Post("/expenditures", c.CreateExpenditure)
	admin.Put("/expenditures/:expenditureId", c.UpdateExpenditure)
	admin.Delete("/expenditures/:expenditureId", c.DeleteExpenditure)
}

func (c *ExpenditureController) GetExpenditures(ctx *fiber.Ctx) error {
	filter := repo.ExpenditureFilter{
		Category: ctx.Query("category"),
		SpentBy:  ctx.Query("spentBy"),
	}

	var err error
	if filter.StartDate, err = queryDate(ctx, "startDate"); err != nil {
		return err
	}
	if filter.EndDate, err = queryDate(ctx, "endDate"); err != nil {
		return err
	}
	if !filter.EndDate.IsZero() {
		filter.EndDate = filter.EndDate.Add(time.Hour*24 - time.Nanosecond)
	}

	expenditures, err := c.ExpenditureService.GetExpenditures(ctx.Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(expenditures)
}

func (c *ExpenditureController) MonthlyReport(ctx *fiber.Ctx) error {
	report, err := c.ExpenditureService.MonthlyReport(ctx.Context(), ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		return err
	}

	return ctx.JSON(report)
}

func (c *ExpenditureController) YearlyReport(ctx *fiber.Ctx) error {
	report, err := c.ExpenditureService.YearlyReport(ctx.Context(), ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		return err
	}

	return ctx.JSON(report)
}

func (c *ExpenditureController) MemberReport(ctx *fiber.Ctx) error {
	report, err := c.ExpenditureService.MemberReport(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(report)
}

func (c *ExpenditureController) GetExpenditureById(ctx *fiber.Ctx) error {
	expenditureId, err := pathId(ctx, "expenditureId")
	if err != nil {
		return err
	}

	expenditure, err := c.ExpenditureService.GetExpenditureById(ctx.Context(), expenditureId)
	if err != nil {
		return err
	}

	return ctx.JSON(expenditure)
}

func (c *ExpenditureController) CreateExpenditure(ctx *fiber.Ctx) error {
	var request types.CreateExpenditureRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	expenditure, err := c.ExpenditureService.CreateExpenditure(ctx.Context(), &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(expenditure)
}

func (c *ExpenditureController) UpdateExpenditure(ctx *fiber.Ctx) error {
	expenditureId, err := pathId(ctx, "expenditureId")
	if err != nil {
		return err
	}

	var request types.UpdateExpenditureRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	expenditure, err := c.ExpenditureService.UpdateExpenditure(ctx.Context(), expenditureId, &request)
	if err != nil {
		return err
	}

	return ctx.JSON(expenditure)
}

func (c *ExpenditureController) DeleteExpenditure(ctx *fiber.Ctx) error {
	expenditureId, err := pathId(ctx, "expenditureId")
	if err != nil {
		return err
	}

	if err := c.ExpenditureService.DeleteExpenditure(ctx.Context(), expenditureId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Expenditure deleted successfully",
		"success": true,
	})
}
