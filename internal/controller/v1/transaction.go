package v1

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/constant"
	"pasaydan.org/backend/internal/model/types"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/repo"
	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
	"pasaydan.org/backend/internal/util/rekuest"
)

type TransactionController struct {
	fx.In

	TransactionService *service.Transaction
}

func RegisterTransaction(admin *svr.Admin, c TransactionController) {
	admin.Get("/transactions", c.GetTransactions)
	admin.Get("/transactions/stats", c.GetStats)
	admin.Get("/transactions/:transactionId", c.GetTransactionById)
	admin.Post("/transactions", c.CreateTransaction)
	admin.Put("/transactions/:transactionId", c.UpdateTransaction)
	admin.Delete("/transactions/:transactionId", c.DeleteTransaction)
}

func (c *TransactionController) GetTransactions(ctx *fiber.Ctx) error {
	filter := repo.TransactionFilter{
		Nature: strings.ToUpper(ctx.Query("nature")),
		Status: strings.ToUpper(ctx.Query("status")),
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

	transactions, err := c.TransactionService.GetTransactions(ctx.Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(transactions)
}

func (c *TransactionController) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.TransactionService.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(stats)
}

func (c *TransactionController) GetTransactionById(ctx *fiber.Ctx) error {
	transactionId, err := pathId(ctx, "transactionId")
	if err != nil {
		return err
	}

	transaction, err := c.TransactionService.GetTransactionById(ctx.Context(), transactionId)
	if err != nil {
		return err
	}

	return ctx.JSON(transaction)
}

func (c *TransactionController) CreateTransaction(ctx *fiber.Ctx) error {
	var request types.CreateTransactionRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	transaction, err := c.TransactionService.CreateTransaction(ctx.Context(), &request)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(transaction)
}

func (c *TransactionController) UpdateTransaction(ctx *fiber.Ctx) error {
	transactionId, err := pathId(ctx, "transactionId")
	if err != nil {
		return err
	}

	var request types.UpdateTransactionRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	transaction, err := c.TransactionService.UpdateTransaction(ctx.Context(), transactionId, &request)
	if err != nil {
		return err
	}

	return ctx.JSON(transaction)
}

func (c *TransactionController) DeleteTransaction(ctx *fiber.Ctx) error {
	transactionId, err := pathId(ctx, "transactionId")
	if err != nil {
		return err
	}

	if err := c.TransactionService.DeleteTransaction(ctx.Context(), transactionId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Transaction deleted successfully",
		"success": true,
	})
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(ctx *fiber.Ctx, name string) (time.Time, error) {
	value := ctx.Query(name)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(constant.IsoDateLayout, value)
	if err != nil {
		return time.Time{}, pserr.ErrInvalidReq.Msg("%s must be a YYYY-MM-DD date", name)
	}
	return t, nil
}
