package v1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/imports"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
)

type ImportController struct {
	fx.In

	ImportService *service.Import
}

func RegisterImport(admin *svr.Admin, c ImportController) {
	c.register(admin, "drives", c.ImportService.Drives,
		"No drive data provided",
		func(count int) string { return "Drives imported successfully" })

	c.register(admin, "certificates", c.ImportService.Certificates,
		"No certificate data provided",
		func(count int) string { return "Certificates imported successfully" })

	c.register(admin, "donation-requests", c.ImportService.DonationRequests,
		"Invalid or empty donation requests data",
		func(count int) string { return fmt.Sprintf("Successfully imported %d donation requests", count) })
}

func (c *ImportController) register(admin *svr.Admin, path string, pipeline *imports.Pipeline, emptyError string, successMessage func(count int) string) {
	admin.Get("/import/"+path, func(ctx *fiber.Ctx) error {
		return ctx.JSON(pipeline.Descriptor().Template)
	})
	admin.Get("/import/"+path+"/template.xlsx", func(ctx *fiber.Ctx) error {
		return c.sendTemplate(ctx, path, pipeline)
	})
	admin.Post("/import/"+path, func(ctx *fiber.Ctx) error {
		records, err := recordsFromBody(ctx, pipeline.Descriptor().ListKey)
		if err != nil {
			return err
		}
		return c.runImport(ctx, pipeline, records, emptyError, successMessage)
	})
	admin.Post("/import/"+path+"/xlsx", func(ctx *fiber.Ctx) error {
		records, err := recordsFromUpload(ctx)
		if err != nil {
			return err
		}
		return c.runImport(ctx, pipeline, records, emptyError, successMessage)
	})
}

// runImport executes the pipeline and shapes the legacy response contract the
// entry forms expect: 400 with a plain error for empty input, 400 with the
// per-index details mapping for validation failures, 500 with the committed
// count on a write fault and 200 with a message and count on success.
func (c *ImportController) runImport(ctx *fiber.Ctx, pipeline *imports.Pipeline, records []imports.Record, emptyError string, successMessage func(count int) string) error {
	result, err := pipeline.Run(ctx.Context(), records)
	if err != nil {
		if errors.Is(err, imports.ErrNoRecords) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": emptyError,
			})
		}

		var ve *imports.ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"details": ve.Details,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   fmt.Sprintf("Failed to import %s", pipeline.Descriptor().Name),
			"success": false,
			"count":   result.Created,
		})
	}

	return ctx.JSON(fiber.Map{
		"message": successMessage(result.Created),
		"count":   result.Created,
		"success": true,
		"ids":     result.IDs,
	})
}

func (c *ImportController) sendTemplate(ctx *fiber.Ctx, path string, pipeline *imports.Pipeline) error {
	f, err := pipeline.Descriptor().Template.Xlsx()
	if err != nil {
		return err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return errors.Wrap(err, "write template workbook")
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s-template.xlsx"`, path))
	return ctx.Send(buf.Bytes())
}

// recordsFromBody extracts the entity list from a JSON body of the shape
// { <listKey>: [ {...}, ... ] }. A missing or non-list key maps to an empty
// record list so the pipeline reports it as a rejected request.
func recordsFromBody(ctx *fiber.Ctx, listKey string) ([]imports.Record, error) {
	var body map[string]any
	if err := ctx.BodyParser(&body); err != nil {
		return nil, pserr.ErrInvalidReq.Msg("invalid request body: %v", err)
	}

	raw, _ := body[listKey].([]any)
	records := make([]imports.Record, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, pserr.ErrInvalidReq.Msg("each entry under %q must be an object", listKey)
		}
		records = append(records, imports.Record(m))
	}
	return records, nil
}

// recordsFromUpload parses a filled-in template workbook from a multipart
// "file" field.
func recordsFromUpload(ctx *fiber.Ctx) ([]imports.Record, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, pserr.ErrInvalidReq.Msg("missing spreadsheet upload under the \"file\" field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, pserr.ErrInvalidReq.Msg("could not open uploaded file: %v", err)
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, pserr.ErrInvalidReq.Msg("uploaded file is not a valid xlsx workbook")
	}
	defer workbook.Close()

	return imports.RecordsFromXlsx(workbook)
}
