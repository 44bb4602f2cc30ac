package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/server/svr"
	"pasaydan.org/backend/internal/service"
)

type CertificateController struct {
	fx.In

	CertificateService *service.Certificate
}

func RegisterCertificate(v1 *svr.V1, admin *svr.Admin, c CertificateController) {
	v1.Get("/certificates/donation/:donationId", c.GetCertificateByDonationId)
	v1.Post("/certificates/:certificateId/generate", c.GenerateCertificate)

	admin.Get("/certificates", c.GetCertificates)
	admin.Get("/certificates/:certificateId", c.GetCertificateById)
	admin.Delete("/certificates/:certificateId", c.DeleteCertificate)
}

func (c *CertificateController) GetCertificates(ctx *fiber.Ctx) error {
	certificates, err := c.CertificateService.GetCertificates(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(certificates)
}

func (c *CertificateController) GetCertificateById(ctx *fiber.Ctx) error {
	certificateId, err := pathId(ctx, "certificateId")
	if err != nil {
		return err
	}

	certificate, err := c.CertificateService.GetCertificateById(ctx.Context(), certificateId)
	if err != nil {
		return err
	}

	return ctx.JSON(certificate)
}

func (c *CertificateController) GetCertificateByDonationId(ctx *fiber.Ctx) error {
	certificate, err := c.CertificateService.GetCertificateByDonationId(ctx.Context(), ctx.Params("donationId"))
	if err != nil {
		return err
	}

	return ctx.JSON(certificate)
}

func (c *CertificateController) GenerateCertificate(ctx *fiber.Ctx) error {
	certificateId, err := pathId(ctx, "certificateId")
	if err != nil {
		return err
	}

	certificate, err := c.CertificateService.GenerateAndSend(ctx.Context(), certificateId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Certificate sent successfully",
		"email":   certificate.Email,
		"success": true,
	})
}

func (c *CertificateController) DeleteCertificate(ctx *fiber.Ctx) error {
	certificateId, err := pathId(ctx, "certificateId")
	if err != nil {
		return err
	}

	if err := c.CertificateService.DeleteCertificate(ctx.Context(), certificateId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"message": "Certificate deleted successfully",
		"success": true,
	})
}
