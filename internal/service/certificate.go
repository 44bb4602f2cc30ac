package service

import (
	"context"
	"fmt"

	"pasaydan.org/backend/internal/infra"
	"pasaydan.org/backend/internal/model"
	"pasaydan.org/backend/internal/pkg/pserr"
	"pasaydan.org/backend/internal/repo"
)

type Certificate struct {
	CertificateRepo *repo.Certificate
	Renderer        *CertificateRenderer
	Mailer          *infra.SMTPMailer
	Notify          *Notify
}

func NewCertificate(certificateRepo *repo.Certificate, renderer *CertificateRenderer, mailer *infra.SMTPMailer, notify *Notify) *Certificate {
	return &Certificate{
		CertificateRepo: certificateRepo,
		Renderer:        renderer,
		Mailer:          mailer,
		Notify:          notify,
	}
}

func (s *Certificate) GetCertificates(ctx context.Context) ([]*model.Certificate, error) {
	return s.CertificateRepo.GetCertificates(ctx)
}

func (s *Certificate) GetCertificateById(ctx context.Context, certificateId int64) (*model.Certificate, error) {
	return s.CertificateRepo.GetCertificateById(ctx, certificateId)
}

func (s *Certificate) GetCertificateByDonationId(ctx context.Context, donationId string) (*model.Certificate, error) {
	return s.CertificateRepo.GetCertificateByDonationId(ctx, donationId)
}

func (s *Certificate) DeleteCertificate(ctx context.Context, certificateId int64) error {
	if _, err := s.CertificateRepo.GetCertificateById(ctx, certificateId); err != nil {
		return err
	}
	return s.CertificateRepo.DeleteCertificate(ctx, certificateId)
}

// GenerateAndSend renders the appreciation certificate for a stored record and
// mails it to the donor.
func (s *Certificate) GenerateAndSend(ctx context.Context, certificateId int64) (*model.Certificate, error) {
	certificate, err := s.CertificateRepo.GetCertificateById(ctx, certificateId)
	if err != nil {
		return nil, err
	}

	if !s.Mailer.Enabled() {
		return nil, pserr.ErrInternalError.Msg("mail delivery is not configured")
	}

	html, err := s.Renderer.Render(certificate)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Certificate of Appreciation - %s", certificate.Fullname)
	if err := s.Mailer.Send(certificate.Email, subject, html); err != nil {
		return nil, pserr.ErrInternalError.Msg("failed to send certificate email")
	}

	s.Notify.Fire(fmt.Sprintf("Certificate %s sent to %s <%s>", certificate.DonationID, certificate.Fullname, certificate.Email))

	return certificate, nil
}
