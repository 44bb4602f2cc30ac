package service

import (
	"html/template"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pasaydan.org/backend/internal/model"
)

// certificateTemplate is the appreciation certificate sent to donors by mail.
// It is intentionally self-contained: inline styles only, no external assets.
const certificateTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Certificate of Appreciation</title>
</head>
<body style="margin:0;padding:24px;background:#f4f1ea;font-family:Georgia,serif;">
  <div style="max-width:640px;margin:0 auto;background:#ffffff;border:6px double #b8860b;padding:40px;text-align:center;">
    <h1 style="color:#b8860b;margin:0 0 4px;">Pasaydan</h1>
    <p style="color:#666;margin:0 0 28px;font-size:13px;letter-spacing:2px;">CERTIFICATE OF APPRECIATION</p>
    <p style="font-size:15px;color:#333;">This certificate is proudly presented to</p>
    <h2 style="color:#222;margin:8px 0;font-size:28px;">{{.Fullname}}</h2>
    <p style="font-size:15px;color:#333;line-height:1.6;">
      in grateful recognition of their generous contribution
      towards <strong>{{.Type}}</strong>.
      {{if .Description.Valid}}<br>{{.Description.String}}{{end}}
    </p>
    <p style="font-size:13px;color:#666;margin-top:28px;">
      Donation reference: {{.DonationID}}<br>
      Issued on {{.IssuedOn}}
    </p>
    <p style="font-size:14px;color:#333;margin-top:32px;font-style:italic;">
      Your kindness lights the way for those in need.
    </p>
  </div>
</body>
</html>`

// CertificateRenderer renders donor appreciation certificates to HTML.
type CertificateRenderer struct {
	tmpl *template.Template
}

func NewCertificateRenderer() (*CertificateRenderer, error) {
	tmpl, err := template.New("certificate").Parse(certificateTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse certificate template")
	}
	return &CertificateRenderer{tmpl: tmpl}, nil
}

func (r *CertificateRenderer) Render(certificate *model.Certificate) (string, error) {
	data := struct {
		*model.Certificate
		IssuedOn string
	}{
		Certificate: certificate,
		IssuedOn:    time.Now().Format("2 January 2006"),
	}

	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render certificate")
	}
	return buf.String(), nil
}
