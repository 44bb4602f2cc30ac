package infra

import (
	"fmt"
	"net/smtp"
	"strings"

	"pasaydan.org/backend/internal/app/appconfig"
)

// SMTPMailer dispatches HTML mail over plain SMTP. A mailer with an empty
// host is valid and silently drops every message, so local setups work
// without a mail server.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func Mailer(conf *appconfig.Config) *SMTPMailer {
	m := &SMTPMailer{
		from: conf.SmtpFrom,
	}
	if conf.SmtpHost == "" {
		return m
	}

	m.addr = fmt.Sprintf("%s:%d", conf.SmtpHost, conf.SmtpPort)
	if conf.SmtpUsername != "" {
		m.auth = smtp.PlainAuth("", conf.SmtpUsername, conf.SmtpPassword, conf.SmtpHost)
	}
	return m
}

func (m *SMTPMailer) Enabled() bool {
	return m.addr != ""
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if !m.Enabled() {
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String()))
}
