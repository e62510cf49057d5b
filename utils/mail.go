package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/Kariqs/vkusnyashka/initializers"
)

type EmailData struct {
	Name      string
	Message   string
	ActionURL string
	SiteURL   string
}

// SMTPMailer sends HTML mail rendered from a template file.
type SMTPMailer struct {
	From     string
	Password string
	Host     string
	Address  string
}

func NewSMTPMailer(cfg initializers.Config) *SMTPMailer {
	return &SMTPMailer{
		From:     cfg.FromEmail,
		Password: cfg.FromEmailPassword,
		Host:     cfg.FromEmailSMTP,
		Address:  cfg.SMTPAddress,
	}
}

// RenderEmail executes the template at templatePath with data.
func RenderEmail(templatePath string, data EmailData) (string, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

func (m *SMTPMailer) SendEmail(emailTo string, emailSubject string, data EmailData, templatePath string) error {
	body, err := RenderEmail(templatePath, data)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.From,
		emailTo,
		emailSubject,
		body,
	)

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)
	if err := smtp.SendMail(m.Address, auth, m.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
