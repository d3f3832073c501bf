// Package email sends transactional email through Resend.
//
// Bodies are rendered from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"fmt"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// sender is the part of the Resend emails service used by Client.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	emails   sender
	from     string
	adminURL string
	logger   *zerolog.Logger
}

// NewClient creates an email Client, or returns nil when no Resend API key
// is configured.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	if cfg.Integration.ResendAPIKey == "" {
		return nil
	}
	return &Client{
		emails:   resend.NewClient(cfg.Integration.ResendAPIKey).Emails,
		from:     cfg.Integration.EmailFrom,
		adminURL: cfg.Integration.AdminURL,
		logger:   logger,
	}
}

// Render executes templateName with data.
func Render(templateName Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName.file(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	resp, err := c.emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info().
		Str("template", string(templateName)).
		Str("email_id", resp.Id).
		Msg("email sent")
	return nil
}
