package email

import (
	"errors"
	"testing"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{
		emails:   s,
		from:     "Grampanchayat <noreply@example.org>",
		adminURL: "https://gp.example.org/admin",
		logger:   &logger,
	}
}

func TestNewClientDisabledWithoutKey(t *testing.T) {
	logger := zerolog.Nop()
	assert.Nil(t, NewClient(&config.Config{}, &logger))
}

func TestRenderPreviewData(t *testing.T) {
	for name, data := range PreviewData {
		html, err := Render(name, data)
		require.NoError(t, err, name)
		assert.Contains(t, html, data["UserEmail"])
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	fake := &fakeSender{}
	c := newTestClient(fake)

	require.NoError(t, c.SendWelcomeEmail("editor@example.org", "editor"))
	require.Len(t, fake.sent, 1)

	sent := fake.sent[0]
	assert.Equal(t, []string{"editor@example.org"}, sent.To)
	assert.Equal(t, "Grampanchayat <noreply@example.org>", sent.From)
	assert.Contains(t, sent.Html, "https://gp.example.org/admin")
	assert.Contains(t, sent.Html, "editor")
}

func TestSendEmailError(t *testing.T) {
	c := newTestClient(&fakeSender{err: errors.New("rate limited")})
	err := c.SendWelcomeEmail("editor@example.org", "viewer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
