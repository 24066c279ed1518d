package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
)

const mailSendEndpoint = "https://api.sendgrid.com/v3/mail/send"

// ErrNotConfigured is returned when the mailer lacks an API key or a
// recipient address. No network call is attempted in that case.
var ErrNotConfigured = errors.New("email delivery is not configured")

// Mailer delivers briefings through the SendGrid v3 Mail Send API.
type Mailer struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	fromEmail  string
	fromName   string
	recipient  string
	logger     ports.Logger
}

var _ ports.Notifier = (*Mailer)(nil)

// NewMailer creates a SendGrid mailer for a single static recipient.
func NewMailer(apiKey, fromEmail, fromName, recipient string, timeout time.Duration, logger ports.Logger) *Mailer {
	return &Mailer{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   mailSendEndpoint,
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		recipient:  recipient,
		logger:     logger,
	}
}

// Send renders the briefing as HTML and submits one transactional
// email. Running twice sends twice; there is no dedup.
func (m *Mailer) Send(ctx context.Context, briefing model.Briefing) error {
	if m.apiKey == "" || m.recipient == "" {
		return ErrNotConfigured
	}

	htmlBody, err := renderHTML(briefing)
	if err != nil {
		return fmt.Errorf("render briefing: %w", err)
	}

	payload := mailPayload{
		Personalizations: []personalization{{
			To: []address{{Email: m.recipient}},
		}},
		From:    address{Email: m.fromEmail, Name: m.fromName},
		Subject: fmt.Sprintf("Your %s Briefing for Today", briefing.Topic),
		Content: []content{
			{Type: "text/plain", Value: plainText(htmlBody)},
			{Type: "text/html", Value: htmlBody},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sendgrid payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if m.logger != nil {
		m.logger.Info(ctx, "briefing email sent", "recipient", m.recipient, "status", resp.StatusCode)
	}
	return nil
}

// SendGrid v3 Mail Send API payload types.
type mailPayload struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
