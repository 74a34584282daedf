package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelez/portfolio-backend/config"
	"github.com/avelez/portfolio-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Notifier emails the site owner about new contact messages via the Resend
// API. When Resend is not configured it degrades to a logged no-op, so the
// contact pipeline works without any email setup.
type Notifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

// NewNotifier builds a Notifier from configuration. Required keys:
// RESEND_API_KEY, RESEND_FROM_EMAIL, CONTACT_NOTIFY_EMAIL.
func NewNotifier(c map[string]string) *Notifier {
	return &Notifier{
		apiKey:    config.GetString(c, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(c, "RESEND_FROM_EMAIL", ""),
		toEmail:   config.GetString(c, "CONTACT_NOTIFY_EMAIL", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (n *Notifier) configured() bool {
	return n.apiKey != "" && n.fromEmail != "" && n.toEmail != ""
}

// NotifyNewMessage sends the site owner an email about a saved contact
// message.
func (n *Notifier) NotifyNewMessage(message *models.Message) error {
	if !n.configured() {
		log.Info().
			Str("sender", message.SenderEmail).
			Str("subject", message.Subject).
			Msg("Resend not configured, skipping contact notification")
		return nil
	}

	subject := fmt.Sprintf("New Contact Form Message: %s", message.Subject)
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(message.SenderName),
		html.EscapeString(message.SenderEmail),
		html.EscapeString(message.Subject),
		html.EscapeString(message.MessageContent),
	)

	return n.sendEmail(subject, body, []string{n.toEmail})
}

// sendEmail delivers one email through the Resend HTTP API.
func (n *Notifier) sendEmail(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
