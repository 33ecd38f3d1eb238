package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/fx"
)

// ResendConfig holds the credentials for the resend email API. All fields
// empty means email delivery is simulated.
type ResendConfig struct {
	APIKey string
	APIURL string
	From   string
}

// NewResendConfig reads the email delivery settings from the environment.
// The portal is a local demo, so missing settings select simulated delivery
// instead of failing startup.
func NewResendConfig() *ResendConfig {
	return &ResendConfig{
		APIKey: os.Getenv("RESEND_API_KEY"),
		APIURL: os.Getenv("RESEND_API_URL"),
		From:   os.Getenv("FROM_EMAIL"),
	}
}

// Configured reports whether real delivery is possible.
func (c *ResendConfig) Configured() bool {
	return c.APIKey != "" && c.APIURL != "" && c.From != ""
}

// EmailRequest is the resend API payload.
type EmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

// EmailService sends portal emails, or logs them when delivery is not
// configured.
type EmailService struct {
	Config *ResendConfig
}

// NewEmailService creates the email service.
func NewEmailService(lc fx.Lifecycle, config *ResendConfig) *EmailService {
	service := &EmailService{Config: config}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if config.Configured() {
				log.Info("email service initialized", "from", config.From)
			} else {
				log.Info("email delivery not configured, simulating sends")
			}
			return nil
		},
	})
	return service
}

// SendEmail delivers one email through the resend API, or logs it when the
// API is not configured.
func (e *EmailService) SendEmail(to, subject, body string) error {
	if !e.Config.Configured() {
		log.Info("simulated email", "to", to, "subject", subject, "body", body)
		return nil
	}

	payload := EmailRequest{
		From:    e.Config.From,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", e.Config.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+e.Config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errorResponse map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorResponse)
		return fmt.Errorf("failed to send email, status code: %d, error: %v", resp.StatusCode, errorResponse)
	}

	log.Info("email sent", "to", to)
	return nil
}
