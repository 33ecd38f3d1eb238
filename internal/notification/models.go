package notification

import "time"

// Notification is one status-change email, kept in memory for the audit
// trail of the current run.
type Notification struct {
	To      string    `json:"to"`      // Recipient email
	Subject string    `json:"subject"` // Email subject
	Body    string    `json:"body"`    // Email body
	SentAt  time.Time `json:"sentAt"`  // When the email was handed to delivery
}
