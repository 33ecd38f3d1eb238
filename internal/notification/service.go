package notification

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"RequestPortal/internal/config"
	"RequestPortal/internal/store"
)

// NotificationService emails request owners when an admin changes their
// request's status.
type NotificationService struct {
	emailService *config.EmailService
	sent         []Notification
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(emailService *config.EmailService) *NotificationService {
	return &NotificationService{emailService: emailService}
}

// RequestStatusChanged notifies the owner of a request about its new status.
// Delivery failure is logged, never surfaced: the status change itself has
// already been persisted.
func (s *NotificationService) RequestStatusChanged(req store.Request, status string) {
	n := Notification{
		To:      req.EmployeeEmail,
		Subject: fmt.Sprintf("Your %s request was %s", req.Type, status),
		Body: fmt.Sprintf("Your request submitted on %s is now %s.",
			req.Date, status),
		SentAt: time.Now(),
	}
	s.sent = append(s.sent, n)

	if err := s.emailService.SendEmail(n.To, n.Subject, n.Body); err != nil {
		log.Error("failed to send status notification", "to", n.To, "err", err)
	}
}

// Sent returns the notifications handed to delivery during this run.
func (s *NotificationService) Sent() []Notification {
	return append([]Notification{}, s.sent...)
}
