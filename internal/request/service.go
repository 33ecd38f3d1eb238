package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"RequestPortal/internal/auth"
	"RequestPortal/internal/notification"
	"RequestPortal/internal/store"
)

// Errors surfaced to the user at the point of the failing action.
var (
	ErrNoItems       = errors.New("add at least one item")
	ErrNotLoggedIn   = errors.New("log in to submit a request")
	ErrInvalidStatus = errors.New("status must be Pending, Approved or Rejected")
)

// ItemInput is one line of the request form.
type ItemInput struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// CreateRequest carries the request form.
type CreateRequest struct {
	Type  string      `json:"type"`
	Items []ItemInput `json:"items"`
}

// StatusRequest carries an admin status transition.
type StatusRequest struct {
	Status string `json:"status"`
}

// RequestService implements item-request submission and the admin status
// transitions.
type RequestService struct {
	repo     *RequestRepository
	session  *auth.Session
	notifier *notification.NotificationService
}

// NewRequestService creates the request service.
func NewRequestService(repo *RequestRepository, session *auth.Session, notifier *notification.NotificationService) *RequestService {
	return &RequestService{repo: repo, session: session, notifier: notifier}
}

// Create submits a request owned by the session account. Item lines with an
// empty name or non-positive quantity are dropped; at least one line must
// survive. The owner email is fixed at creation and never changes.
func (s *RequestService) Create(req CreateRequest) (store.Request, error) {
	acc, ok := s.session.Current()
	if !ok {
		return store.Request{}, ErrNotLoggedIn
	}

	reqType := strings.TrimSpace(req.Type)
	if reqType == "" {
		reqType = "Equipment"
	}

	items := make([]store.RequestItem, 0, len(req.Items))
	for _, in := range req.Items {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Qty <= 0 {
			continue
		}
		items = append(items, store.RequestItem{Name: name, Qty: in.Qty})
	}
	if len(items) == 0 {
		return store.Request{}, ErrNoItems
	}

	rec := store.Request{
		ID:            uuid.NewString(),
		EmployeeEmail: acc.Email,
		Date:          time.Now().Format("1/2/2006"),
		Type:          reqType,
		Items:         items,
		Status:        store.StatusPending,
	}
	if err := s.repo.Insert(rec); err != nil {
		return store.Request{}, err
	}
	return rec, nil
}

// Mine returns the requests owned by the session account.
func (s *RequestService) Mine() []store.Request {
	acc, ok := s.session.Current()
	if !ok {
		return nil
	}
	return s.repo.ByOwner(acc.Email)
}

// All returns every request, for the admin view.
func (s *RequestService) All() []store.Request {
	return s.repo.All()
}

// SetStatus is the admin capability for approving or rejecting a request.
// The owner is notified after the new status is persisted.
func (s *RequestService) SetStatus(id string, req StatusRequest) error {
	switch req.Status {
	case store.StatusPending, store.StatusApproved, store.StatusRejected:
	default:
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(id, req.Status); err != nil {
		return err
	}
	if rec, ok := s.repo.FindByID(id); ok && s.notifier != nil {
		s.notifier.RequestStatusChanged(rec, req.Status)
	}
	return nil
}
