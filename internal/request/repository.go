package request

import (
	"errors"

	"RequestPortal/internal/store"
)

// ErrNotFound is returned when a referenced request does not exist.
var ErrNotFound = errors.New("request not found")

// RequestRepository handles item-request reads and writes against the store
// document.
type RequestRepository struct {
	store *store.Store
}

// NewRequestRepository creates a new repository over the portal store.
func NewRequestRepository(s *store.Store) *RequestRepository {
	return &RequestRepository{store: s}
}

// All returns a copy of the requests collection in submission order.
func (r *RequestRepository) All() []store.Request {
	var out []store.Request
	r.store.View(func(d *store.Document) {
		out = make([]store.Request, len(d.Requests))
		for i, req := range d.Requests {
			req.Items = append([]store.RequestItem{}, req.Items...)
			out[i] = req
		}
	})
	return out
}

// ByOwner returns the requests owned by the given email, in submission order.
func (r *RequestRepository) ByOwner(email string) []store.Request {
	var out []store.Request
	for _, req := range r.All() {
		if req.EmployeeEmail == email {
			out = append(out, req)
		}
	}
	return out
}

// FindByID returns the request with the given id.
func (r *RequestRepository) FindByID(id string) (store.Request, bool) {
	var found store.Request
	var ok bool
	r.store.View(func(d *store.Document) {
		for _, req := range d.Requests {
			if req.ID == id {
				found = req
				found.Items = append([]store.RequestItem{}, req.Items...)
				ok = true
				return
			}
		}
	})
	return found, ok
}

// Insert appends a new request and persists the document.
func (r *RequestRepository) Insert(req store.Request) error {
	return r.store.Mutate(func(d *store.Document) error {
		d.Requests = append(d.Requests, req)
		return nil
	})
}

// UpdateStatus sets the status of the request with the given id and persists
// the document. Ownership and items are never touched here.
func (r *RequestRepository) UpdateStatus(id, status string) error {
	return r.store.Mutate(func(d *store.Document) error {
		for i := range d.Requests {
			if d.Requests[i].ID == id {
				d.Requests[i].Status = status
				return nil
			}
		}
		return ErrNotFound
	})
}
