package auth

import (
	"errors"
	"strings"

	"RequestPortal/internal/store"
)

// ErrNotFound is returned when a referenced account does not exist.
var ErrNotFound = errors.New("account not found")

// AccountRepository handles account lookups and writes against the store
// document.
type AccountRepository struct {
	store *store.Store
}

// NewAccountRepository creates a new repository over the portal store.
func NewAccountRepository(s *store.Store) *AccountRepository {
	return &AccountRepository{store: s}
}

// FindByEmail returns the account whose email matches case-insensitively.
func (r *AccountRepository) FindByEmail(email string) (store.Account, bool) {
	var found store.Account
	var ok bool
	lower := strings.ToLower(email)
	r.store.View(func(d *store.Document) {
		for _, a := range d.Accounts {
			if strings.ToLower(a.Email) == lower {
				found = a
				ok = true
				return
			}
		}
	})
	return found, ok
}

// FindByID returns the account with the given id.
func (r *AccountRepository) FindByID(id string) (store.Account, bool) {
	var found store.Account
	var ok bool
	r.store.View(func(d *store.Document) {
		for _, a := range d.Accounts {
			if a.ID == id {
				found = a
				ok = true
				return
			}
		}
	})
	return found, ok
}

// EmailExists reports whether any account uses the email, compared
// case-insensitively.
func (r *AccountRepository) EmailExists(email string) bool {
	_, ok := r.FindByEmail(email)
	return ok
}

// Insert appends a new account and persists the document.
func (r *AccountRepository) Insert(acc store.Account) error {
	return r.store.Mutate(func(d *store.Document) error {
		d.Accounts = append(d.Accounts, acc)
		return nil
	})
}

// Update mutates the stored account with the given id in place and persists
// the document. The callback receives the stored record, never a copy.
func (r *AccountRepository) Update(id string, fn func(a *store.Account)) error {
	return r.store.Mutate(func(d *store.Document) error {
		for i := range d.Accounts {
			if d.Accounts[i].ID == id {
				fn(&d.Accounts[i])
				return nil
			}
		}
		return ErrNotFound
	})
}

// Delete removes the account with the given id and persists the document.
func (r *AccountRepository) Delete(id string) error {
	return r.store.Mutate(func(d *store.Document) error {
		for i := range d.Accounts {
			if d.Accounts[i].ID == id {
				d.Accounts = append(d.Accounts[:i], d.Accounts[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// All returns a copy of the accounts collection.
func (r *AccountRepository) All() []store.Account {
	var out []store.Account
	r.store.View(func(d *store.Document) {
		out = append([]store.Account{}, d.Accounts...)
	})
	return out
}
