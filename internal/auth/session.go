package auth

import (
	"RequestPortal/internal/store"
)

// Session is the single currently-authenticated account, held by id so every
// read resolves to the stored record rather than a detached copy. It also
// carries the one-shot just-verified flag shown once on the login page.
type Session struct {
	repo *AccountRepository
	kv   *store.KV

	accountID    string
	justVerified bool
}

// NewSession creates an empty session.
func NewSession(repo *AccountRepository, kv *store.KV) *Session {
	return &Session{repo: repo, kv: kv}
}

// Current resolves the session's account from the store. A session whose
// account was deleted behaves as logged out.
func (s *Session) Current() (store.Account, bool) {
	if s.accountID == "" {
		return store.Account{}, false
	}
	return s.repo.FindByID(s.accountID)
}

// IsAuthenticated reports whether a stored account backs the session.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// IsAdmin reports whether the session account has the admin role.
func (s *Session) IsAdmin() bool {
	acc, ok := s.Current()
	return ok && acc.Role == store.RoleAdmin
}

// establish binds the session to an account and writes the durable resume
// token.
func (s *Session) establish(acc store.Account) error {
	s.accountID = acc.ID
	return s.kv.Set(store.SlotAuthToken, acc.Email)
}

// Clear logs the session out and removes the durable token.
func (s *Session) Clear() {
	s.accountID = ""
	_ = s.kv.Delete(store.SlotAuthToken)
}

// MarkJustVerified raises the one-shot verification banner flag.
func (s *Session) MarkJustVerified() {
	s.justVerified = true
}

// ConsumeJustVerified reads and clears the verification banner flag.
func (s *Session) ConsumeJustVerified() bool {
	v := s.justVerified
	s.justVerified = false
	return v
}
