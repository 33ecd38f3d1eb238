package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"RequestPortal/internal/config"
	"RequestPortal/internal/store"
)

// Errors surfaced to the user at the point of the failing action.
var (
	// ErrInvalidCredentials covers every login failure so callers cannot
	// tell a wrong password from an unverified or unknown account.
	ErrInvalidCredentials = errors.New("invalid login or email not verified")
	ErrEmailTaken         = errors.New("email already exists")
	ErrSelfDelete         = errors.New("cannot delete the account you are logged in with")
)

// AuthService sends the verification emails for the registration flow.
type AuthService struct {
	EmailService *config.EmailService
}

// NewAuthService creates the email side of the auth flow.
func NewAuthService(emailService *config.EmailService) *AuthService {
	return &AuthService{EmailService: emailService}
}

// SendVerificationEmail emails (or simulates) the verification link.
func (a *AuthService) SendVerificationEmail(email, token string) error {
	subject := "Email Verification"
	body := fmt.Sprintf("Click the link to verify your email: http://localhost:8080/verify-email?token=%s", token)
	return a.EmailService.SendEmail(email, subject, body)
}

// UserService implements registration, verification, login, session resume
// and the admin account operations.
type UserService struct {
	repo        *AccountRepository
	session     *Session
	kv          *store.KV
	authService *AuthService
	validate    *validator.Validate

	// Id of the account loaded into the admin edit form, "" when the form
	// creates instead of updates.
	editing string
}

// NewUserService creates the user service.
func NewUserService(repo *AccountRepository, session *Session, kv *store.KV, authService *AuthService) *UserService {
	return &UserService{
		repo:        repo,
		session:     session,
		kv:          kv,
		authService: authService,
		validate:    validator.New(),
	}
}

// Session exposes the session this service drives.
func (s *UserService) Session() *Session {
	return s.session
}

// Register creates an unverified user account and starts the verification
// flow. The accounts collection is untouched when any check fails.
func (s *UserService) Register(req RegisterRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		return errors.New("fill in first name, last name, email and a password of at least 6 characters")
	}
	if s.repo.EmailExists(req.Email) {
		return ErrEmailTaken
	}

	acc := store.Account{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      store.RoleUser,
		Verified:  false,
	}
	if err := s.repo.Insert(acc); err != nil {
		return err
	}

	if err := s.kv.Set(store.SlotUnverifiedEmail, req.Email); err != nil {
		return err
	}

	token, _ := GenerateVerifyToken(acc.Email, 24*time.Hour)
	return s.authService.SendVerificationEmail(acc.Email, token)
}

// PendingEmail returns the email awaiting verification, if any.
func (s *UserService) PendingEmail() string {
	return s.kv.Get(store.SlotUnverifiedEmail)
}

// Verify marks the matching unverified account as verified and raises the
// one-shot login banner flag.
func (s *UserService) Verify(email string) error {
	acc, ok := s.repo.FindByEmail(email)
	if !ok || acc.Verified {
		return ErrNotFound
	}
	if err := s.repo.Update(acc.ID, func(a *store.Account) {
		a.Verified = true
	}); err != nil {
		return err
	}
	if err := s.kv.Delete(store.SlotUnverifiedEmail); err != nil {
		return err
	}
	s.session.MarkJustVerified()
	return nil
}

// VerifyToken validates a signed verification link token and verifies the
// account it was issued for.
func (s *UserService) VerifyToken(token string) error {
	email, err := ValidateVerifyToken(token)
	if err != nil {
		return errors.New("invalid token")
	}
	return s.Verify(email)
}

// Login authenticates a verified account and establishes the session with a
// durable resume token. Every failure mode returns the same error.
func (s *UserService) Login(cred Credential) (store.Account, error) {
	acc, ok := s.repo.FindByEmail(strings.TrimSpace(cred.Email))
	if !ok || acc.Password != cred.Password || !acc.Verified {
		return store.Account{}, ErrInvalidCredentials
	}
	if err := s.session.establish(acc); err != nil {
		return store.Account{}, err
	}
	return acc, nil
}

// Resume re-establishes the session from the durable token on startup. A
// token referencing a deleted account is cleared.
func (s *UserService) Resume() {
	token := strings.ToLower(s.kv.Get(store.SlotAuthToken))
	if token == "" {
		return
	}
	acc, ok := s.repo.FindByEmail(token)
	if !ok {
		_ = s.kv.Delete(store.SlotAuthToken)
		return
	}
	_ = s.session.establish(acc)
}

// Logout clears the session and the durable token.
func (s *UserService) Logout() {
	s.session.Clear()
}

// UpdateProfile writes the session account's names through to the stored
// record.
func (s *UserService) UpdateProfile(req UpdateProfileRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := s.validate.Struct(req); err != nil {
		return errors.New("fill first and last name")
	}

	acc, ok := s.session.Current()
	if !ok {
		return ErrNotFound
	}
	return s.repo.Update(acc.ID, func(a *store.Account) {
		a.FirstName = req.FirstName
		a.LastName = req.LastName
	})
}

// CreateAccount is the admin path for adding an account directly.
func (s *UserService) CreateAccount(req AccountRequest) (store.Account, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validate.Struct(req); err != nil {
		return store.Account{}, errors.New("fill all account fields; password needs at least 6 characters")
	}
	if s.repo.EmailExists(req.Email) {
		return store.Account{}, ErrEmailTaken
	}

	acc := store.Account{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Verified:  req.Verified,
	}
	if err := s.repo.Insert(acc); err != nil {
		return store.Account{}, err
	}
	return acc, nil
}

// UpdateAccount is the admin path for editing an account. The email stays
// unique case-insensitively.
func (s *UserService) UpdateAccount(id string, req AccountRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validate.Struct(req); err != nil {
		return errors.New("fill all account fields; password needs at least 6 characters")
	}
	if existing, ok := s.repo.FindByEmail(req.Email); ok && existing.ID != id {
		return ErrEmailTaken
	}
	return s.repo.Update(id, func(a *store.Account) {
		a.FirstName = req.FirstName
		a.LastName = req.LastName
		a.Email = req.Email
		a.Password = req.Password
		a.Role = req.Role
		a.Verified = req.Verified
	})
}

// ResetPassword is the admin path for setting a new password.
func (s *UserService) ResetPassword(id string, req ResetPasswordRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return errors.New("password must be at least 6 characters")
	}
	return s.repo.Update(id, func(a *store.Account) {
		a.Password = req.Password
	})
}

// DeleteAccount removes an account. Deleting the account backing the active
// session is rejected.
func (s *UserService) DeleteAccount(id string) error {
	if current, ok := s.session.Current(); ok && current.ID == id {
		return ErrSelfDelete
	}
	if s.editing == id {
		s.editing = ""
	}
	return s.repo.Delete(id)
}

// BeginEditAccount loads an account into the admin edit form.
func (s *UserService) BeginEditAccount(id string) (store.Account, error) {
	acc, ok := s.repo.FindByID(id)
	if !ok {
		return store.Account{}, ErrNotFound
	}
	s.editing = id
	return acc, nil
}

// CancelEdit clears the admin edit form.
func (s *UserService) CancelEdit() {
	s.editing = ""
}

// SubmitAccount updates the account being edited, or creates a new one when
// no edit is in progress, then clears the edit state.
func (s *UserService) SubmitAccount(req AccountRequest) error {
	if s.editing == "" {
		_, err := s.CreateAccount(req)
		return err
	}
	id := s.editing
	s.editing = ""
	return s.UpdateAccount(id, req)
}
