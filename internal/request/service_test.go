package request

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RequestPortal/internal/auth"
	"RequestPortal/internal/config"
	"RequestPortal/internal/notification"
	"RequestPortal/internal/store"
)

type testEnv struct {
	users    *auth.UserService
	requests *RequestService
	notifier *notification.NotificationService
	store    *store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := store.New(fs, "data")
	require.NoError(t, err)
	kv := store.NewKV(fs, "data")
	repo := auth.NewAccountRepository(s)
	session := auth.NewSession(repo, kv)
	email := &config.EmailService{Config: &config.ResendConfig{}}
	users := auth.NewUserService(repo, session, kv, auth.NewAuthService(email))
	notifier := notification.NewNotificationService(email)
	requests := NewRequestService(NewRequestRepository(s), session, notifier)
	return &testEnv{users: users, requests: requests, notifier: notifier, store: s}
}

func (e *testEnv) loginAs(t *testing.T, email, password string) {
	t.Helper()
	_, err := e.users.Login(auth.Credential{Email: email, Password: password})
	require.NoError(t, err)
}

func (e *testEnv) registerVerified(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, e.users.Register(auth.RegisterRequest{
		FirstName: "Jane", LastName: "Doe", Email: email, Password: "secret1",
	}))
	require.NoError(t, e.users.Verify(email))
}

func TestCreateRequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.requests.Create(CreateRequest{
		Items: []ItemInput{{Name: "Laptop", Qty: 2}},
	})
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, env.store.Snapshot().Requests)
}

func TestCreateSetsOwnerAndDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.registerVerified(t, "jane@x.com")
	env.loginAs(t, "jane@x.com", "secret1")

	rec, err := env.requests.Create(CreateRequest{
		Items: []ItemInput{{Name: "Laptop", Qty: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", rec.EmployeeEmail)
	assert.Equal(t, store.StatusPending, rec.Status)
	assert.Equal(t, "Equipment", rec.Type, "empty type defaults")
	assert.Equal(t, []store.RequestItem{{Name: "Laptop", Qty: 2}}, rec.Items)
	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.Date)

	// Persisted immediately.
	assert.Len(t, env.store.Snapshot().Requests, 1)
}

func TestCreateDropsBlankItemLines(t *testing.T) {
	env := newTestEnv(t)
	env.registerVerified(t, "jane@x.com")
	env.loginAs(t, "jane@x.com", "secret1")

	rec, err := env.requests.Create(CreateRequest{
		Type: "Supplies",
		Items: []ItemInput{
			{Name: "", Qty: 3},
			{Name: "Pens", Qty: 0},
			{Name: "Paper", Qty: 5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []store.RequestItem{{Name: "Paper", Qty: 5}}, rec.Items)

	_, err = env.requests.Create(CreateRequest{
		Items: []ItemInput{{Name: "", Qty: 1}, {Name: "x", Qty: -2}},
	})
	require.ErrorIs(t, err, ErrNoItems)
	assert.Len(t, env.store.Snapshot().Requests, 1)
}

func TestMineFiltersByOwner(t *testing.T) {
	env := newTestEnv(t)
	env.registerVerified(t, "jane@x.com")

	env.loginAs(t, "jane@x.com", "secret1")
	_, err := env.requests.Create(CreateRequest{Items: []ItemInput{{Name: "Laptop", Qty: 2}}})
	require.NoError(t, err)

	env.loginAs(t, "admin@example.com", "Password123!")
	_, err = env.requests.Create(CreateRequest{Items: []ItemInput{{Name: "Chair", Qty: 1}}})
	require.NoError(t, err)

	mine := env.requests.Mine()
	require.Len(t, mine, 1)
	assert.Equal(t, "admin@example.com", mine[0].EmployeeEmail)

	env.loginAs(t, "jane@x.com", "secret1")
	mine = env.requests.Mine()
	require.Len(t, mine, 1)
	assert.Equal(t, "jane@x.com", mine[0].EmployeeEmail)

	assert.Len(t, env.requests.All(), 2)
}

func TestSetStatusTransitionsAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	env.registerVerified(t, "jane@x.com")
	env.loginAs(t, "jane@x.com", "secret1")

	rec, err := env.requests.Create(CreateRequest{Items: []ItemInput{{Name: "Laptop", Qty: 2}}})
	require.NoError(t, err)

	require.NoError(t, env.requests.SetStatus(rec.ID, StatusRequest{Status: store.StatusApproved}))

	updated, ok := NewRequestRepository(env.store).FindByID(rec.ID)
	require.True(t, ok)
	assert.Equal(t, store.StatusApproved, updated.Status)
	// The owner is untouched by a status change.
	assert.Equal(t, "jane@x.com", updated.EmployeeEmail)

	sent := env.notifier.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "jane@x.com", sent[0].To)

	require.ErrorIs(t, env.requests.SetStatus(rec.ID, StatusRequest{Status: "Maybe"}), ErrInvalidStatus)
	require.ErrorIs(t, env.requests.SetStatus("missing", StatusRequest{Status: store.StatusRejected}), ErrNotFound)
}
