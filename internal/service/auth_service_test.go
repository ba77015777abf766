package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-directory/internal/config"
	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/repository"
)

type fakeAccountRepo struct {
	byEmail map[string]*domain.Account
	nextID  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.nextID++
	account.ID = "acct-" + strconv.Itoa(r.nextID)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	copied := *account
	r.byEmail[account.Email] = &copied
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *domain.Account) error {
	for email, existing := range r.byEmail {
		if existing.ID == account.ID {
			copied := *account
			r.byEmail[email] = &copied
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	for _, account := range r.byEmail {
		if account.ID == id {
			copied := *account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	if account, ok := r.byEmail[email]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeResetRepo struct {
	tokens map[string]*repository.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]*repository.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	token.ID = "reset-" + strconv.Itoa(len(r.tokens)+1)
	token.CreatedAt = time.Now()
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	if token, ok := r.tokens[tokenStr]; ok {
		copied := *token
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, id string) error {
	now := time.Now()
	for _, token := range r.tokens {
		if token.ID == id {
			token.UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   5,
			PasswordResetTTLMinutes: 5,
			BcryptCost:              4,
			EditorEmails:            []string{"editor@school.edu"},
		},
	}
}

func newTestAuthService() (*AuthService, *fakeAccountRepo, events.Dispatcher) {
	accounts := newFakeAccountRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAuthService(testConfig(), AuthDependencies{
		AccountRepo:       accounts,
		PasswordResetRepo: newFakeResetRepo(),
		Dispatcher:        dispatcher,
	})
	return svc, accounts, dispatcher
}

func TestRegisterGrantsEditorRoleFromAllowlist(t *testing.T) {
	svc, _, _ := newTestAuthService()

	editor, token, _, err := svc.Register(context.Background(), "Edna", "Editor@School.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountRoleEditor, editor.Role)
	assert.True(t, editor.Editor())
	assert.NotEmpty(t, token)

	viewer, _, _, err := svc.Register(context.Background(), "Vik", "vik@school.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountRoleViewer, viewer.Role)
	assert.False(t, viewer.Editor())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, _, err := svc.Register(context.Background(), "Amy", "amy@school.edu", "secret123")
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "Amy Again", "amy@school.edu", "secret123")
	assert.EqualError(t, err, "email already registered")
}

func TestRegisterPublishesAccountRegistered(t *testing.T) {
	accounts := newFakeAccountRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var payloads []events.AccountRegisteredPayload
	dispatcher.Subscribe(events.EventAccountRegistered, func(_ context.Context, event events.Event) error {
		payloads = append(payloads, event.Payload.(events.AccountRegisteredPayload))
		return nil
	})

	svc := NewAuthService(testConfig(), AuthDependencies{
		AccountRepo:       accounts,
		PasswordResetRepo: newFakeResetRepo(),
		Dispatcher:        dispatcher,
	})

	_, _, _, err := svc.Register(context.Background(), "Edna", "editor@school.edu", "secret123")
	require.NoError(t, err)

	require.Len(t, payloads, 1)
	assert.Equal(t, "editor@school.edu", payloads[0].Email)
	assert.True(t, payloads[0].Editor)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	_, _, _, err := svc.Register(context.Background(), "Amy", "amy@school.edu", "secret123")
	require.NoError(t, err)

	account, token, exp, err := svc.Login(context.Background(), "amy@school.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "amy@school.edu", account.Email)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	_, _, _, err = svc.Login(context.Background(), "amy@school.edu", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, _, _, err = svc.Login(context.Background(), "nobody@school.edu", "secret123")
	assert.EqualError(t, err, "invalid credentials")
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, _ := newTestAuthService()
	_, _, _, err := svc.Register(context.Background(), "Amy", "amy@school.edu", "secret123")
	require.NoError(t, err)

	token, err := svc.RequestPasswordReset(context.Background(), "amy@school.edu")
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), token.Token, "newpass456"))

	_, _, _, err = svc.Login(context.Background(), "amy@school.edu", "newpass456")
	assert.NoError(t, err)

	// A token is single-use.
	err = svc.ConfirmPasswordReset(context.Background(), token.Token, "again789")
	assert.EqualError(t, err, "token expired or used")
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	account, _, _, err := svc.Register(context.Background(), "Amy", "amy@school.edu", "secret123")
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), account.ID, "wrong", "newpass456")
	assert.EqualError(t, err, "invalid credentials")

	require.NoError(t, svc.ChangePassword(context.Background(), account.ID, "secret123", "newpass456"))
	_, _, _, err = svc.Login(context.Background(), "amy@school.edu", "newpass456")
	assert.NoError(t, err)
}
