package users

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/urbangis/server/internal/auth"
)

type fakeRepo struct {
	byEmail map[string]User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]User{}}
}

func (f *fakeRepo) Create(_ context.Context, name, email, passwordHash, role string) (User, error) {
	if _, exists := f.byEmail[email]; exists {
		return User{}, ErrEmailTaken
	}
	f.nextID++
	user := User{
		ID:           string(rune('0' + f.nextID)),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
	}
	f.byEmail[email] = user
	return user, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func newTestService(t *testing.T) (*Service, *auth.JWTManager) {
	t.Helper()
	tokens := auth.NewJWTManager("test-secret", time.Hour, "test")
	return NewService(newFakeRepo(), tokens, zerolog.Nop()), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, tokens := newTestService(t)

	user, token, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Enda",
		Email:    "enda@test.com",
		Password: "123456",
	})
	require.NoError(t, err)
	require.Equal(t, "user", user.Role, "role defaults to user")
	require.NotEmpty(t, token)

	loggedIn, loginToken, err := svc.Login(context.Background(), "enda@test.com", "123456")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	claims, err := tokens.Validate(loginToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, user.Role, claims.Role)
	require.Equal(t, user.Email, claims.Email)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	for name, input := range map[string]RegisterInput{
		"no name":     {Email: "a@test.com", Password: "pw"},
		"no email":    {Name: "A", Password: "pw"},
		"no password": {Name: "A", Email: "a@test.com"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), input)
			require.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	input := RegisterInput{Name: "Enda", Email: "enda@test.com", Password: "123456"}

	_, _, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), input)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterExplicitRole(t *testing.T) {
	svc, _ := newTestService(t)

	user, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Org",
		Email:    "org@test.com",
		Password: "123456",
		Role:     "organizer",
	})
	require.NoError(t, err)
	require.Equal(t, "organizer", user.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Enda",
		Email:    "enda@test.com",
		Password: "123456",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "enda@test.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@test.com", "123456")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
