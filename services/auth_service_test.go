package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: " alice ",
		Email:    "alice@example.com",
		Name:     strPtr("Alice"),
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	stored, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)

	loggedIn, err := svc.Login(ctx, LoginInput{Email: "ALICE@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	_, err = svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register(ctx, RegisterInput{Username: "bo", Email: "bob@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Email: "not-an-email", Password: "long enough"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "long enough"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "bobby", Email: "bob@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ErrUserEmailConflict)

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Email: "robert@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ErrUserUsernameConflict)
}

func TestAuthService_RegisterRejectsLongPassword(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "carol", Email: "carol@example.com", Password: strings.Repeat("a", 73)})
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// 24 three-byte runes are 72 bytes.
	_, err = svc.Register(ctx, RegisterInput{Username: "carol", Email: "carol@example.com", Password: strings.Repeat("€", 25)})
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = svc.Register(ctx, RegisterInput{Username: "carol", Email: "carol@example.com", Password: strings.Repeat("€", 24)})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "carol@example.com", Password: strings.Repeat("€", 24)})
	assert.NoError(t, err)
}

func TestAuthService_EmailCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Username: "bob", Email: " Bob@Example.COM ", Password: "long enough"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)

	_, err = svc.Register(ctx, RegisterInput{Username: "bobby", Email: "bob@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ErrUserEmailConflict)

	loggedIn, err := svc.Login(ctx, LoginInput{Email: "BOB@example.com", Password: "long enough"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}
