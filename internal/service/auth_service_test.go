package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tally-service/internal/models"
	"tally-service/pkg/response"
)

const testSecret = "unit-test-secret"

func newAuthFixture(t *testing.T) (*AuthService, *fakeCredentialRepo, *fakeUserRepo) {
	t.Helper()
	creds := newFakeCredentialRepo()
	users := newFakeUserRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	creds.creds["uid-1"] = &models.Credential{
		ID:           "uid-1",
		Email:        "agent@tally.local",
		PasswordHash: string(hash),
	}
	users.users["uid-1"] = &models.User{
		ID:    "uid-1",
		Email: "agent@tally.local",
		Role:  models.RoleAgent,
	}

	return NewAuthService(creds, users, testSecret, time.Hour), creds, users
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "agent@tally.local",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", resp.User.ID)
	assert.Equal(t, models.RoleAgent, resp.User.Role)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "uid-1", claims["sub"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "agent@tally.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, response.ErrUnauthenticated)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@tally.local",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, response.ErrUnauthenticated)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, _, users := newAuthFixture(t)
	users.users["uid-1"].Disabled = true

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "agent@tally.local",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, response.ErrUnauthenticated)
}

func TestResolveUserMissingProfile(t *testing.T) {
	svc, _, users := newAuthFixture(t)
	// A credential with no matching profile row is a half-created account; it
	// must look like an ordinary auth failure, not an internal error.
	delete(users.users, "uid-1")

	_, err := svc.ResolveUser(context.Background(), "uid-1")
	assert.ErrorIs(t, err, response.ErrUnauthenticated)
}
