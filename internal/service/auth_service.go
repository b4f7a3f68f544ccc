package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tally-service/internal/models"
	"tally-service/internal/repository"
	"tally-service/pkg/response"
)

type AuthService struct {
	credentials repository.CredentialRepository
	users       repository.UserRepository
	jwtSecret   string
	jwtExpire   time.Duration
}

func NewAuthService(credentials repository.CredentialRepository, users repository.UserRepository, secret string, expire time.Duration) *AuthService {
	return &AuthService{
		credentials: credentials,
		users:       users,
		jwtSecret:   secret,
		jwtExpire:   expire,
	}
}

// Login verifies the credential and resolves the profile. A credential whose
// profile is missing or disabled is rejected the same way as a bad password:
// the caller learns nothing beyond "unauthenticated".
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	cred, err := s.credentials.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", response.ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", response.ErrUnauthenticated)
	}

	user, err := s.ResolveUser(ctx, cred.ID)
	if err != nil {
		return nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.jwtExpire).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("%w: sign token: %v", response.ErrInternal, err)
	}

	return &models.LoginResponse{Token: tokenString, User: user}, nil
}

// ResolveUser is the role resolver: identity id in, profile out. No profile
// or a disabled one degrades to unauthenticated rather than erroring hard, so
// the caller's session is simply invalidated.
func (s *AuthService) ResolveUser(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: no profile for identity", response.ErrUnauthenticated)
	}
	if user.Disabled {
		return nil, fmt.Errorf("%w: account disabled", response.ErrUnauthenticated)
	}
	return user, nil
}
