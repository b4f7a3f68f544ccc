package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tally-service/internal/models"
	"tally-service/internal/repository"
	"tally-service/pkg/response"
)

type UserService struct {
	credentials repository.CredentialRepository
	users       repository.UserRepository
}

func NewUserService(credentials repository.CredentialRepository, users repository.UserRepository) *UserService {
	return &UserService{credentials: credentials, users: users}
}

// CreateUser is the privileged creation operation. The caller's role comes
// from a fresh profile read, never from the token. Two-phase: the credential
// insert and the profile insert are separate writes, and a failed profile
// write deletes the credential again so no role-less login is left behind.
func (s *UserService) CreateUser(ctx context.Context, caller *models.User, req models.CreateUserRequest) (*models.CreateUserResponse, error) {
	if caller == nil {
		return nil, fmt.Errorf("%w: login required", response.ErrUnauthenticated)
	}
	if caller.Role != models.RoleAdmin && caller.Role != models.RoleSuperadmin {
		return nil, fmt.Errorf("%w: must be admin or superadmin", response.ErrPermissionDenied)
	}

	if req.Role != models.RoleAgent && req.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: role must be 'agent' or 'admin'", response.ErrInvalidArgument)
	}
	if caller.Role == models.RoleAdmin && req.Role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: admins cannot create another admin", response.ErrPermissionDenied)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", response.ErrInternal, err)
	}

	cred := &models.Credential{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.credentials.Create(ctx, cred); err != nil {
		return nil, fmt.Errorf("%w: create credential: %v", response.ErrInternal, err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = strings.SplitN(req.Email, "@", 2)[0]
	}

	user := &models.User{
		ID:          cred.ID,
		Email:       req.Email,
		DisplayName: displayName,
		Role:        req.Role,
		Disabled:    false,
		District:    req.District,
		Subcounty:   req.Subcounty,
		Parish:      req.Parish,
		Village:     req.Village,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Compensating delete: an orphaned credential would be a role-less
		// login the role resolver can never admit.
		if delErr := s.credentials.Delete(ctx, cred.ID); delErr != nil {
			slog.Error("credential rollback failed", "uid", cred.ID, "error", delErr)
		}
		return nil, fmt.Errorf("%w: write user record: %v", response.ErrInternal, err)
	}

	return &models.CreateUserResponse{UID: cred.ID}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// UpdateUser applies admin-side mutations. Admin callers may not touch admin
// or superadmin targets; nobody escalates a target to superadmin.
func (s *UserService) UpdateUser(ctx context.Context, caller *models.User, id string, req models.UpdateUserRequest) (*models.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", response.ErrNotFound, id)
	}

	if caller.Role == models.RoleAdmin && target.Role != models.RoleAgent {
		return nil, fmt.Errorf("%w: admins may only manage agents", response.ErrPermissionDenied)
	}

	if req.Role != nil {
		if *req.Role != models.RoleAgent && *req.Role != models.RoleAdmin {
			return nil, fmt.Errorf("%w: role must be 'agent' or 'admin'", response.ErrInvalidArgument)
		}
		if caller.Role == models.RoleAdmin && *req.Role == models.RoleAdmin {
			return nil, fmt.Errorf("%w: admins cannot promote to admin", response.ErrPermissionDenied)
		}
		target.Role = *req.Role
	}
	if req.Disabled != nil {
		target.Disabled = *req.Disabled
	}
	if req.District != nil {
		target.District = *req.District
	}
	if req.Subcounty != nil {
		target.Subcounty = *req.Subcounty
	}
	if req.Parish != nil {
		target.Parish = *req.Parish
	}
	if req.Village != nil {
		target.Village = *req.Village
	}

	if err := s.users.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("%w: update user: %v", response.ErrInternal, err)
	}
	return target, nil
}

// DeleteUser removes a profile and its credential. Admin callers may only
// delete agents; superadmin accounts are never deleted through the API.
func (s *UserService) DeleteUser(ctx context.Context, caller *models.User, id string) error {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: user %s", response.ErrNotFound, id)
	}

	if target.Role == models.RoleSuperadmin {
		return fmt.Errorf("%w: superadmin accounts cannot be deleted", response.ErrPermissionDenied)
	}
	if caller.Role == models.RoleAdmin && target.Role != models.RoleAgent {
		return fmt.Errorf("%w: admins may only delete agents", response.ErrPermissionDenied)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete user: %v", response.ErrInternal, err)
	}
	if err := s.credentials.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete credential: %v", response.ErrInternal, err)
	}
	return nil
}

// UpdateProfile is the self-service displayName change.
func (s *UserService) UpdateProfile(ctx context.Context, caller *models.User, req models.UpdateProfileRequest) (*models.User, error) {
	caller.DisplayName = req.DisplayName
	if err := s.users.Update(ctx, caller); err != nil {
		return nil, fmt.Errorf("%w: update profile: %v", response.ErrInternal, err)
	}
	return caller, nil
}
