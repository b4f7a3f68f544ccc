package service

import (
	"context"
	"errors"
	"testing"

	"tally-service/internal/models"
	"tally-service/pkg/response"
)

func newUserFixture() (*UserService, *fakeCredentialRepo, *fakeUserRepo) {
	creds := newFakeCredentialRepo()
	users := newFakeUserRepo()
	return NewUserService(creds, users), creds, users
}

func adminCaller() *models.User {
	return &models.User{ID: "admin-1", Role: models.RoleAdmin}
}

func superadminCaller() *models.User {
	return &models.User{ID: "root-1", Role: models.RoleSuperadmin}
}

func createReq(role string) models.CreateUserRequest {
	return models.CreateUserRequest{
		Email:    "field.agent@tally.local",
		Password: "s3cret-pass",
		Role:     role,
		District: "Butaleja",
	}
}

func TestCreateUserRoleMatrix(t *testing.T) {
	tests := []struct {
		name    string
		caller  *models.User
		role    string
		wantErr error
	}{
		{"admin creates agent", adminCaller(), models.RoleAgent, nil},
		{"admin creates admin", adminCaller(), models.RoleAdmin, response.ErrPermissionDenied},
		{"superadmin creates admin", superadminCaller(), models.RoleAdmin, nil},
		{"superadmin creates agent", superadminCaller(), models.RoleAgent, nil},
		{"nobody creates superadmin", superadminCaller(), models.RoleSuperadmin, response.ErrInvalidArgument},
		{"agent caller denied", &models.User{ID: "agent-1", Role: models.RoleAgent}, models.RoleAgent, response.ErrPermissionDenied},
		{"nil caller unauthenticated", nil, models.RoleAgent, response.ErrUnauthenticated},
		{"unknown role rejected", superadminCaller(), "observer", response.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, users := newUserFixture()
			resp, err := svc.CreateUser(context.Background(), tt.caller, createReq(tt.role))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(users.users) != 0 {
					t.Errorf("denied request must not write a profile")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateUser failed: %v", err)
			}
			created, ok := users.users[resp.UID]
			if !ok {
				t.Fatalf("profile not written for uid %s", resp.UID)
			}
			if created.Role != tt.role {
				t.Errorf("expected role %s, got %s", tt.role, created.Role)
			}
		})
	}
}

func TestCreateUserProfileAndCredentialShareID(t *testing.T) {
	svc, creds, users := newUserFixture()

	resp, err := svc.CreateUser(context.Background(), superadminCaller(), createReq(models.RoleAgent))
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, ok := creds.creds[resp.UID]; !ok {
		t.Errorf("credential missing for uid %s", resp.UID)
	}
	if _, ok := users.users[resp.UID]; !ok {
		t.Errorf("profile missing for uid %s", resp.UID)
	}
}

func TestCreateUserDefaultsDisplayName(t *testing.T) {
	svc, _, users := newUserFixture()

	req := createReq(models.RoleAgent)
	req.DisplayName = ""
	resp, err := svc.CreateUser(context.Background(), superadminCaller(), req)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if users.users[resp.UID].DisplayName != "field.agent" {
		t.Errorf("expected email local part as display name, got %q", users.users[resp.UID].DisplayName)
	}

	named := createReq(models.RoleAgent)
	named.Email = "other@tally.local"
	named.DisplayName = "Okello J."
	resp, err = svc.CreateUser(context.Background(), superadminCaller(), named)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if users.users[resp.UID].DisplayName != "Okello J." {
		t.Errorf("explicit display name lost, got %q", users.users[resp.UID].DisplayName)
	}
}

func TestCreateUserRollsBackCredentialOnProfileFailure(t *testing.T) {
	svc, creds, users := newUserFixture()
	users.failing = true

	_, err := svc.CreateUser(context.Background(), superadminCaller(), createReq(models.RoleAgent))
	if !errors.Is(err, response.ErrInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if len(creds.creds) != 0 {
		t.Errorf("credential must be deleted when the profile write fails, %d left", len(creds.creds))
	}
}

func TestUpdateUserAdminScope(t *testing.T) {
	svc, _, users := newUserFixture()
	users.users["agent-1"] = &models.User{ID: "agent-1", Role: models.RoleAgent}
	users.users["admin-2"] = &models.User{ID: "admin-2", Role: models.RoleAdmin}

	disabled := true
	if _, err := svc.UpdateUser(context.Background(), adminCaller(), "admin-2", models.UpdateUserRequest{Disabled: &disabled}); !errors.Is(err, response.ErrPermissionDenied) {
		t.Errorf("admin touching admin: expected permission denied, got %v", err)
	}

	adminRole := models.RoleAdmin
	if _, err := svc.UpdateUser(context.Background(), adminCaller(), "agent-1", models.UpdateUserRequest{Role: &adminRole}); !errors.Is(err, response.ErrPermissionDenied) {
		t.Errorf("admin promoting to admin: expected permission denied, got %v", err)
	}

	updated, err := svc.UpdateUser(context.Background(), adminCaller(), "agent-1", models.UpdateUserRequest{Disabled: &disabled})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if !updated.Disabled {
		t.Errorf("disable flag not applied")
	}

	if _, err := svc.UpdateUser(context.Background(), superadminCaller(), "agent-1", models.UpdateUserRequest{Role: &adminRole}); err != nil {
		t.Errorf("superadmin promotion should succeed, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, creds, users := newUserFixture()
	creds.creds["agent-1"] = &models.Credential{ID: "agent-1", Email: "a@tally.local"}
	users.users["agent-1"] = &models.User{ID: "agent-1", Role: models.RoleAgent}
	users.users["admin-2"] = &models.User{ID: "admin-2", Role: models.RoleAdmin}
	users.users["root-1"] = &models.User{ID: "root-1", Role: models.RoleSuperadmin}

	if err := svc.DeleteUser(context.Background(), superadminCaller(), "root-1"); !errors.Is(err, response.ErrPermissionDenied) {
		t.Errorf("superadmin target: expected permission denied, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), adminCaller(), "admin-2"); !errors.Is(err, response.ErrPermissionDenied) {
		t.Errorf("admin deleting admin: expected permission denied, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), adminCaller(), "missing"); !errors.Is(err, response.ErrNotFound) {
		t.Errorf("unknown target: expected not found, got %v", err)
	}

	if err := svc.DeleteUser(context.Background(), adminCaller(), "agent-1"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, ok := users.users["agent-1"]; ok {
		t.Errorf("profile not deleted")
	}
	if _, ok := creds.creds["agent-1"]; ok {
		t.Errorf("credential not deleted")
	}
}
