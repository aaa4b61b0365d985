package service

import (
	"context"
	"testing"
	"time"

	"automart-be/internal/entity"

	"github.com/google/uuid"
)

func newAuthFixture() (IAuthService, *fakeUserRepository, *entity.User) {
	users := newFakeUserRepository()
	user := &entity.User{
		Id:       uuid.New(),
		Email:    "buyer@test.local",
		FullName: "Buyer",
		Role:     entity.UserRoleBuyer,
		Status:   entity.UserStatusActive,
	}
	users.users[user.Id] = user

	uow := &fakeUow{users: users, messages: &fakeMessageRepository{}}
	svc := NewAuthService(&fakeUowFactory{uow: uow}, nil, 15, 7, testLogger{})
	return svc, users, user
}

func storeRefreshToken(users *fakeUserRepository, user *entity.User, raw string, expiresAt time.Time) *entity.UserRefreshToken {
	token := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(raw),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	users.tokens[token.Id] = token
	return token
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, users, user := newAuthFixture()

	raw := uuid.New().String()
	old := storeRefreshToken(users, user, raw, time.Now().Add(24*time.Hour))

	res, err := svc.Refresh(context.Background(), raw, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if res.AccessToken == "" {
		t.Error("empty access token")
	}
	if res.RefreshToken == "" || res.RefreshToken == raw {
		t.Errorf("refresh token not rotated: %q", res.RefreshToken)
	}

	if !old.Revoked {
		t.Error("presented token not revoked after rotation")
	}

	// The rotated token must be usable exactly once more.
	next, err := svc.Refresh(context.Background(), res.RefreshToken, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Refresh with rotated token: %v", err)
	}
	if next.RefreshToken == res.RefreshToken {
		t.Error("second rotation returned the same token")
	}

	// The revoked original is dead.
	if _, err := svc.Refresh(context.Background(), raw, "127.0.0.1", "test-agent"); err == nil {
		t.Error("Refresh accepted a revoked token")
	}
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	svc, users, user := newAuthFixture()

	raw := uuid.New().String()
	storeRefreshToken(users, user, raw, time.Now().Add(-time.Hour))

	if _, err := svc.Refresh(context.Background(), raw, "", ""); err == nil {
		t.Fatal("Refresh accepted an expired token")
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, users, user := newAuthFixture()

	raw := uuid.New().String()
	token := storeRefreshToken(users, user, raw, time.Now().Add(24*time.Hour))

	if err := svc.Logout(context.Background(), raw); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if !token.Revoked {
		t.Error("token not revoked by logout")
	}

	// Logout with an unknown token is a silent no-op.
	if err := svc.Logout(context.Background(), "never-issued"); err != nil {
		t.Errorf("Logout with unknown token: %v", err)
	}
}
