package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"thexempt/internal/pkg/jwt"
	ucauth "thexempt/internal/usecase/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(users *fakeUsers) (*Auth, *jwt.HMACService) {
	svc := jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthUsecase(users, svc).WithPasswordCost(bcrypt.MinCost), svc
}

func TestAuth_RegisterThenLogin(t *testing.T) {
	users := newFakeUsers()
	auth, svc := newTestAuth(users)
	ctx := context.Background()

	usr, access, refresh, err := auth.Register(ctx, ucauth.RegisterInput{
		Email: "  Ada@Example.com ", Password: "correct horse", Name: " Ada ",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "ada@example.com" || usr.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}
	claims, err := svc.ValidateAccessToken(access)
	if err != nil || claims.UserID != usr.ID {
		t.Fatalf("access token: %v %+v", err, claims)
	}

	got, _, _, err := auth.Login(ctx, ucauth.LoginInput{Email: "ADA@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != usr.ID {
		t.Fatalf("login returned %s, want %s", got.ID, usr.ID)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	auth, _ := newTestAuth(newFakeUsers())
	ctx := context.Background()

	cases := []struct {
		name string
		in   ucauth.RegisterInput
		want error
	}{
		{name: "missing email", in: ucauth.RegisterInput{Password: "longenough", Name: "A"}, want: ucauth.ErrInvalidInput},
		{name: "missing name", in: ucauth.RegisterInput{Email: "a@x.io", Password: "longenough", Name: "  "}, want: ucauth.ErrInvalidInput},
		{name: "missing password", in: ucauth.RegisterInput{Email: "a@x.io", Name: "A"}, want: ucauth.ErrInvalidInput},
		{name: "short password", in: ucauth.RegisterInput{Email: "a@x.io", Password: "short", Name: "A"}, want: ucauth.ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := auth.Register(ctx, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuth(newFakeUsers())
	ctx := context.Background()
	in := ucauth.RegisterInput{Email: "a@x.io", Password: "longenough", Name: "A"}

	if _, _, _, err := auth.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	in.Email = "A@X.IO"
	if _, _, _, err := auth.Register(ctx, in); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_LoginRejectsBadCredentials(t *testing.T) {
	auth, _ := newTestAuth(newFakeUsers())
	ctx := context.Background()
	if _, _, _, err := auth.Register(ctx, ucauth.RegisterInput{Email: "a@x.io", Password: "longenough", Name: "A"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, _, err := auth.Login(ctx, ucauth.LoginInput{Email: "a@x.io", Password: "wrongpass"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := auth.Login(ctx, ucauth.LoginInput{Email: "nobody@x.io", Password: "longenough"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := auth.Login(ctx, ucauth.LoginInput{Email: "a@x.io"}); !errors.Is(err, ucauth.ErrInvalidInput) {
		t.Fatalf("missing password: expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Refresh(t *testing.T) {
	users := newFakeUsers()
	auth, svc := newTestAuth(users)
	ctx := context.Background()

	usr, access, refresh, err := auth.Register(ctx, ucauth.RegisterInput{Email: "a@x.io", Password: "longenough", Name: "A"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	newAccess, newRefresh, err := auth.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatalf("expected new tokens")
	}
	if claims, err := svc.ValidateAccessToken(newAccess); err != nil || claims.UserID != usr.ID {
		t.Fatalf("refreshed access token invalid: %v", err)
	}

	if _, _, err := auth.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token as refresh: expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := auth.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("empty token: expected ErrUnauthorized, got %v", err)
	}

	orphan, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := auth.Refresh(ctx, orphan); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("unknown user: expected ErrInvalidRefreshToken, got %v", err)
	}
}
