package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	userID := uuid.New().String()
	signed := signTestToken(t, "unit-test-secret", jwt.MapClaims{
		"user_id": userID,
		"role":    "dealer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	claims, err := ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["user_id"] != userID {
		t.Errorf("user_id = %v, want %s", claims["user_id"], userID)
	}
	if claims["role"] != "dealer" {
		t.Errorf("role = %v, want dealer", claims["role"])
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	signed := signTestToken(t, "a-different-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	if _, err := ParseToken(signed); err == nil {
		t.Fatal("ParseToken accepted a token signed with the wrong secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	signed := signTestToken(t, "unit-test-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})

	if _, err := ParseToken(signed); err == nil {
		t.Fatal("ParseToken accepted an expired token")
	}
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(ctx *fiber.Ctx) error {
		id, err := UserID(ctx)
		if err != nil {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}
		return ctx.SendString(id.String())
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, want 401", res.StatusCode)
		}
	})

	t.Run("bearer header", func(t *testing.T) {
		userID := uuid.New().String()
		signed := signTestToken(t, "unit-test-secret", jwt.MapClaims{
			"user_id": userID,
			"role":    "buyer",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		res, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, want 200", res.StatusCode)
		}
	})

	t.Run("cookie fallback", func(t *testing.T) {
		signed := signTestToken(t, "unit-test-secret", jwt.MapClaims{
			"user_id": uuid.New().String(),
			"role":    "buyer",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signed})
		res, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, want 200", res.StatusCode)
		}
	})
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	app := fiber.New()
	app.Get("/admin", JwtMiddleware, RequireRole("admin"), func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "admin allowed", role: "admin", wantStatus: fiber.StatusOK},
		{name: "buyer forbidden", role: "buyer", wantStatus: fiber.StatusForbidden},
		{name: "dealer forbidden", role: "dealer", wantStatus: fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed := signTestToken(t, "unit-test-secret", jwt.MapClaims{
				"user_id": uuid.New().String(),
				"role":    tt.role,
				"exp":     time.Now().Add(time.Hour).Unix(),
			})

			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+signed)
			res, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if res.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}
		})
	}
}
