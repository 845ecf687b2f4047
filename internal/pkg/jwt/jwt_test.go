package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/user"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "15m", "168h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()
	employeeID := "emp-1"

	tokenStr, expiresAt, err := svc.GenerateAccessToken("user-1", "jane@example.com", "Jane Doe", &employeeID, user.RoleHR)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("token string is empty")
	}
	if expiresAt <= time.Now().Unix() {
		t.Errorf("expiresAt %d is not in the future", expiresAt)
	}

	token, err := svc.JWTAuth().Decode(tokenStr)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		t.Fatalf("AsMap: %v", err)
	}

	if claims["user_id"] != "user-1" {
		t.Errorf("user_id = %v", claims["user_id"])
	}
	if claims["email"] != "jane@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
	if claims["employee_id"] != "emp-1" {
		t.Errorf("employee_id = %v", claims["employee_id"])
	}
	if claims["role"] != "hr" {
		t.Errorf("role = %v", claims["role"])
	}
	if claims["type"] != "access" {
		t.Errorf("type = %v", claims["type"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Error("jti claim is missing")
	}
}

func TestGenerateAccessTokenNilEmployeeID(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateAccessToken("user-1", "jane@example.com", "Jane Doe", nil, user.RoleEmployee)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	token, err := svc.JWTAuth().Decode(tokenStr)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		t.Fatalf("AsMap: %v", err)
	}
	if claims["employee_id"] != nil {
		t.Errorf("employee_id = %v, want nil", claims["employee_id"])
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	token, err := svc.JWTAuth().Decode(tokenStr)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		t.Fatalf("AsMap: %v", err)
	}
	if claims["type"] != "refresh" {
		t.Errorf("type = %v, want refresh", claims["type"])
	}
	if claims["user_id"] != "user-1" {
		t.Errorf("user_id = %v", claims["user_id"])
	}
}

func TestRefreshTokensAreDistinct(t *testing.T) {
	svc := newTestService()

	first, _, err := svc.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := svc.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two refresh tokens for the same user are identical")
	}
}

func TestInvalidExpirationDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration", "168h")
	if _, _, err := svc.GenerateAccessToken("user-1", "a@b.cd", "A", nil, user.RoleEmployee); err == nil {
		t.Error("expected error for invalid expiration duration")
	}
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService("a-different-secret", "15m", "168h")

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.JWTAuth().Decode(tokenStr); err == nil {
		t.Error("token signed with another secret decoded successfully")
	}
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenStr, _, err := svc.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatal(err)
	}

	if svc.IsTokenRevoked(tokenStr) {
		t.Error("fresh token reported as revoked")
	}
	svc.RevokeToken(tokenStr)
	if !svc.IsTokenRevoked(tokenStr) {
		t.Error("revoked token reported as valid")
	}
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()
	expiresAt := time.Now().Add(168 * time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("the-token", expiresAt)
	if cookie.Name != "refresh_token" {
		t.Errorf("cookie name = %q", cookie.Name)
	}
	if cookie.Value != "the-token" {
		t.Errorf("cookie value = %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("refresh token cookie must be HttpOnly")
	}
	if cookie.Path != "/api/v1/auth" {
		t.Errorf("cookie path = %q", cookie.Path)
	}
}
