package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	signed, err := svc.Issue("661f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := svc.Parse(signed)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if userID != "661f1f77bcf86cd799439011" {
		t.Errorf("Parsed user id: got %q want %q", userID, "661f1f77bcf86cd799439011")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, _ := NewTokenService("secret-a").Issue("user-1")

	if _, err := NewTokenService("secret-b").Parse(signed); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte("test-secret"))

	if _, err := svc.Parse(signed); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")
	if _, err := svc.Parse("not.a.token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}

func TestParseRejectsMissingUserID(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, _ := token.SignedString([]byte("test-secret"))

	if _, err := NewTokenService("test-secret").Parse(signed); err == nil {
		t.Error("Expected error for token without a user id claim")
	}
}
