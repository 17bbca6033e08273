package auth

import (
	"testing"
	"time"

	"tagnest/models"
)

func TestVerifyRefreshToken(t *testing.T) {
	token, err := generateRefreshToken()
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	user := models.User{
		RefreshToken:  hashToken(token),
		RefreshExpiry: time.Now().Add(time.Hour),
	}

	if err := verifyRefreshToken(user, token); err != nil {
		t.Fatalf("expected stored token to verify, got %v", err)
	}
}

func TestVerifyRefreshTokenMismatch(t *testing.T) {
	token, _ := generateRefreshToken()
	other, _ := generateRefreshToken()

	user := models.User{
		RefreshToken:  hashToken(token),
		RefreshExpiry: time.Now().Add(time.Hour),
	}

	if err := verifyRefreshToken(user, other); err == nil {
		t.Fatal("expected mismatching refresh token to be rejected")
	}
}

func TestVerifyRefreshTokenExpired(t *testing.T) {
	token, _ := generateRefreshToken()

	user := models.User{
		RefreshToken:  hashToken(token),
		RefreshExpiry: time.Now().Add(-time.Minute),
	}

	if err := verifyRefreshToken(user, token); err == nil {
		t.Fatal("expected expired refresh token to be rejected")
	}
}

func TestVerifyRefreshTokenNoneStored(t *testing.T) {
	token, _ := generateRefreshToken()

	if err := verifyRefreshToken(models.User{}, token); err == nil {
		t.Fatal("expected user without stored refresh token to be rejected")
	}
}
