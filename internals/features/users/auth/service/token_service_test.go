package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/users/user/model"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := &model.UserModel{
		UserID:   uuid.New(),
		UserName: "Ahmad Fauzi",
		UserRole: "wali",
	}

	signed, ttl, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if ttl <= 0 {
		t.Fatalf("ttl harus positif, dapat %v", ttl)
	}

	tok, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token tidak valid: %v", err)
	}

	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"] != user.UserID.String() {
		t.Errorf("sub = %v, mau %s", claims["sub"], user.UserID)
	}
	if claims["role"] != "wali" {
		t.Errorf("role = %v, mau wali", claims["role"])
	}
	if claims["user_name"] != "Ahmad Fauzi" {
		t.Errorf("user_name = %v", claims["user_name"])
	}
}

func TestAccessTokenTTL_Default(t *testing.T) {
	t.Setenv("JWT_EXPIRES_HOURS", "")
	if got := AccessTokenTTL(); got.Hours() != 24 {
		t.Errorf("TTL default = %v, mau 24 jam", got)
	}

	t.Setenv("JWT_EXPIRES_HOURS", "6")
	if got := AccessTokenTTL(); got.Hours() != 6 {
		t.Errorf("TTL = %v, mau 6 jam", got)
	}
}
