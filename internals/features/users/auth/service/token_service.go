package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/users/user/model"
)

// AccessTokenTTL membaca JWT_EXPIRES_HOURS (default 24 jam)
func AccessTokenTTL() time.Duration {
	hours := 24
	if raw := configs.GetEnv("JWT_EXPIRES_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			hours = parsed
		}
	}
	return time.Duration(hours) * time.Hour
}

// GenerateAccessToken menerbitkan JWT HS256 dengan klaim yang dibaca
// middleware AuthJWT: sub (user_id), role, user_name.
func GenerateAccessToken(user *model.UserModel) (string, time.Duration, error) {
	ttl := AccessTokenTTL()
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"role":      user.UserRole,
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, ttl, nil
}
