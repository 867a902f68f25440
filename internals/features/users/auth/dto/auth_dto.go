package dto

type RegisterRequest struct {
	UserName     string  `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string  `json:"user_email" validate:"required,email"`
	UserPassword string  `json:"user_password" validate:"required,min=8,max=72"`
	UserPhone    *string `json:"user_phone" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"` // detik
	User        UserInfo `json:"user"`
}

type UserInfo struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserRole  string `json:"user_role"`
}
