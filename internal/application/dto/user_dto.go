package dto

import "time"

// CreateUserRequest entrada para el registro (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenRequest entrada para POST /token. Acepta JSON y form-urlencoded;
// en el form el email viaja en el campo username (estilo OAuth2 password).
type TokenRequest struct {
	Email    string `json:"email" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse salida con el bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
