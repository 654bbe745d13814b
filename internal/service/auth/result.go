package auth

import "github.com/heartmarshall/somnia-backend/internal/domain"

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Principal describes the caller behind a verified session. For the
// env-defined admin there is no backing user row and User is nil.
type Principal struct {
	Claims  domain.SessionClaims
	User    *domain.User
	IsAdmin bool
}
