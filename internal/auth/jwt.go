package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

// JWTManager handles session token generation and validation.
// Sessions are stateless: a token stays valid until it expires, there is
// no server-side revocation list.
type JWTManager struct {
	secret     []byte
	issuer     string
	sessionTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, sessionTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		issuer:     issuer,
		sessionTTL: sessionTTL,
	}
}

// sessionClaims extends standard JWT claims with the session username.
type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateSessionToken creates a signed HS256 JWT embedding the user ID
// as subject and the username as a custom claim. The env-defined admin
// principal has no user row; it is issued a token with an empty subject.
func (m *JWTManager) GenerateSessionToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}
	if userID != uuid.Nil {
		claims.Subject = userID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateSessionToken parses and validates a session token.
// Any failure (bad signature, expiry, wrong issuer) is an error the
// caller treats as "no session", never as a server fault.
func (m *JWTManager) ValidateSessionToken(tokenString string) (domain.SessionClaims, error) {
	if tokenString == "" {
		return domain.SessionClaims{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.SessionClaims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return domain.SessionClaims{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.SessionClaims{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.Username == "" {
		return domain.SessionClaims{}, fmt.Errorf("missing username claim")
	}

	result := domain.SessionClaims{Username: claims.Username}
	if claims.Subject != "" {
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return domain.SessionClaims{}, fmt.Errorf("invalid subject UUID: %w", err)
		}
		result.UserID = userID
	}

	return result, nil
}
