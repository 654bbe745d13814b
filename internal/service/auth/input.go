package auth

import (
	"strings"

	"github.com/heartmarshall/somnia-backend/internal/domain"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 32
	passwordMinLen = 8
	passwordMaxLen = 128
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username   string
	Password   string
	ZodiacSign *string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateUsername(i.Username)...)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < passwordMinLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > passwordMaxLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.ZodiacSign != nil {
		if _, err := parseZodiac(*i.ZodiacSign); err != nil {
			errs = append(errs, domain.FieldError{Field: "zodiac_sign", Message: "unknown sign"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds parameters for the profile update operation.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Username   *string
	ZodiacSign *string
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == nil && i.ZodiacSign == nil {
		return domain.NewValidationError("body", "no fields to update")
	}
	if i.Username != nil {
		errs = append(errs, validateUsername(*i.Username)...)
	}
	if i.ZodiacSign != nil {
		if _, err := parseZodiac(*i.ZodiacSign); err != nil {
			errs = append(errs, domain.FieldError{Field: "zodiac_sign", Message: "unknown sign"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateUsername(username string) []domain.FieldError {
	switch {
	case username == "":
		return []domain.FieldError{{Field: "username", Message: "required"}}
	case len(username) < usernameMinLen:
		return []domain.FieldError{{Field: "username", Message: "too short"}}
	case len(username) > usernameMaxLen:
		return []domain.FieldError{{Field: "username", Message: "too long"}}
	}
	return nil
}

// parseZodiac maps a client-provided string to a ZodiacSign, accepting
// any letter case.
func parseZodiac(s string) (domain.ZodiacSign, error) {
	z := domain.ZodiacSign(strings.ToUpper(strings.TrimSpace(s)))
	if !z.IsValid() {
		return "", domain.NewValidationError("zodiac_sign", "unknown sign")
	}
	return z, nil
}
