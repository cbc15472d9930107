package common

import (
	"regexp"
	"strings"

	"instapost/internal/apperror"
)

const (
	// caption, bio and comment text share the same ceiling
	MaxTextLen      = 2200
	MaxWatermarkLen = 35
)

var (
	emailRegex  = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateHandle(handle string) error {
	handle = strings.TrimSpace(handle)
	if len(handle) < 3 || len(handle) > 50 {
		return apperror.BadRequest("handle must be between 3 and 50 characters")
	}

	if !handleRegex.MatchString(handle) {
		return apperror.BadRequest("handle can only contain letters, numbers, and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return apperror.BadRequest("password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return apperror.BadRequest("password is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return apperror.BadRequest("invalid email format")
	}

	return nil
}

// ValidateText checks caption/bio/comment bodies against the shared 1..2200
// character range.
func ValidateText(field, text string) error {
	if len(text) == 0 {
		return apperror.BadRequest(field + " cannot be empty")
	}
	if len(text) > MaxTextLen {
		return apperror.BadRequest(field + " is too long")
	}
	return nil
}

func ValidateWatermark(watermark string) error {
	if len(watermark) > MaxWatermarkLen {
		return apperror.BadRequest("watermark is too long")
	}
	return nil
}
