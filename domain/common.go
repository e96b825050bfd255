package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

var (
	MessageServerError       = "Server error"
	MessageRouteNotFound     = "Route not found"
	MessageNotAuthorized     = "Not authorized"
	MessageFailedBodyRequest = "invalid request body"

	ErrNotAuthorized = errors.New("not authorized")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrForbidden     = errors.New("forbidden")
)

// NewID returns a 24-character lowercase hex identifier. Entity ids and the
// seed data both use this mongo-style token format.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:24]
}

// NormalizePage falls back to defaults for out-of-range page and limit
// values so malformed query strings page from the start.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}
