package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "invalid authentication token"
	MessageUserNotAllowed       = "unauthorized access"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// Defaults applied to batch-written child records whose optional fields are
// absent.
const (
	DefaultQuantity = 1
	DefaultUnit     = "item"
	DefaultCategory = "uncategorized"
)
