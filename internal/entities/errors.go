// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPayload signals a webhook body that cannot be processed.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrInvalidSignature signals a webhook body whose signature does not match the secret.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrReviewerNotFound is returned when a github login is not registered in scores.
	ErrReviewerNotFound = errors.New("reviewer not found")
	// ErrStorage wraps any persistence failure surfaced to the delivery layer.
	ErrStorage = errors.New("storage error")
)
