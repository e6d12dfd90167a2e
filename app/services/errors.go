// Package services implements the business logic between controllers and
// repositories. Services depend on small interfaces so tests can swap in
// in-memory fakes.
package services

import "errors"

var (
	// ErrInvalidID marks a malformed ObjectID from the client.
	ErrInvalidID = errors.New("invalid id format")

	// ErrInvalidAmount marks a non-positive charge amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrGateway marks a failure in an upstream payment provider.
	ErrGateway = errors.New("payment gateway error")
)
