// Package common defines sentinel errors shared across the CampusPocket
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Record store errors.
	ErrorNotFound      = errors.New("no user found")
	ErrorUsernameTaken = errors.New("username already exists")

	// Auth errors. A credentials miss is distinct from a store failure.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Startup errors (schema could not be created).
	ErrorStoreInit = errors.New("store initialization failed")

	// Input validation errors, raised before any store call.
	ErrorValidation = errors.New("validation failed")
)
