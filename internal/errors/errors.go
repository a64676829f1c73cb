package errors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDebtNotFound indicates that a debt with the given ID does not exist.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSettingsNotFound indicates that the settings row has not been initialized.
	ErrSettingsNotFound = errors.New("settings not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidRange indicates that a history range parameter is not one of
	// the supported named ranges.
	ErrInvalidRange = errors.New("invalid history range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Configuration errors.
var (
	// ErrNoSecretKey indicates that no fernet key is configured, so secrets
	// cannot be stored or read.
	ErrNoSecretKey = errors.New("no secret key configured")
)
