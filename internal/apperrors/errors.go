package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrProfileNotFound indicates that no user profile has been stored yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoSnapshot indicates that no dashboard snapshot has been computed yet
	// and the current refresh failed, so there is nothing stale to serve.
	ErrNoSnapshot = errors.New("no dashboard snapshot available")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidAmount indicates that an amount field is missing or not numeric.
	ErrInvalidAmount = errors.New("amount is missing or not numeric")

	// ErrInvalidDate indicates that a date field is missing or unparseable.
	ErrInvalidDate = errors.New("date is missing or unparseable")

	// ErrInvalidCSVHeaders indicates that an import file lacks the required columns.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")
	ErrFailedToDeleteTransaction    = errors.New("failed to delete transaction")
	ErrFailedToImportTransactions   = errors.New("failed to import transactions")

	ErrFailedToRetrieveProfile = errors.New("failed to retrieve profile")
	ErrFailedToUpdateProfile   = errors.New("failed to update profile")

	ErrFailedToRefreshDashboard = errors.New("failed to refresh dashboard")

	ErrFailedToRetrieveAlerts = errors.New("failed to retrieve alert history")
	ErrFailedToRecordAlert    = errors.New("failed to record alert")
)
