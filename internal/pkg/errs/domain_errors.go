package errs

import "errors"

// Cross-cutting sentinel errors shared by the command and query layers
var (
	// Lookup errors
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrClientNotFound   = errors.New("client not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
