// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordTooWeak     = errors.New("password too weak")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidPassword     = errors.New("invalid password")

	// Verification-related errors
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrAlreadyVerified         = errors.New("already verified")

	// Organization-related errors
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrOrganizationSuspended = errors.New("organization is suspended")
	ErrCodeNotFound          = errors.New("code not found")
	ErrCodeInactive          = errors.New("code is not active")

	// Membership-related errors
	ErrMembershipNotFound = errors.New("membership not found")
	ErrMembershipExists   = errors.New("user already belongs to an organization")
	ErrAlreadyApproved    = errors.New("membership already approved")
	ErrClassNotFound      = errors.New("class not found")
	ErrClassFull          = errors.New("class is full")

	// Flight-related errors
	ErrFlightLimitReached = errors.New("monthly flight limit reached")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrFlightInProgress   = errors.New("a flight is already in progress")
	ErrNoActiveFlight     = errors.New("no active flight")

	// Checklist-related errors
	ErrChecklistNotFound   = errors.New("checklist not found")
	ErrChecklistIncomplete = errors.New("checklist has incomplete items")

	// License-related errors
	ErrLicenseNotFound = errors.New("license not found")

	// Inventory-related errors
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrItemNotAvailable  = errors.New("inventory item is not available")
	ErrItemNotCheckedOut = errors.New("inventory item is not checked out")
)
