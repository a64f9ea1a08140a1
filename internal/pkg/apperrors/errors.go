package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Per-entity errors wrap the common sentinels so the HTTP layer can map
// any of them by category while callers still match the specific error.
var (
	ErrGroupNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "group not found"}
	ErrGroupAlreadyExists = &CustomError{Err: ErrConflict, Message: "group with this name already exists"}
	ErrGroupFlightLinked  = &CustomError{Err: ErrConflict, Message: "group is already linked to this flight"}
	ErrGroupFlightMissing = &CustomError{Err: ErrResourceNotFound, Message: "group is not linked to this flight"}

	ErrFlightNotFound = &CustomError{Err: ErrResourceNotFound, Message: "flight not found"}

	ErrTransferNotFound           = &CustomError{Err: ErrResourceNotFound, Message: "transfer not found"}
	ErrTransferAssignmentNotFound = &CustomError{Err: ErrResourceNotFound, Message: "transfer assignment not found"}
	ErrTransferAlreadyAssigned    = &CustomError{Err: ErrConflict, Message: "transfer is already assigned to this group"}

	ErrCentreNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "centre not found"}
	ErrCentreAlreadyExists = &CustomError{Err: ErrConflict, Message: "centre with this name already exists"}
	ErrCentreInUse         = &CustomError{Err: ErrConflict, Message: "centre is still referenced by groups or staff"}

	ErrParticipantNotFound = &CustomError{Err: ErrResourceNotFound, Message: "participant not found"}

	ErrStaffNotFound           = &CustomError{Err: ErrResourceNotFound, Message: "staff member not found"}
	ErrStaffAssignmentNotFound = &CustomError{Err: ErrResourceNotFound, Message: "staff assignment not found"}
	ErrStaffDocumentNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "staff document not found"}

	ErrAgencyNotFound = &CustomError{Err: ErrResourceNotFound, Message: "agency not found"}

	ErrProgrammeSlotNotFound = &CustomError{Err: ErrResourceNotFound, Message: "programme slot not found"}

	ErrUserNotFound = &CustomError{Err: ErrResourceNotFound, Message: "user not found"}
)

// CustomError carries an underlying sentinel plus a human-readable message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a descriptive message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a descriptive message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a descriptive message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}
