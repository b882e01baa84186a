package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal is returned when the details of a failure must not leak to the caller.
var ErrInternal = errors.New("internal error")

// ErrInvalidAction indicates an unrecognised decision action for a transaction.
var ErrInvalidAction = errors.New("invalid action")

// ErrInsufficientFunds indicates a withdrawal larger than the current saving balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAlreadyFinalized indicates a decision on a transaction that is already approved or rejected.
var ErrAlreadyFinalized = errors.New("transaction already finalized")

// ErrLoanEligibility indicates that a loan request failed one of the eligibility rules.
var ErrLoanEligibility = errors.New("loan eligibility check failed")

// ErrRepaymentExceedsLoan indicates a repayment larger than the outstanding loan.
var ErrRepaymentExceedsLoan = errors.New("repayment exceeds outstanding loan balance")

// ErrAttachmentUpload indicates that the attachment store could not persist a file.
var ErrAttachmentUpload = errors.New("attachment upload failed")

// LoanEligibilityError carries the specific rule a loan request violated.
// It matches ErrLoanEligibility with errors.Is.
type LoanEligibilityError struct {
	Reason string
}

func (e *LoanEligibilityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrLoanEligibility.Error(), e.Reason)
}

func (e *LoanEligibilityError) Is(target error) bool {
	return target == ErrLoanEligibility
}

// NewLoanEligibilityError builds a LoanEligibilityError for the given reason.
func NewLoanEligibilityError(reason string) error {
	return &LoanEligibilityError{Reason: reason}
}

// AppError wraps an underlying error with an HTTP-ish status code and a safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
