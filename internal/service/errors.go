package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidInput          = "invalid_input"
	ErrCodeInvalidPaymentMethod  = "invalid_payment_method"
	ErrCodePaymentNotFound       = "payment_not_found"
	ErrCodeDonationNotFound      = "donation_not_found"
	ErrCodeSubscriptionNotFound  = "subscription_not_found"
	ErrCodeProcessorError        = "processor_error"
	ErrCodeProcessorNotSucceeded = "processor_not_succeeded"
	ErrCodeCaptureIncomplete     = "capture_incomplete"
	ErrCodeSignatureInvalid      = "signature_invalid"
	ErrCodeInternalError         = "internal_error"
)
