package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// EngineError is a single engine failure. It triggers the fallback hop and
// only reaches a caller wrapped inside an EnsembleUnavailableError.
type EngineError struct {
	ErrorMessage
	Engine string
	Cause  error
}

func (e *EngineError) Unwrap() error { return e.Cause }

// EnsembleUnavailableError means both the primary attempt and the fallback
// attempt failed.
type EnsembleUnavailableError struct {
	ErrorMessage
	Attempts []error
}

type DatabaseError struct {
	ErrorMessage
	Operation string
	Cause     error
}

func (e *DatabaseError) Unwrap() error { return e.Cause }

type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
	Cause     error
}

func (e *ExternalServiceError) Unwrap() error { return e.Cause }

type EncryptionError struct {
	ErrorMessage
	Cause error
}

func (e *EncryptionError) Unwrap() error { return e.Cause }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewEngineError(engine string, cause error) *EngineError {
	return &EngineError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("engine %s failed: %v", engine, cause)},
		Engine:       engine,
		Cause:        cause,
	}
}

func NewEnsembleUnavailableError(attempts ...error) *EnsembleUnavailableError {
	return &EnsembleUnavailableError{
		ErrorMessage: ErrorMessage{Message: "all engines unavailable"},
		Attempts:     attempts,
	}
}

func NewDatabaseError(operation, message string, cause error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Cause:        cause,
	}
}

func NewExternalServiceError(service, message string, transient bool, cause error) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
		Transient:    transient,
		Cause:        cause,
	}
}

func NewEncryptionError(message string, cause error) *EncryptionError {
	return &EncryptionError{
		ErrorMessage: ErrorMessage{Message: message},
		Cause:        cause,
	}
}
