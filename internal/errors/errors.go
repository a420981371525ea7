// Package errors provides the application error taxonomy for the carteira API.
// Services return *AppError values; handlers and middleware render them with
// the status code they carry, never exposing the internal cause to clients.
package errors

import "net/http"

// FieldError describes one failing validation rule on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []string     `json:"fields,omitempty"`
	Details    []FieldError `json:"details,omitempty"`
	StatusCode int          `json:"-"`
	Internal   error        `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError with the same code, so wrapped
// copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func (e *AppError) clone() *AppError {
	cp := *e
	return &cp
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	e := sentinel.clone()
	e.Internal = internal
	return e
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	e := sentinel.clone()
	e.Message = message
	return e
}

// WithFields creates a new AppError naming the offending fields.
func WithFields(sentinel *AppError, fields ...string) *AppError {
	e := sentinel.clone()
	e.Fields = fields
	return e
}

// WithDetails creates a new AppError carrying per-field validation failures.
func WithDetails(sentinel *AppError, details []FieldError) *AppError {
	e := sentinel.clone()
	e.Details = details
	return e
}

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidation       = &AppError{Code: "VALIDATION_ERROR", Message: "Request validation failed", StatusCode: http.StatusBadRequest}
	ErrEmptyUpdate      = &AppError{Code: "EMPTY_UPDATE", Message: "At least one field must be provided for update", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrMethodNotAllowed = &AppError{Code: "METHOD_NOT_ALLOWED", Message: "Method not allowed", StatusCode: http.StatusMethodNotAllowed}
	ErrDuplicateValue   = &AppError{Code: "DUPLICATE_VALUE", Message: "A record with this value already exists", StatusCode: http.StatusConflict}
	ErrInvalidReference = &AppError{Code: "INVALID_REFERENCE", Message: "A referenced record does not exist", StatusCode: http.StatusConflict}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Cliente errors.
var (
	ErrClienteNotFound = &AppError{Code: "CLIENTE_NOT_FOUND", Message: "Customer not found", StatusCode: http.StatusNotFound}
	ErrMissingSearch   = &AppError{Code: "INVALID_SEARCH", Message: "Provide nome_completo or cpf_cnpj to search", StatusCode: http.StatusBadRequest}
	ErrInvalidSearch   = &AppError{Code: "INVALID_SEARCH", Message: "Provide either nome_completo or cpf_cnpj, but not both", StatusCode: http.StatusBadRequest}
)

// Acao errors.
var (
	ErrAcaoNotFound = &AppError{Code: "ACAO_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrAcaoInUse    = &AppError{Code: "ACAO_IN_USE", Message: "Asset cannot be deleted while allocations reference it", StatusCode: http.StatusConflict}
)

// Alocacao errors.
var (
	ErrAlocacaoNotFound  = &AppError{Code: "ALOCACAO_NOT_FOUND", Message: "Allocation not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAlocacao = &AppError{Code: "DUPLICATE_ALOCACAO", Message: "Customer already holds an allocation for this asset", StatusCode: http.StatusConflict}
)
