package dto

import "net/http"

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain error
// codes flow through unchanged; anything unmapped falls back to 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:    http.StatusInternalServerError,
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_NOT_ACTIVE":  http.StatusForbidden,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,

	// Resource errors
	"USER_EXISTS":         http.StatusConflict,
	"USER_NOT_FOUND":      http.StatusNotFound,
	"PRODUCT_NOT_FOUND":   http.StatusNotFound,
	"ORDER_NOT_FOUND":     http.StatusNotFound,
	"CART_ITEM_NOT_FOUND": http.StatusNotFound,
	"NOT_FOUND":           http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,

	// Business rule errors
	"CART_EMPTY":           http.StatusBadRequest,
	"INVALID_ROLE":         http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,
	"INVALID_QUANTITY":     http.StatusBadRequest,
	"INVALID_PRICE":        http.StatusBadRequest,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_PASSWORD":     http.StatusBadRequest,
	"INVALID_CREDENTIAL":   http.StatusUnauthorized,
	"PASSWORD_TOO_SHORT":   http.StatusBadRequest,
	"PASSWORD_MISMATCH":    http.StatusBadRequest,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Domain field validation that request binding does not cover
	"INVALID_USERNAME":       http.StatusBadRequest,
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_NAME":           http.StatusBadRequest,
	"INVALID_PHONE":          http.StatusBadRequest,
	"INVALID_BUSINESS_NAME":  http.StatusBadRequest,
	"INVALID_COMPANY_NAME":   http.StatusBadRequest,
	"INVALID_CONTACT_PERSON": http.StatusBadRequest,
	"INVALID_CATEGORY":       http.StatusBadRequest,
	"INVALID_DESCRIPTION":    http.StatusBadRequest,
	"INVALID_IMAGE_URL":      http.StatusBadRequest,
	"INVALID_STOCK":          http.StatusBadRequest,
	"INVALID_MIN_ORDER":      http.StatusBadRequest,
	"INVALID_PRODUCT_ID":     http.StatusBadRequest,
	"INVALID_SUPPLIER_ID":    http.StatusBadRequest,
	"INVALID_VENDOR_ID":      http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
