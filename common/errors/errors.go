package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code and message, so
// a wrapped copy still matches its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of sentinel carrying cause. The sentinel itself is
// never mutated.
func Wrap(sentinel *Error, cause error) *Error {
	return New(sentinel.Code, sentinel.Message, cause)
}

// FieldErrors maps a form field to its validation message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Common error types
var (
	ErrBadRequest         = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized       = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden          = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound           = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer     = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, "Service unavailable", nil)
)

// Validation error types
var (
	ErrValidation   = New(http.StatusBadRequest, "Validation error", nil)
	ErrInvalidInput = New(http.StatusBadRequest, "Invalid input", nil)
)

// Session error types
var (
	ErrAuthenticationFailed = New(http.StatusUnauthorized, "Invalid username or password", nil)
	ErrCredentialLookup     = New(http.StatusServiceUnavailable, "Something went wrong. Please try again.", nil)
	ErrAlreadyIdentified    = New(http.StatusConflict, "Session already identified", nil)
	ErrSubmissionInFlight   = New(http.StatusTooManyRequests, "A submission is already in progress", nil)
	ErrNotIdentified        = New(http.StatusUnauthorized, "Please provide your details first", nil)
	ErrAdminRequired        = New(http.StatusForbidden, "Admin role required", nil)
	ErrBuyerRequired        = New(http.StatusForbidden, "Buyer details required", nil)
)

// Catalog and order error types
var (
	ErrProductNotFound = New(http.StatusNotFound, "Product not found", nil)
	ErrOutOfStock      = New(http.StatusConflict, "Product is out of stock", nil)
	ErrCheckoutRefused = New(http.StatusConflict, "Checkout refused", nil)
	ErrSaveProduct     = New(http.StatusInternalServerError, "Failed to save product. Please try again.", nil)
	ErrDeleteProduct   = New(http.StatusInternalServerError, "Failed to delete product. Please try again.", nil)
	ErrSessionStorage  = New(http.StatusServiceUnavailable, "Session storage unavailable", nil)
)

// Respond writes err as a JSON response. FieldErrors become a 400 with the
// per-field messages; anything that is not an *Error is a 500.
func Respond(c *gin.Context, err error) {
	var fields FieldErrors
	if stderrors.As(err, &fields) {
		c.AbortWithStatusJSON(ErrValidation.Code, gin.H{
			"error":  ErrValidation.Message,
			"fields": fields,
		})
		return
	}

	var appErr *Error
	if !stderrors.As(err, &appErr) {
		appErr = Wrap(ErrInternalServer, err)
	}
	c.AbortWithStatusJSON(appErr.Code, gin.H{"error": appErr.Message})
}
