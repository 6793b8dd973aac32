package zeroentropy

import (
	"errors"

	"github.com/zeroentropy/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is checks. Errors returned by API calls
// match the sentinel for their status code, so callers can branch on a
// condition without inspecting *APIError directly.
var (
	// ErrMissingAPIKey is returned when no API key is provided explicitly
	// or via the ZEROENTROPY_API_KEY environment variable.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidConfig is returned by New when a configuration value is
	// out of range, such as a negative timeout or a relative base URL.
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrBadRequest is returned for HTTP 400 responses.
	ErrBadRequest = apierrors.ErrBadRequest

	// ErrAuthentication is returned for HTTP 401 and 403 responses.
	ErrAuthentication = apierrors.ErrAuthentication

	// ErrPermissionDenied is returned for HTTP 403 responses.
	ErrPermissionDenied = apierrors.ErrPermissionDenied

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrCollectionNotFound is returned when a 404 refers to a collection.
	ErrCollectionNotFound = apierrors.ErrCollectionNotFound

	// ErrDocumentNotFound is returned when a 404 refers to a document.
	ErrDocumentNotFound = apierrors.ErrDocumentNotFound

	// ErrPageNotFound is returned when a 404 refers to a page.
	ErrPageNotFound = apierrors.ErrPageNotFound

	// ErrRequestTimeout is returned for HTTP 408 responses.
	ErrRequestTimeout = apierrors.ErrRequestTimeout

	// ErrConflict is returned for HTTP 409 responses.
	ErrConflict = apierrors.ErrConflict

	// ErrCollectionAlreadyExists is returned when adding a collection
	// whose name is already taken.
	ErrCollectionAlreadyExists = apierrors.ErrCollectionAlreadyExists

	// ErrDocumentAlreadyExists is returned when adding a document at a
	// path that is already occupied and overwrite is off.
	ErrDocumentAlreadyExists = apierrors.ErrDocumentAlreadyExists

	// ErrUnprocessable is returned for HTTP 422 responses.
	ErrUnprocessable = apierrors.ErrUnprocessable

	// ErrRateLimited is returned for HTTP 429 responses.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServerError is returned for HTTP 5xx responses.
	ErrServerError = apierrors.ErrServerError

	// ErrIndexingFailed is returned by WaitUntilIndexed when the document
	// reaches a failed parsing or indexing state.
	ErrIndexingFailed = errors.New("document indexing failed")
)

// ZeroEntropyError is implemented by all errors produced by this SDK,
// excluding argument validation errors.
type ZeroEntropyError interface {
	error
	ZeroEntropyError()
}

// APIError is an HTTP error response from the API. StatusCode and Message
// carry what the server reported; RequestID identifies the failed call
// for support purposes.
type APIError = apierrors.APIError

// TransportError is a network-level failure: connection refused, DNS
// failure, per-attempt timeout or caller cancellation. Attempts records
// how many attempts were made before giving up.
type TransportError = apierrors.TransportError

// DecodeError reports a success response whose body could not be decoded.
type DecodeError = apierrors.DecodeError

// Kind is a coarse classification of an API error, derived from the
// response status code.
type Kind = apierrors.Kind

// Error kinds reported by APIError.Kind.
const (
	KindBadRequest     = apierrors.KindBadRequest
	KindAuthentication = apierrors.KindAuthentication
	KindNotFound       = apierrors.KindNotFound
	KindRequestTimeout = apierrors.KindRequestTimeout
	KindConflict       = apierrors.KindConflict
	KindUnprocessable  = apierrors.KindUnprocessable
	KindRateLimited    = apierrors.KindRateLimited
	KindServerError    = apierrors.KindServerError
	KindUnknown        = apierrors.KindUnknown
)

// Resource identifies which resource type an API error refers to.
type Resource = apierrors.Resource

// Resource types attached to API errors.
const (
	ResourceCollection = apierrors.ResourceCollection
	ResourceDocument   = apierrors.ResourceDocument
	ResourcePage       = apierrors.ResourcePage
)

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is a 409 from the API.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsAuthenticationError reports whether err is a 401 or 403 from the API.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsRateLimited reports whether err is a 429 from the API.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsRetryable reports whether err is an API error the client considers
// transient. Such errors already went through the retry budget; a caller
// may still choose to retry the whole call later.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return false
}
