// Package apierrors provides shared error types for the ZeroEntropy client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrBadRequest is returned when the server rejects a request as malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrAuthentication is returned when the API key is invalid, expired,
	// or not allowed to access the resource.
	ErrAuthentication = errors.New("authentication failed")

	// ErrPermissionDenied is returned when the API key is valid but the
	// operation is forbidden.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrCollectionNotFound is returned when a collection does not exist.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrDocumentNotFound is returned when a document does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrPageNotFound is returned when a document page does not exist.
	ErrPageNotFound = errors.New("page not found")

	// ErrRequestTimeout is returned when the server timed out processing
	// the request.
	ErrRequestTimeout = errors.New("request timeout")

	// ErrConflict is returned when the request conflicts with existing state.
	ErrConflict = errors.New("conflict with existing state")

	// ErrCollectionAlreadyExists is returned when creating a collection that
	// already exists.
	ErrCollectionAlreadyExists = errors.New("collection already exists")

	// ErrDocumentAlreadyExists is returned when adding a document at a path
	// that is already taken.
	ErrDocumentAlreadyExists = errors.New("document already exists")

	// ErrUnprocessable is returned when the request is well-formed but
	// semantically invalid.
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServerError is returned when the server reports an internal failure.
	ErrServerError = errors.New("internal server error")
)

// Kind classifies an API error by the status-code taxonomy the service uses.
type Kind string

const (
	// KindBadRequest covers 400 responses.
	KindBadRequest Kind = "bad_request"
	// KindAuthentication covers 401 and 403 responses.
	KindAuthentication Kind = "authentication"
	// KindNotFound covers 404 responses.
	KindNotFound Kind = "not_found"
	// KindRequestTimeout covers 408 responses.
	KindRequestTimeout Kind = "request_timeout"
	// KindConflict covers 409 responses.
	KindConflict Kind = "conflict"
	// KindUnprocessable covers 422 responses.
	KindUnprocessable Kind = "unprocessable_entity"
	// KindRateLimited covers 429 responses.
	KindRateLimited Kind = "rate_limited"
	// KindServerError covers 500 and above.
	KindServerError Kind = "server_error"
	// KindUnknown covers every other status code outside the taxonomy.
	KindUnknown Kind = "unknown"
)

// KindForStatus maps a non-2xx HTTP status code to its error kind.
// The mapping is total: every code lands on exactly one kind.
func KindForStatus(status int) Kind {
	switch status {
	case 400:
		return KindBadRequest
	case 401, 403:
		return KindAuthentication
	case 404:
		return KindNotFound
	case 408:
		return KindRequestTimeout
	case 409:
		return KindConflict
	case 422:
		return KindUnprocessable
	case 429:
		return KindRateLimited
	}
	if status >= 500 {
		return KindServerError
	}
	return KindUnknown
}

// RetryableStatus reports whether a status code indicates a transient
// failure. Request timeouts, conflicts, rate limits and server errors are
// retried; everything else fails immediately.
func RetryableStatus(status int) bool {
	switch status {
	case 408, 409, 429:
		return true
	}
	return status >= 500
}

// Resource indicates which type of resource an error relates to.
type Resource string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown Resource = ""
	// ResourceCollection indicates the error relates to a collection.
	ResourceCollection Resource = "collection"
	// ResourceDocument indicates the error relates to a document.
	ResourceDocument Resource = "document"
	// ResourcePage indicates the error relates to a document page.
	ResourcePage Resource = "page"
)

// APIError represents an HTTP error reported by the ZeroEntropy API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
	Resource   Resource
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Kind returns the error kind for the response status code.
func (e *APIError) Kind() Kind {
	return KindForStatus(e.StatusCode)
}

// Retryable reports whether the error is transient per the status taxonomy.
func (e *APIError) Retryable() bool {
	return RetryableStatus(e.StatusCode)
}

// ZeroEntropyError implements the ZeroEntropyError interface.
func (e *APIError) ZeroEntropyError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch KindForStatus(e.StatusCode) {
	case KindBadRequest:
		return target == ErrBadRequest
	case KindAuthentication:
		if target == ErrAuthentication {
			return true
		}
		return e.StatusCode == 403 && target == ErrPermissionDenied
	case KindNotFound:
		if target == ErrNotFound {
			return true
		}
		switch e.Resource {
		case ResourceCollection:
			return target == ErrCollectionNotFound
		case ResourceDocument:
			return target == ErrDocumentNotFound
		case ResourcePage:
			return target == ErrPageNotFound
		default:
			// Fallback: match any resource sentinel when the type is unknown
			return target == ErrCollectionNotFound || target == ErrDocumentNotFound || target == ErrPageNotFound
		}
	case KindRequestTimeout:
		return target == ErrRequestTimeout
	case KindConflict:
		if target == ErrConflict {
			return true
		}
		switch e.Resource {
		case ResourceCollection:
			return target == ErrCollectionAlreadyExists
		case ResourceDocument:
			return target == ErrDocumentAlreadyExists
		default:
			return target == ErrCollectionAlreadyExists || target == ErrDocumentAlreadyExists
		}
	case KindUnprocessable:
		return target == ErrUnprocessable
	case KindRateLimited:
		return target == ErrRateLimited
	case KindServerError:
		return target == ErrServerError
	}
	return false
}

// WithResource returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResource(err error, r Resource) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RequestID:  apiErr.RequestID,
			Resource:   r,
		}
	}
	return err
}

// TransportError represents a network-level failure: a connection error,
// a per-attempt timeout, or caller cancellation.
type TransportError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ZeroEntropyError implements the ZeroEntropyError interface.
func (e *TransportError) ZeroEntropyError() {}

// DecodeError represents a success response whose body could not be decoded
// into the expected payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ZeroEntropyError implements the ZeroEntropyError interface.
func (e *DecodeError) ZeroEntropyError() {}
