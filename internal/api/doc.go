// Package api provides HTTP client functionality for communicating with the
// ZeroEntropy API. It handles authentication, request/response serialization,
// and automatic retry logic with exponential backoff for transient failures.
//
// # Client Creation
//
// [New] builds a client from a [Config]. Only the API key is required; every
// other field has a default. The key is sent via the Authorization header
// using the Bearer scheme on every request.
//
// # Retry Behavior
//
// The client automatically retries failed requests with exponential backoff.
// By default, a request is sent up to three times (two retries) for these
// HTTP status codes:
//
//   - 408 Request Timeout
//   - 409 Conflict
//   - 429 Too Many Requests
//   - 500 and above
//
// Network-level failures are retried the same way. The retry delay starts at
// 500ms and doubles per attempt up to 8s, jittered by ±20%. Configure retry
// behavior through [Config.Retry]; a canceled context aborts both in-flight
// attempts and backoff sleeps.
//
// # Error Handling
//
// Non-2xx responses are classified into the error taxonomy of the apierrors
// package. Use errors.Is to check for specific conditions:
//
//	if errors.Is(err, apierrors.ErrRateLimited) {
//	    // Back off at the application level
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously; each call keeps its own retry
// state.
package api
