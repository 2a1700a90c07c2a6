// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import "fmt"

// RemoteError reports a non-2xx response. Body carries the response body
// verbatim — the API's own error detail is the source of truth, so it is
// never reinterpreted locally.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("exa api failed status=%d body=%s", e.StatusCode, e.Body)
}

// TransportError reports a network or I/O failure before any response was
// received (DNS, TLS, connection reset, timeout).
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("exa request: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// MalformedResponseError reports a successful response missing a field the
// client must extract (e.g. the research task id).
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("response missing expected field %q", e.Field)
}
