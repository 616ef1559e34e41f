// Package gateway wraps every outbound call that requires identity. It is the
// single place where HTTP failures are classified: callers receive sentinel
// errors (ErrNoToken, ErrSessionExpired, ErrServer, ErrUnreachable,
// ErrUnexpectedResponse) and must not re-implement status-code handling.
//
// The gateway attaches the bearer token and a per-request id to each call.
// A 401 response is treated as session expiry: the session is logged out,
// navigation to the login entry point is triggered through the session's
// navigator, and the caller receives a terminal ErrSessionExpired. Nothing
// is retried.
//
// Usage:
//
//	client := gateway.New(baseURL, sessionManager)
//
//	var payload templatesResponse
//	if err := client.Get(ctx, "/api/templates", &payload); err != nil {
//		if errors.Is(err, gateway.ErrSessionExpired) {
//			// navigation has already happened
//		}
//	}
package gateway
