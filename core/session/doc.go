// Package session manages the client's authentication lifecycle: acquiring a
// bearer token via login or registration, decoding it into a user identity,
// and clearing it on logout or forced expiry.
//
// The Manager is a small state machine. It starts in StatusInitializing,
// moves to StatusUnauthenticated or StatusAuthenticated after CheckAuth, and
// passes through StatusAuthenticating during login and registration.
//
// Token decoding is purely local: claims are extracted without signature or
// expiry verification, since the server is the authority on token validity.
// An expired token is discovered lazily through a 401 response, at which
// point the request gateway calls Logout.
//
// Usage:
//
//	store := tokenstore.NewMemoryStore()
//	manager := session.NewManager(store, "https://api.example.com")
//
//	if !manager.CheckAuth() {
//		if err := manager.Login(ctx, email, password); err != nil {
//			// surface to the user, state stays unauthenticated
//		}
//	}
//
//	identity, _ := manager.Identity()
package session
