package session

// Status represents the manager's position in the authentication lifecycle.
type Status int

const (
	// StatusInitializing is the state before CheckAuth has run.
	StatusInitializing Status = iota
	// StatusUnauthenticated means no token is held.
	StatusUnauthenticated
	// StatusAuthenticating is the transient state during login or registration.
	StatusAuthenticating
	// StatusAuthenticated means a token is held and an identity is available.
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
