package tokenstore

// Store defines the persistence contract for the client's single bearer token.
// Implementations must be safe for concurrent use. Get returns ErrNotFound
// when no token is held; Clear on an empty store is a no-op.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}
