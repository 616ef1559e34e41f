// Package tokenstore provides durable client-side storage for a single bearer
// token. It is the only persistence layer in the client: one token per process,
// stored under a well-known path, with plain get/set/clear semantics.
//
// The FileStore persists the token in the user's configuration directory with
// owner-only permissions. The MemoryStore is intended for tests and for hosts
// that manage token persistence themselves.
//
// Usage:
//
//	store, err := tokenstore.NewFileStore("")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := store.Set(token); err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := store.Get()
//	if errors.Is(err, tokenstore.ErrNotFound) {
//		// no active session
//	}
package tokenstore
