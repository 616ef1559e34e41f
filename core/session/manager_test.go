package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataforge-io/dataforge-go/core/session"
	"github.com/dataforge-io/dataforge-go/core/tokenstore"
)

// signToken issues an HS256 token with the claim layout the server uses.
func signToken(t *testing.T, userID int64, email, name string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestCheckAuth(t *testing.T) {
	t.Parallel()

	t.Run("no stored token yields unauthenticated", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemoryStore()
		manager := session.NewManager(store, "http://localhost:5000")

		assert.False(t, manager.CheckAuth())
		assert.Equal(t, session.StatusUnauthenticated, manager.Status())
	})

	t.Run("valid token populates identity", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Set(signToken(t, 7, "a@b.com", "")))

		manager := session.NewManager(store, "http://localhost:5000")
		assert.True(t, manager.CheckAuth())
		assert.Equal(t, session.StatusAuthenticated, manager.Status())

		identity, ok := manager.Identity()
		require.True(t, ok)
		assert.Equal(t, int64(7), identity.ID)
		assert.Equal(t, "a@b.com", identity.Email)
	})

	t.Run("undecodable token is cleared from storage", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Set("not-a-jwt"))

		manager := session.NewManager(store, "http://localhost:5000")
		assert.False(t, manager.CheckAuth())
		assert.Equal(t, session.StatusUnauthenticated, manager.Status())

		_, err := store.Get()
		assert.ErrorIs(t, err, tokenstore.ErrNotFound)
	})

	t.Run("expired token still authenticates locally", func(t *testing.T) {
		t.Parallel()

		claims := jwt.MapClaims{
			"user_id": int64(3),
			"email":   "old@b.com",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Set(token))

		// Expiry is discovered via a 401, not during local decode.
		manager := session.NewManager(store, "http://localhost:5000")
		assert.True(t, manager.CheckAuth())
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("successful login stores token and decodes identity", func(t *testing.T) {
		t.Parallel()

		token := signToken(t, 7, "a@b.com", "")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/auth/login", r.URL.Path)

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "a@b.com", creds["email"])
			assert.Equal(t, "x", creds["password"])

			json.NewEncoder(w).Encode(map[string]any{
				"status":  "success",
				"message": "Login successful",
				"token":   token,
			})
		}))
		defer srv.Close()

		store := tokenstore.NewMemoryStore()
		manager := session.NewManager(store, srv.URL)

		require.NoError(t, manager.Login(context.Background(), "a@b.com", "x"))
		assert.Equal(t, session.StatusAuthenticated, manager.Status())

		identity, ok := manager.Identity()
		require.True(t, ok)
		assert.Equal(t, int64(7), identity.ID)
		assert.Equal(t, "a@b.com", identity.Email)

		stored, err := store.Get()
		require.NoError(t, err)
		assert.Equal(t, token, stored)
	})

	t.Run("rejected credentials propagate the server message", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"status":  "error",
				"message": "Invalid credentials",
			})
		}))
		defer srv.Close()

		store := tokenstore.NewMemoryStore()
		manager := session.NewManager(store, srv.URL)

		err := manager.Login(context.Background(), "a@b.com", "wrong")
		require.ErrorIs(t, err, session.ErrAuthFailed)
		assert.Contains(t, err.Error(), "Invalid credentials")
		assert.Equal(t, session.StatusUnauthenticated, manager.Status())

		_, err = store.Get()
		assert.ErrorIs(t, err, tokenstore.ErrNotFound)
	})

	t.Run("missing credentials rejected before any network call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		manager := session.NewManager(tokenstore.NewMemoryStore(), srv.URL)

		err := manager.Login(context.Background(), "", "x")
		assert.ErrorIs(t, err, session.ErrMissingCredentials)
		assert.Zero(t, calls.Load())
	})

	t.Run("unreachable server yields distinct error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		manager := session.NewManager(tokenstore.NewMemoryStore(), srv.URL)

		err := manager.Login(context.Background(), "a@b.com", "x")
		assert.ErrorIs(t, err, session.ErrUnreachable)
		assert.Equal(t, session.StatusUnauthenticated, manager.Status())
	})

	t.Run("response without token field fails", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"status": "success"})
		}))
		defer srv.Close()

		manager := session.NewManager(tokenstore.NewMemoryStore(), srv.URL)

		err := manager.Login(context.Background(), "a@b.com", "x")
		assert.ErrorIs(t, err, session.ErrMissingToken)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("registration auto-authenticates", func(t *testing.T) {
		t.Parallel()

		token := signToken(t, 11, "new@b.com", "New User")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/auth/register", r.URL.Path)

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "New User", creds["name"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"status": "success",
				"token":  token,
			})
		}))
		defer srv.Close()

		manager := session.NewManager(tokenstore.NewMemoryStore(), srv.URL)

		require.NoError(t, manager.Register(context.Background(), "new@b.com", "x", "New User"))
		assert.True(t, manager.IsAuthenticated())

		identity, ok := manager.Identity()
		require.True(t, ok)
		assert.Equal(t, int64(11), identity.ID)
		assert.Equal(t, "New User", identity.Name)
	})

	t.Run("name is optional and omitted from the request body", func(t *testing.T) {
		t.Parallel()

		token := signToken(t, 12, "anon@b.com", "")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.NotContains(t, body, "name")

			json.NewEncoder(w).Encode(map[string]any{"status": "success", "token": token})
		}))
		defer srv.Close()

		manager := session.NewManager(tokenstore.NewMemoryStore(), srv.URL)
		require.NoError(t, manager.Register(context.Background(), "anon@b.com", "x", ""))
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("clears storage and navigates to login", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Set(signToken(t, 7, "a@b.com", "")))

		var navigations atomic.Int64
		manager := session.NewManager(store, "http://localhost:5000",
			session.WithNavigator(session.NavigatorFunc(func() { navigations.Add(1) })))
		require.True(t, manager.CheckAuth())

		require.NoError(t, manager.Logout())

		assert.Equal(t, session.StatusUnauthenticated, manager.Status())
		assert.False(t, manager.IsAuthenticated())
		_, ok := manager.Identity()
		assert.False(t, ok)
		_, err := store.Get()
		assert.ErrorIs(t, err, tokenstore.ErrNotFound)
		assert.Equal(t, int64(1), navigations.Load())
	})

	t.Run("logout twice equals logout once", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Set(signToken(t, 7, "a@b.com", "")))

		manager := session.NewManager(store, "http://localhost:5000")
		require.True(t, manager.CheckAuth())

		require.NoError(t, manager.Logout())
		require.NoError(t, manager.Logout())

		assert.Equal(t, session.StatusUnauthenticated, manager.Status())
		_, err := store.Get()
		assert.ErrorIs(t, err, tokenstore.ErrNotFound)
	})
}
