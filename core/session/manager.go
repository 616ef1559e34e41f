package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dataforge-io/dataforge-go/core/tokenstore"
)

const defaultAuthTimeout = 30 * time.Second

// Manager owns the client's authentication state. It mirrors the stored token
// in memory for fast access; the token store remains the single durable copy.
type Manager struct {
	store      tokenstore.Store
	httpClient *http.Client
	baseURL    string
	nav        Navigator

	mu       sync.Mutex
	status   Status
	token    string
	identity Identity
	hasIdent bool
}

// NewManager creates a session manager backed by the given token store.
// The baseURL points at the API root, e.g. "https://api.example.com".
func NewManager(store tokenstore.Store, baseURL string, opts ...Option) *Manager {
	m := &Manager{
		store:      store,
		httpClient: &http.Client{Timeout: defaultAuthTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		status:     StatusInitializing,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CheckAuth initializes the session from the token store. It never touches the
// network: an absent token yields StatusUnauthenticated, a decodable token
// yields StatusAuthenticated, and an undecodable token is cleared from the
// store before yielding StatusUnauthenticated. Returns true when authenticated.
func (m *Manager) CheckAuth() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.store.Get()
	if err != nil {
		m.resetLocked()
		return false
	}

	identity, err := decodeIdentity(token)
	if err != nil {
		_ = m.store.Clear()
		m.resetLocked()
		return false
	}

	m.adoptLocked(token, identity)
	return true
}

// Login submits credentials and, on success, stores and decodes the returned
// token. On failure the server's error is propagated untouched and the session
// stays unauthenticated. Nothing is retried.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	return m.authenticate(ctx, "/api/auth/login", credentials{
		Email:    email,
		Password: password,
	})
}

// Register creates an account and auto-authenticates on success, following the
// same contract as Login. The display name is optional.
func (m *Manager) Register(ctx context.Context, email, password, name string) error {
	return m.authenticate(ctx, "/api/auth/register", credentials{
		Email:    email,
		Password: password,
		Name:     name,
	})
}

// Logout clears the token, resets the identity, and signals navigation to the
// login entry point. Safe to call repeatedly: a second call leaves the same
// unauthenticated state and empty storage as the first.
func (m *Manager) Logout() error {
	m.mu.Lock()
	err := m.store.Clear()
	m.resetLocked()
	m.mu.Unlock()

	if m.nav != nil {
		m.nav.NavigateToLogin()
	}
	return err
}

// Token returns the in-memory token mirror. The second return reports whether
// a token is currently held.
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

// Identity returns the identity decoded from the current token, if any.
func (m *Manager) Identity() (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity, m.hasIdent
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// IsAuthenticated reports whether a token is currently held. A held token may
// still be expired server-side; that is discovered via a 401, not here.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status == StatusAuthenticated
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type authResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (m *Manager) authenticate(ctx context.Context, path string, creds credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrMissingCredentials
	}

	m.mu.Lock()
	m.status = StatusAuthenticating
	m.mu.Unlock()

	resp, err := m.postCredentials(ctx, path, creds)
	if err != nil {
		m.mu.Lock()
		m.resetLocked()
		m.mu.Unlock()
		return err
	}

	identity, err := decodeIdentity(resp.Token)
	if err != nil {
		m.mu.Lock()
		m.resetLocked()
		m.mu.Unlock()
		return err
	}

	if err := m.store.Set(resp.Token); err != nil {
		m.mu.Lock()
		m.resetLocked()
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.adoptLocked(resp.Token, identity)
	m.mu.Unlock()
	return nil
}

func (m *Manager) postCredentials(ctx context.Context, path string, creds credentials) (authResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return authResponse{}, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return authResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpResp, err := m.httpClient.Do(req)
	if err != nil {
		return authResponse{}, errors.Join(ErrUnreachable, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return authResponse{}, errors.Join(ErrUnreachable, err)
	}

	var resp authResponse
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Surface the server's message verbatim when it provides one.
		if json.Unmarshal(data, &resp) == nil && resp.Message != "" {
			return authResponse{}, fmt.Errorf("%w: %s", ErrAuthFailed, resp.Message)
		}
		return authResponse{}, fmt.Errorf("%w: %s", ErrAuthFailed, httpResp.Status)
	}

	if err := json.Unmarshal(data, &resp); err != nil {
		return authResponse{}, errors.Join(ErrMissingToken, err)
	}
	if resp.Token == "" {
		return authResponse{}, ErrMissingToken
	}
	return resp, nil
}

// adoptLocked installs a token and its identity. Caller holds m.mu.
func (m *Manager) adoptLocked(token string, identity Identity) {
	m.token = token
	m.identity = identity
	m.hasIdent = true
	m.status = StatusAuthenticated
}

// resetLocked drops all in-memory session state. Caller holds m.mu.
func (m *Manager) resetLocked() {
	m.token = ""
	m.identity = Identity{}
	m.hasIdent = false
	m.status = StatusUnauthenticated
}
