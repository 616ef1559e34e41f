package session

import (
	"net/http"
)

// Navigator receives navigation signals from the session layer. Implementations
// decide what "go to the login entry point" means for their presentation layer.
type Navigator interface {
	NavigateToLogin()
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func()

func (f NavigatorFunc) NavigateToLogin() { f() }

// Option is a functional option for configuring the session manager.
type Option func(*Manager)

// WithHTTPClient sets a custom HTTP client for auth requests.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		if client != nil {
			m.httpClient = client
		}
	}
}

// WithNavigator sets the navigation sink invoked on logout.
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) {
		if nav != nil {
			m.nav = nav
		}
	}
}
