package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dataforge-io/dataforge-go/core/gateway"
)

// ErrLoadFailed is returned when the template list cannot be fetched. The
// server-provided message is attached when present.
var ErrLoadFailed = errors.New("failed to load templates")

// Template is an immutable report template descriptor.
type Template struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// State is the loader's position in its fetch lifecycle.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// View is a snapshot of the loader state for the presentation layer.
type View struct {
	State     State
	Templates []Template
	Message   string
}

// Loader performs the one-shot template fetch and exposes the reconciled
// loading/error/ready state.
type Loader struct {
	gw *gateway.Client

	mu   sync.Mutex
	view View
}

// NewLoader creates a template catalog loader over the given gateway.
func NewLoader(gw *gateway.Client) *Loader {
	return &Loader{
		gw:   gw,
		view: View{State: StateLoading},
	}
}

type templatesResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Templates []Template `json:"templates"`
	} `json:"data"`
}

// Load fetches the template list and settles the loader into StateReady or
// StateError. A 401 is handled by the gateway (logout plus navigation); the
// loader simply reports the terminal error.
func (l *Loader) Load(ctx context.Context) ([]Template, error) {
	l.setView(View{State: StateLoading})

	var resp templatesResponse
	if err := l.gw.Get(ctx, "/api/templates", &resp); err != nil {
		err = errors.Join(ErrLoadFailed, err)
		l.setView(View{State: StateError, Message: err.Error()})
		return nil, err
	}

	if resp.Status != "success" {
		err := ErrLoadFailed
		if resp.Message != "" {
			err = fmt.Errorf("%w: %s", ErrLoadFailed, resp.Message)
		}
		l.setView(View{State: StateError, Message: err.Error()})
		return nil, err
	}

	l.setView(View{State: StateReady, Templates: resp.Data.Templates})
	return resp.Data.Templates, nil
}

// Snapshot returns the current loader view.
func (l *Loader) Snapshot() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view
}

func (l *Loader) setView(v View) {
	l.mu.Lock()
	l.view = v
	l.mu.Unlock()
}
