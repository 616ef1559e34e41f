package reports

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dataforge-io/dataforge-go/core/gateway"
)

// State is the controller's reconciled view state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
	// StateEmpty means the fetch nominally succeeded but returned no report
	// body. Distinct from StateError so the presentation layer can offer a
	// "start over" action rather than a "try again" action.
	StateEmpty
)

// View is a snapshot of the fetch lifecycle for the presentation layer.
// Report is non-nil only in StateReady.
type View struct {
	State   State
	Report  *Report
	Message string
}

// Controller drives the authenticated report-fetch lifecycle.
type Controller struct {
	gw *gateway.Client

	mu   sync.Mutex
	gen  uint64
	view View
}

// NewController creates a report fetch controller over the given gateway.
func NewController(gw *gateway.Client) *Controller {
	return &Controller{
		gw:   gw,
		view: View{State: StateLoading},
	}
}

type reportResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Report *Report `json:"report"`
	} `json:"data"`
}

// Fetch retrieves the report with the given id and settles the controller
// into Ready, Error, or Empty. A fetch initiated later wins over this one if
// this one settles after it; the discarded result leaves the newer view
// untouched. The returned view is the controller's current view after
// settling.
func (c *Controller) Fetch(ctx context.Context, reportID int64) View {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.view = View{State: StateLoading}
	c.mu.Unlock()

	var resp reportResponse
	err := c.gw.Get(ctx, fmt.Sprintf("/api/reports/%d", reportID), &resp)

	return c.settle(gen, reconcile(resp, err))
}

// Snapshot returns the current view without initiating a fetch.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// List fetches the report listing for the authenticated user.
func (c *Controller) List(ctx context.Context) ([]Summary, error) {
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Reports []Summary `json:"reports"`
		} `json:"data"`
	}
	if err := c.gw.Get(ctx, "/api/reports", &resp); err != nil {
		return nil, errors.Join(ErrListFailed, err)
	}
	if resp.Status != "success" {
		if resp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrListFailed, resp.Message)
		}
		return nil, ErrListFailed
	}
	return resp.Data.Reports, nil
}

// settle applies a fetch result unless a newer fetch has been initiated since.
func (c *Controller) settle(gen uint64, view View) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Stale result for a now-irrelevant fetch; keep the newer view.
		return c.view
	}
	c.view = view
	return view
}

// reconcile maps a fetch result onto the view state machine. The message is
// drawn, in priority order, from the server's error field, the server's
// message field, the transport classification, the wrapped error text, and a
// generic fallback. The gateway folds the first three into err.
func reconcile(resp reportResponse, err error) View {
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = ErrLoadFailed.Error()
		}
		return View{State: StateError, Message: msg}
	}

	if resp.Status != "success" {
		msg := resp.Message
		if msg == "" {
			msg = ErrLoadFailed.Error()
		}
		return View{State: StateError, Message: msg}
	}

	if resp.Data.Report == nil {
		return View{State: StateEmpty}
	}
	return View{State: StateReady, Report: resp.Data.Report}
}
