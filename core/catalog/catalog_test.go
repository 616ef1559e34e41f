package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataforge-io/dataforge-go/core/catalog"
	"github.com/dataforge-io/dataforge-go/core/gateway"
)

type staticSession struct{ token string }

func (s *staticSession) Token() (string, bool) { return s.token, s.token != "" }
func (s *staticSession) Logout() error         { return nil }

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("ready state carries the template list", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/templates", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"status": "success",
				"data": map[string]any{
					"templates": []map[string]any{
						{"id": 1, "name": "Sales Overview", "description": "Revenue and trends", "icon": "chart"},
						{"id": 2, "name": "Data Quality", "description": "Completeness checks", "icon": "shield"},
					},
				},
			})
		}))
		defer srv.Close()

		loader := catalog.NewLoader(gateway.New(srv.URL, &staticSession{token: "tok"}))

		templates, err := loader.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, templates, 2)
		assert.Equal(t, int64(1), templates[0].ID)
		assert.Equal(t, "Sales Overview", templates[0].Name)

		view := loader.Snapshot()
		assert.Equal(t, catalog.StateReady, view.State)
		assert.Len(t, view.Templates, 2)
	})

	t.Run("non-success status yields error state with server message", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"status":  "error",
				"message": "templates unavailable",
			})
		}))
		defer srv.Close()

		loader := catalog.NewLoader(gateway.New(srv.URL, &staticSession{token: "tok"}))

		_, err := loader.Load(context.Background())
		require.ErrorIs(t, err, catalog.ErrLoadFailed)
		assert.Contains(t, err.Error(), "templates unavailable")

		view := loader.Snapshot()
		assert.Equal(t, catalog.StateError, view.State)
		assert.Contains(t, view.Message, "templates unavailable")
	})

	t.Run("transport failure settles into error state", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		loader := catalog.NewLoader(gateway.New(srv.URL, &staticSession{token: "tok"}))

		_, err := loader.Load(context.Background())
		assert.ErrorIs(t, err, gateway.ErrUnreachable)
		assert.Equal(t, catalog.StateError, loader.Snapshot().State)
	})

	t.Run("loader starts in loading state", func(t *testing.T) {
		t.Parallel()

		loader := catalog.NewLoader(gateway.New("http://localhost:5000", &staticSession{token: "tok"}))
		assert.Equal(t, catalog.StateLoading, loader.Snapshot().State)
	})
}
