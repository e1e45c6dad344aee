package server_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/folio/internal/app"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/server"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddr:    ":0",
		AppBaseURL:    "http://localhost",
		SessionSecret: "a-very-secret-key-for-testing-!",
		LogFormat:     "text",
		LogLevel:      "error",
		DefaultTheme:  "system",
		SubmitDelay:   2 * time.Second,
		ResetDelay:    3 * time.Second,
	}
}

type fixture struct {
	server *server.Server
	deps   server.Dependencies
	http   *httptest.Server
	client *http.Client
}

// setupServer wires a full server the way the serve command does, backed by
// an in-memory filesystem, and serves it over httptest.
func setupServer(t *testing.T) *fixture {
	t.Helper()

	cfg := testConfig()
	deps, err := server.Resolve(server.NewContainer(cfg, afero.NewMemMapFs()))
	require.NoError(t, err)

	s, err := server.New(deps)
	require.NoError(t, err)

	modules := app.NewModules(app.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
	})
	require.NoError(t, s.InitModules(s.Context(), modules, registry.New(cfg)))
	s.RegisterRoutes()
	require.NoError(t, s.StartBackground())

	ts := httptest.NewServer(s.E)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, s.Shutdown(ctx))
		ts.Close()
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar:     jar,
		Timeout: 5 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &fixture{server: s, deps: deps, http: ts, client: client}
}
