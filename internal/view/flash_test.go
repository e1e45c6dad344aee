package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	// Create a new session store for the test.
	store := sessions.NewCookieStore([]byte(testSessionSecret))
	// Create a middleware function that will be used to wrap our test handler.
	sessionMiddleware := session.Middleware(store)

	// Create a dummy handler that will be wrapped by the session middleware.
	// This ensures the session is properly initialized in the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		// Set a success flash
		view.SetFlashSuccess(c, "It worked!")

		// Get flashes
		flashes := view.GetFlashData(c)

		// Assert against the struct fields
		assert.NotEmpty(t, flashes.Success)
		assert.Equal(t, "It worked!", flashes.Success[0])
		assert.Empty(t, flashes.Error)

		// Get flashes again to ensure they are cleared
		flashesAfterRead := view.GetFlashData(c)
		assert.Empty(t, flashesAfterRead.Success, "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		// Set an error flash
		view.SetFlashError(c, "It failed!")

		// Get flashes
		flashes := view.GetFlashData(c)

		// Assert against the struct fields
		assert.NotEmpty(t, flashes.Error)
		assert.Equal(t, "It failed!", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("GetFlashes with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		flashes := view.GetFlashData(c)
		assert.Empty(t, flashes.Success, "Success flashes should be empty")
		assert.Empty(t, flashes.Error, "Error flashes should be empty")
		assert.True(t, flashes.Empty())
	})

	t.Run("GetFlashData without a session store", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		view.SetFlashSuccess(c, "lost")
		assert.True(t, view.GetFlashData(c).Empty())
	})
}

func TestAdapters(t *testing.T) {
	node := h.Span(g.Text("gomponent"))
	comp := view.AdaptGomponentToTempl(node)

	var b strings.Builder
	require.NoError(t, comp.Render(context.Background(), &b))
	assert.Equal(t, "<span>gomponent</span>", b.String())

	b.Reset()
	back := view.AdaptTemplToGomponent(context.Background(), comp)
	require.NoError(t, h.Div(back).Render(&b))
	assert.Equal(t, "<div><span>gomponent</span></div>", b.String())
}
