package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/appctx"
	"github.com/nfrund/folio/internal/middleware"
	"github.com/nfrund/folio/internal/view"
)

// ThemeHandler switches the visitor's color theme.
type ThemeHandler struct {
	contexts *appctx.Provider
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(contexts *appctx.Provider) *ThemeHandler {
	return &ThemeHandler{contexts: contexts}
}

// Post stores the chosen theme. htmx requests get 204 and a refresh; plain
// form posts are redirected back with a flash message.
func (h *ThemeHandler) Post(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	htmx := c.Request().Header.Get("HX-Request") == "true"

	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		logger.Debug("Rejected theme", "theme", req.Theme, "error", err)
		if htmx {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_theme", Message: "theme must be light, dark or system"})
		}
		view.SetFlashError(c, "Unknown theme.")
		return c.Redirect(http.StatusSeeOther, back(c))
	}

	theme := appctx.Theme(req.Theme)
	if err := h.contexts.SetTheme(c, theme); err != nil {
		return err
	}
	logger.Info("Theme changed", "theme", theme)

	if htmx {
		c.Response().Header().Set("HX-Refresh", "true")
		return c.NoContent(http.StatusNoContent)
	}
	view.SetFlashSuccess(c, "Theme set to "+req.Theme+".")
	return c.Redirect(http.StatusSeeOther, back(c))
}

// back returns the local page the request came from, or the home page.
func back(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return "/"
	}
	u, err := c.Request().URL.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request().Host) {
		return "/"
	}
	if u.Path == "" {
		return "/"
	}
	return u.RequestURI()
}
