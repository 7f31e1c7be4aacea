package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-widget/internal/models"
	"weather-widget/internal/widget"
	"weather-widget/pkg/httpserver"
)

// maxSearchWait bounds how long ?wait=true holds a request open.
const maxSearchWait = 30 * time.Second

// MountRequest carries the position the browser shared, if any.
type MountRequest struct {
	Lat *float64 `json:"lat,omitempty" example:"38.7223"`
	Lon *float64 `json:"lon,omitempty" example:"-9.1393"`
}

type CityRequest struct {
	City string `json:"city" example:"London"`
}

type FocusRequest struct {
	Focused bool `json:"focused" example:"true"`
}

type KeyRequest struct {
	Key string `json:"key" example:"Enter"`
}

// PreferencesRequest changes only the fields that are present.
type PreferencesRequest struct {
	Unit         *models.Unit `json:"unit,omitempty" example:"imperial"`
	DarkMode     *bool        `json:"dark_mode,omitempty" example:"true"`
	SettingsOpen *bool        `json:"settings_open,omitempty" example:"false"`
}

// MountWidget godoc
// @Summary Mount a widget
// @Description Creates a widget. A posted position is used once to pre-fill the city.
// @Tags Widgets
// @Accept json
// @Produce json
// @Param request body MountRequest false "Browser position"
// @Success 201 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 503 {object} httpserver.ErrorResponse
// @Router /widgets [post]
func (r *routes) handleMount(c *fiber.Ctx) error {
	var req MountRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	var locator widget.Locator = widget.NoLocator{}
	if req.Lat != nil || req.Lon != nil {
		if req.Lat == nil || req.Lon == nil {
			return badRequest(c, "lat and lon must be given together")
		}
		pos := models.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
		if err := pos.Validate(); err != nil {
			return badRequest(c, err.Error())
		}
		locator = widget.StaticLocator{Position: pos}
	}

	w, err := r.registry.Mount(locator)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(w.Render())
}

// GetWidget godoc
// @Summary Render a widget
// @Tags Widgets
// @Produce json
// @Param id path string true "Widget ID"
// @Success 200 {object} widget.View
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /widgets/{id} [get]
func (r *routes) handleView(c *fiber.Ctx) error {
	w, err := r.widget(c)
	if err != nil {
		return err
	}
	return c.JSON(w.Render())
}

// UnmountWidget godoc
// @Summary Unmount a widget
// @Description Cancels any lookup in flight and forgets the widget.
// @Tags Widgets
// @Param id path string true "Widget ID"
// @Success 204
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /widgets/{id} [delete]
func (r *routes) handleUnmount(c *fiber.Ctx) error {
	if err := r.registry.Unmount(c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetCity godoc
// @Summary Replace the search text
// @Tags Widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget ID"
// @Param request body CityRequest true "Search text"
// @Success 200 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /widgets/{id}/city [put]
func (r *routes) handleSetCity(c *fiber.Ctx) error {
	w, err := r.widget(c)
	if err != nil {
		return err
	}

	var req CityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	w.SetCity(req.City)
	return c.JSON(w.Render())
}

// SetFocus godoc
// @Summary Focus or blur the search input
// @Tags Widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget ID"
// @Param request body FocusRequest true "Focus state"
// @Success 200 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /widgets/{id}/focus [put]
func (r *routes) handleSetFocus(c *fiber.Ctx) error {
	w, err := r.widget(c)
	if err != nil {
		return err
	}

	var req FocusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	w.SetFocus(req.Focused)
	return c.JSON(w.Render())
}

// KeyDown godoc
// @Summary Deliver a key press to the search input
// @Description Enter submits the current text while the input is focused.
// @Tags Widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget ID"
// @Param request body KeyRequest true "Key name"
// @Success 200 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /widgets/{id}/keys [post]
func (r *routes) handleKeyDown(c *fiber.Ctx) error {
	w, err := r.widget(c)
	if err != nil {
		return err
	}

	var req KeyRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return badRequest(c, "Invalid request body")
	}

	if w.KeyDown(req.Key) {
		r.waitIfAsked(c, w)
	}
	return c.JSON(w.Render())
}

// Search godoc
// @Summary Submit the current search text
// @Description Blank text is ignored. With wait=true the response is sent once the lookup has settled.
// @Tags Widgets
// @Produce json
// @Param id path string true "Widget ID"
// @Param wait query bool false "Block until the lookup settles"
// @Success 200 {object} widget.View
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /widgets/{id}/search [post]
func (r *routes) handleSearch(c *fiber.Ctx) error {
	w, err := r.widget(c)
	if err != nil {
		return err
	}

	if w.Submit() {
		r.waitIfAsked(c, w)
	}
	return c.JSON(w.Render())
}

// DismissError godoc
// @Summary Dismiss the error message
// @Tags Widgets
// @Produce json
// @Param id path string true "Widget ID"
// @Success 200 {object} widget.View
// @Failure 404 {object} httpserver.ErrorResponse
// @Router /widgets/{id}/dismiss [post]
func (r *routes) handleDismiss(c *fiber.Ctx) error {
	w, err := r.widget(c)
	if err != nil {
		return err
	}

	w.DismissError()
	return c.JSON(w.Render())
}

// SetPreferences godoc
// @Summary Change unit, dark mode or settings panel state
// @Description Only available when the widget shows settings.
// @Tags Widgets
// @Accept json
// @Produce json
// @Param id path string true "Widget ID"
// @Param request body PreferencesRequest true "Preferences to change"
// @Success 200 {object} widget.View
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 409 {object} httpserver.ErrorResponse "Settings are disabled"
// @Router /widgets/{id}/preferences [put]
func (r *routes) handlePreferences(c *fiber.Ctx) error {
	w, err := r.widget(c)
	if err != nil {
		return err
	}

	var req PreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.Unit != nil {
		if _, err := models.ParseUnit(string(*req.Unit)); err != nil {
			return badRequest(c, err.Error())
		}
	}

	var errs []error
	if req.Unit != nil {
		errs = append(errs, w.SetUnit(*req.Unit))
	}
	if req.DarkMode != nil {
		errs = append(errs, w.SetDarkMode(*req.DarkMode))
	}
	if req.SettingsOpen != nil {
		errs = append(errs, w.SetSettingsOpen(*req.SettingsOpen))
	}

	for _, err := range errs {
		if errors.Is(err, widget.ErrSettingsDisabled) {
			return c.Status(fiber.StatusConflict).JSON(httpserver.ErrorResponse{Error: err.Error()})
		}
		if err != nil {
			return err
		}
	}

	return c.JSON(w.Render())
}

func (r *routes) widget(c *fiber.Ctx) (*widget.Widget, error) {
	w, err := r.registry.Get(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return w, nil
}

// waitIfAsked holds the request until the lookup settles when ?wait=true.
// A timeout still answers with the current view.
func (r *routes) waitIfAsked(c *fiber.Ctx, w *widget.Widget) {
	wait, _ := strconv.ParseBool(c.Query("wait"))
	if !wait {
		return
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), maxSearchWait)
	defer cancel()

	if err := w.Wait(ctx); err != nil {
		r.l.Warning("search did not settle in time", map[string]any{"widget": w.ID(), "err": err.Error()})
	}
}
