package request

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequestHandler exposes item-request operations over HTTP.
type RequestHandler struct {
	service *RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create submits a request for the session account.
func (h *RequestHandler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	rec, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// Mine returns the session account's requests.
func (h *RequestHandler) Mine(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Mine())
}

// All returns every request for the admin view.
func (h *RequestHandler) All(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.All())
}

// SetStatus approves or rejects a request.
func (h *RequestHandler) SetStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.SetStatus(c.Param("id"), req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated"})
}
