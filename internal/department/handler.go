package department

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DepartmentHandler exposes department admin operations over HTTP.
type DepartmentHandler struct {
	service *DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(service *DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List returns the departments table.
func (h *DepartmentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List())
}

// Submit handles the department form, updating when an edit is in progress.
func (h *DepartmentHandler) Submit(c echo.Context) error {
	var req DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.Submit(req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Department saved"})
}

// Edit loads a department into the edit form.
func (h *DepartmentHandler) Edit(c echo.Context) error {
	dept, err := h.service.BeginEdit(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Department not found"})
	}
	return c.JSON(http.StatusOK, dept)
}

// CancelEdit clears the edit form.
func (h *DepartmentHandler) CancelEdit(c echo.Context) error {
	h.service.CancelEdit()
	return c.JSON(http.StatusOK, map[string]string{"message": "Edit cancelled"})
}

// Delete removes a department.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Department not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Department deleted"})
}
