package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Categories handles GET /api/categories
// @Summary List all categories
// @Produce json
// @Success 200 {object} rest.DataResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := storeFrom(c).Categories(c.Request().Context())
	if err != nil {
		return h.errorJSON(c, err, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data: Map(categories, NewCategoryResource),
	})
}

// CategoryByID handles GET /api/categories/:id
// @Summary Get a category by ID
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.DataResponse
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/categories/{id} [get]
func (h *Handler) CategoryByID(c echo.Context) error {
	// A non-numeric id is not rejected: it parses to 0, which never
	// matches a row, so the lookup misses.
	id, _ := strconv.Atoi(c.Param("id"))

	category, err := storeFrom(c).CategoryByID(c.Request().Context(), id)
	if err != nil {
		return h.errorJSON(c, err, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
	if category == nil {
		return h.notFound(c, "Category not found")
	}

	return c.JSON(http.StatusOK, DataResponse{Data: NewCategoryResource(*category)})
}

// CreateCategory handles POST /api/categories
// @Summary Create a category
// @Accept json
// @Produce json
// @Param category body rest.CategoryInsert true "Category payload"
// @Success 200 {object} rest.CommitResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var payload CategoryInsert
	if err := bindStrict(c, &payload); err != nil {
		return h.validationError(c, err, []ErrorDetail{{Detail: err.Error()}})
	}
	if details := validatePayload(payload); len(details) > 0 {
		return h.validationError(c, nil, details)
	}

	result, err := storeFrom(c).CreateCategory(c.Request().Context(), payload.toInput())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, CommitResponse{
		Message:  "Category created",
		Response: CommitDetails{RowsAffected: result.RowsAffected, ID: &result.LastInsertID},
	})
}

// UpdateCategory handles PUT /api/categories/:id
// @Summary Update a category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body rest.CategoryUpdate true "Partial category payload"
// @Success 200 {object} rest.CommitResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))

	var payload CategoryUpdate
	if err := bindStrict(c, &payload); err != nil {
		return h.validationError(c, err, []ErrorDetail{{Detail: err.Error()}})
	}
	if details := validatePayload(payload); len(details) > 0 {
		return h.validationError(c, nil, details)
	}

	result, err := storeFrom(c).UpdateCategory(c.Request().Context(), id, payload.toPatch())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, CommitResponse{
		Message:  "Category updated",
		Response: CommitDetails{RowsAffected: result.RowsAffected},
	})
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.CommitResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))

	result, err := storeFrom(c).DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, CommitResponse{
		Message:  "Category deleted",
		Response: CommitDetails{RowsAffected: result.RowsAffected},
	})
}
