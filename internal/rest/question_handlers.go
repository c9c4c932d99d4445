package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Questions handles GET /api/questions
// @Summary List all questions
// @Produce json
// @Success 200 {object} rest.DataResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/questions [get]
func (h *Handler) Questions(c echo.Context) error {
	questions, err := storeFrom(c).Questions(c.Request().Context())
	if err != nil {
		return h.errorJSON(c, err, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data: Map(questions, NewQuestionResource),
	})
}

// QuestionByID handles GET /api/questions/:id
// @Summary Get a question by ID
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} rest.DataResponse
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/questions/{id} [get]
func (h *Handler) QuestionByID(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))

	question, err := storeFrom(c).QuestionByID(c.Request().Context(), id)
	if err != nil {
		return h.errorJSON(c, err, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
	if question == nil {
		return h.notFound(c, "Question not found")
	}

	return c.JSON(http.StatusOK, DataResponse{Data: NewQuestionResource(*question)})
}

// QuestionsByCategory handles GET /api/questions/category/:categoryId
// @Summary List questions in a category
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} rest.DataResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/questions/category/{categoryId} [get]
func (h *Handler) QuestionsByCategory(c echo.Context) error {
	categoryID, _ := strconv.Atoi(c.Param("categoryId"))

	questions, err := storeFrom(c).QuestionsByCategoryID(c.Request().Context(), categoryID)
	if err != nil {
		return h.errorJSON(c, err, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data: Map(questions, NewQuestionResource),
	})
}

// CreateQuestion handles POST /api/questions
// @Summary Create a question
// @Accept json
// @Produce json
// @Param question body rest.QuestionInsert true "Question payload"
// @Success 200 {object} rest.CommitResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/questions [post]
func (h *Handler) CreateQuestion(c echo.Context) error {
	var payload QuestionInsert
	if err := bindStrict(c, &payload); err != nil {
		return h.validationError(c, err, []ErrorDetail{{Detail: err.Error()}})
	}
	if details := validatePayload(payload); len(details) > 0 {
		return h.validationError(c, nil, details)
	}

	result, err := storeFrom(c).CreateQuestion(c.Request().Context(), payload.toInput())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, CommitResponse{
		Message:  "Question created",
		Response: CommitDetails{RowsAffected: result.RowsAffected, ID: &result.LastInsertID},
	})
}

// UpdateQuestion handles PUT /api/questions/:id
// @Summary Update a question
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body rest.QuestionUpdate true "Partial question payload"
// @Success 200 {object} rest.CommitResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/questions/{id} [put]
func (h *Handler) UpdateQuestion(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))

	var payload QuestionUpdate
	if err := bindStrict(c, &payload); err != nil {
		return h.validationError(c, err, []ErrorDetail{{Detail: err.Error()}})
	}
	if details := validatePayload(payload); len(details) > 0 {
		return h.validationError(c, nil, details)
	}

	result, err := storeFrom(c).UpdateQuestion(c.Request().Context(), id, payload.toPatch())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, CommitResponse{
		Message:  "Question updated",
		Response: CommitDetails{RowsAffected: result.RowsAffected},
	})
}

// DeleteQuestion handles DELETE /api/questions/:id
// @Summary Delete a question
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} rest.CommitResponse
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/questions/{id} [delete]
func (h *Handler) DeleteQuestion(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))

	result, err := storeFrom(c).DeleteQuestion(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, CommitResponse{
		Message:  "Question deleted",
		Response: CommitDetails{RowsAffected: result.RowsAffected},
	})
}
