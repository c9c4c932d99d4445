package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quizzle-app/quizzle/config"
	"github.com/quizzle-app/quizzle/internal/quizzle"
)

// Handler wires the request pipeline: middleware chain, validation, service
// calls and the response envelope.
type Handler struct {
	cfg *config.Config
	log *slog.Logger

	// newStore builds a fresh store handle; the provisioning middleware
	// attaches one per request.
	newStore func() *quizzle.Manager
}

func NewHandler(cfg *config.Config, newStore func() *quizzle.Manager, log *slog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		log:      log,
		newStore: newStore,
	}
}

func (h *Handler) errorJSON(c echo.Context, err error, status int, id, message string, details []ErrorDetail) error {
	h.log.Error("request failed",
		"error", err,
		"status", status,
		"id", id,
		"message", message,
	)

	return c.JSON(status, ErrorResponse{
		ID:      id,
		Status:  status,
		Message: message,
		Errors:  details,
	})
}

func (h *Handler) notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		ID:      "not_found",
		Status:  http.StatusNotFound,
		Message: message,
		Errors:  []ErrorDetail{{Detail: message}},
	})
}

func (h *Handler) validationError(c echo.Context, err error, details []ErrorDetail) error {
	return h.errorJSON(c, err, http.StatusBadRequest, "validation_error", "Validation failed", details)
}

// writeError maps service failures onto the error envelope. Zero-rows writes
// carry their operation code; anything else becomes a generic 500.
func (h *Handler) writeError(c echo.Context, err error) error {
	var perr *quizzle.PersistenceError
	if errors.As(err, &perr) {
		detail := "Failed to write record"
		switch perr.Op {
		case quizzle.OpCreate:
			detail = "Failed to create record"
		case quizzle.OpUpdate:
			detail = "Failed to update record"
		case quizzle.OpDelete:
			detail = "Failed to delete record"
		}

		return h.errorJSON(c, err, http.StatusInternalServerError, perr.Op, detail,
			[]ErrorDetail{{Detail: detail}})
	}

	return h.errorJSON(c, err, http.StatusInternalServerError, "internal_error", "internal error",
		[]ErrorDetail{{Detail: "internal error"}})
}

// Health handles GET /api/health
// @Summary Health check
// @Produce json
// @Success 200 {object} rest.DataResponse
// @Router /api/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, DataResponse{
		Data: HealthResource{
			Type:       TypeHealthCheck,
			ID:         http.StatusOK,
			Attributes: HealthAttributes{Status: "UP"},
		},
	})
}
