package rest

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes builds the echo instance with the full middleware chain on
// the /api group. Order matters: auth rejects first, then the logger sees the
// request, then the limiter, and only admitted requests get a store handle.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	api := e.Group("/api",
		h.requireAuth(),
		h.requestLogger(),
		h.rateLimit(),
		h.withStore,
	)

	api.GET("/health", h.Health)

	api.GET("/categories", h.Categories)
	api.POST("/categories", h.CreateCategory)
	api.GET("/categories/:id", h.CategoryByID)
	api.PUT("/categories/:id", h.UpdateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)

	api.GET("/questions", h.Questions)
	api.POST("/questions", h.CreateQuestion)
	api.GET("/questions/category/:categoryId", h.QuestionsByCategory)
	api.GET("/questions/:id", h.QuestionByID)
	api.PUT("/questions/:id", h.UpdateQuestion)
	api.DELETE("/questions/:id", h.DeleteQuestion)

	return e
}
