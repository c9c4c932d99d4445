package rest

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/quizzle-app/quizzle/config"
	"github.com/quizzle-app/quizzle/internal/quizzle"
)

const (
	// storeKey is the context slot the provisioning middleware fills and
	// every handler reads.
	storeKey = "store"
	// authKey holds the verified token claims for bearer requests.
	authKey = "auth"
)

// requireAuth picks the configured scheme. Exactly one of basic or bearer is
// active per deployment; failures short-circuit before logging runs.
func (h *Handler) requireAuth() echo.MiddlewareFunc {
	if h.cfg.Auth.Scheme == config.AuthSchemeBearer {
		return h.requireBearer
	}
	return h.requireBasic
}

func (h *Handler) requireBasic(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, password, ok := c.Request().BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.Auth.Username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.Auth.Password)) == 1
		if !ok || !userMatch || !passMatch {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
			return h.unauthorized(c)
		}

		return next(c)
	}
}

func (h *Handler) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return h.unauthorized(c)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return h.unauthorized(c)
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(h.cfg.Auth.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return h.unauthorized(c)
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set(authKey, claims)
		}

		return next(c)
	}
}

func (h *Handler) unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		ID:      "unauthorized",
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized",
		Errors:  []ErrorDetail{{Detail: "Missing or invalid credentials"}},
	})
}

// requestLogger records method, path, status and duration for every request
// that reaches it. Logging never fails the request.
func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
			)
			return nil
		},
	})
}

// rateLimit keys on the X-Real-IP header. Clients without the header share
// the empty-string bucket. Rate 0 disables the stage.
func (h *Handler) rateLimit() echo.MiddlewareFunc {
	if h.cfg.RateLimit.Rate <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(h.cfg.RateLimit.Rate),
			Burst:     h.cfg.RateLimit.Burst,
			ExpiresIn: h.cfg.RateLimit.ExpiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.Request().Header.Get(echo.HeaderXRealIP), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, ErrorResponse{
				ID:      "rate_limit_exceeded",
				Status:  http.StatusTooManyRequests,
				Message: "Too many requests",
				Errors:  []ErrorDetail{{Detail: "Too many requests. Please try again later."}},
			})
		},
	})
}

// withStore attaches a store handle to the request context if one is not
// already present. Rejected requests never reach this stage, so they never
// open a handle.
func (h *Handler) withStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Get(storeKey) == nil {
			c.Set(storeKey, h.newStore())
		}
		return next(c)
	}
}

func storeFrom(c echo.Context) *quizzle.Manager {
	return c.Get(storeKey).(*quizzle.Manager)
}
