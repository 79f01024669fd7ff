package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "taskforperks.com/taskforperks/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks/:id/claims", h.SubmitClaim)
	e.GET("/tasks/:id", h.GetTask)
}
