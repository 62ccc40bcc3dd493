package handlers

import (
	portssvc "github.com/example/corebank/internal/core/ports/services"
	"github.com/example/corebank/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facade.
func RegisterRoutes(r *gin.Engine, ledgerService portssvc.LedgerSvcFacade, limiterInstance *limiter.Limiter) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	if limiterInstance != nil {
		v1.Use(middleware.RateLimit(limiterInstance))
	}

	registerAccountRoutes(v1, ledgerService)
	registerLedgerRoutes(v1, ledgerService)
}
