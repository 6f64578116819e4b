package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler defines the interface for the liveness probe endpoint
type HealthHandler interface {
	Healthcheck(ctx *gin.Context)
}

type healthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{db: db}
}

// Healthcheck reports whether the service can reach its database. Container
// runtimes poll this endpoint; it requires no authentication.
func (handler *healthHandler) Healthcheck(ctx *gin.Context) {
	sqlDB, err := handler.db.DB()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
