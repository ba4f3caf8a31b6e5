package v1

import (
	"net/http"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the calibration overview
type DashboardHandler interface {
	Calibration(ctx *gin.Context)
}

type dashboardHandler struct {
	monitoringService monitoring.MonitoringService
	now               func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(monitoringService monitoring.MonitoringService) DashboardHandler {
	return &dashboardHandler{
		monitoringService: monitoringService,
		now:               calibration.Now,
	}
}

func (handler *dashboardHandler) Calibration(ctx *gin.Context) {
	overview, err := handler.monitoringService.Overview(ctx, handler.now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, overview)
}
