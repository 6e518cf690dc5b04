package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/services"
)

// StatisticsController serves the dashboard overview
type StatisticsController struct {
	statsService *services.StatsService
}

// NewStatisticsController creates a new StatisticsController
func NewStatisticsController(statsService *services.StatsService) *StatisticsController {
	return &StatisticsController{statsService: statsService}
}

// GetStatistics returns the dashboard figures
// @Summary Get statistics overview
// @Description Returns incident counts, penalty rate, top incident types and the grade distribution
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.StatisticsResponse "Statistics retrieved successfully"
// @Router /statistics [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.statsService.Overview())
}
