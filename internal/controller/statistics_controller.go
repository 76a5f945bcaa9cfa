package controller

import (
	"traininghub_backend/internal/service"
	"traininghub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Service *service.StatisticsService
}

func NewStatisticsController(svc *service.StatisticsService) *StatisticsController {
	return &StatisticsController{Service: svc}
}

// @Summary Company-wide assessment statistics
// @Description Completion, pass rates, and mandatory-training compliance for
// @Description the caller's company. Either the full object or an error,
// @Description never partial numbers.
// @Tags statistics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/business/statistics [get]
func (c *StatisticsController) CompanyStatistics(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	stats, err := c.Service.CompanyStatistics(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
