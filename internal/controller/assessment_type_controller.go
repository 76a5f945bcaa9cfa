package controller

import (
	"traininghub_backend/internal/service"
	"traininghub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentTypeController struct {
	Service *service.AssessmentTypeService
}

func NewAssessmentTypeController(svc *service.AssessmentTypeService) *AssessmentTypeController {
	return &AssessmentTypeController{Service: svc}
}

// @Summary Create an assessment type
// @Tags assessment-types
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AssessmentTypeRequest true "assessment type"
// @Success 201 {object} util.Response
// @Router /api/business/assessment-types [post]
func (c *AssessmentTypeController) Create(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	var req service.AssessmentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.Service.Create(companyID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, t)
}

// @Summary List the company's assessment types
// @Tags assessment-types
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/business/assessment-types [get]
func (c *AssessmentTypeController) List(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	ts, err := c.Service.ListByCompany(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ts)
}

// @Summary Get one assessment type
// @Tags assessment-types
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment type id"
// @Success 200 {object} util.Response
// @Router /api/business/assessment-types/{id} [get]
func (c *AssessmentTypeController) Get(ctx *gin.Context) {
	t, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, t)
}

// @Summary Update an assessment type
// @Tags assessment-types
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment type id"
// @Param body body service.AssessmentTypeRequest true "assessment type"
// @Success 200 {object} util.Response
// @Router /api/business/assessment-types/{id} [put]
func (c *AssessmentTypeController) Update(ctx *gin.Context) {
	var req service.AssessmentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.Service.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, t)
}

// @Summary Delete an assessment type
// @Tags assessment-types
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment type id"
// @Success 200 {object} util.Response
// @Router /api/business/assessment-types/{id} [delete]
func (c *AssessmentTypeController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
