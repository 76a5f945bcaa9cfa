package controller

import (
	"errors"
	"traininghub_backend/internal/service"
	"traininghub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Service *service.SubmissionService
	Auth    *service.AuthService
}

func NewSubmissionController(svc *service.SubmissionService, auth *service.AuthService) *SubmissionController {
	return &SubmissionController{Service: svc, Auth: auth}
}

// @Summary Submit answers for an assessment
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Param body body service.SubmitRequest true "answers"
// @Success 201 {object} util.Response
// @Router /api/assessments/{id}/submit [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	user := c.Auth.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.Service.SubmitAssessment(user, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAssessmentInactive):
			util.Error(ctx, 403, err.Error())
		case errors.Is(err, util.ErrAlreadySubmitted):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, submission)
}

// @Summary Get the current employee's result for an assessment
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id}/result [get]
func (c *SubmissionController) GetMyResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Service.GetResult(util.MustParseUint(ctx.Param("id")), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary List the current employee's submissions
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/submissions/my [get]
func (c *SubmissionController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ss, err := c.Service.ListMine(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ss)
}

// @Summary List submissions for an assessment
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/business/assessments/{id}/submissions [get]
func (c *SubmissionController) ListByAssessment(ctx *gin.Context) {
	page, limit := pageParams(ctx)

	ss, total, err := c.Service.ListByAssessment(util.MustParseUint(ctx.Param("id")), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: ss, Total: total, Page: page, Limit: limit})
}

// @Summary Get one submission with its graded responses
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param submissionId path string true "submission id"
// @Success 200 {object} util.Response
// @Router /api/business/submissions/{submissionId} [get]
func (c *SubmissionController) GetDetail(ctx *gin.Context) {
	detail, err := c.Service.GetSubmissionDetail(ctx.Param("submissionId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, detail)
}
