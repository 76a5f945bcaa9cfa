package controller

import (
	"errors"
	"strconv"
	"traininghub_backend/internal/service"
	"traininghub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
	Auth    *service.AuthService
}

func NewAssessmentController(svc *service.AssessmentService, auth *service.AuthService) *AssessmentController {
	return &AssessmentController{Service: svc, Auth: auth}
}

func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = util.DefaultPage
	}
	if limit < 1 || limit > util.MaxLimit {
		limit = util.DefaultLimit
	}
	return page, limit
}

// companyScope pulls the caller's company from the JWT claims. Business
// endpoints are meaningless without a tenant.
func companyScope(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	if claims.CompanyID == nil {
		util.Error(ctx, 403, util.ErrNoCompany.Error())
		return 0, false
	}
	return *claims.CompanyID, true
}

// @Summary Create an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AssessmentRequest true "assessment"
// @Success 201 {object} util.Response
// @Router /api/business/assessments [post]
func (c *AssessmentController) Create(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Create(companyID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, a)
}

// @Summary List the company's assessments
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param active query bool false "active only"
// @Success 200 {object} util.Response
// @Router /api/business/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	page, limit := pageParams(ctx)
	activeOnly := ctx.Query("active") == "true"

	as, total, err := c.Service.ListByCompany(companyID, activeOnly, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: as, Total: total, Page: page, Limit: limit})
}

// @Summary Get one assessment
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/business/assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	a, err := c.Service.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, a)
}

// @Summary Update an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Param body body service.AssessmentRequest true "assessment"
// @Success 200 {object} util.Response
// @Router /api/business/assessments/{id} [put]
func (c *AssessmentController) Update(ctx *gin.Context) {
	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, a)
}

// @Summary Deactivate an assessment (soft state change, never a delete)
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/business/assessments/{id}/deactivate [patch]
func (c *AssessmentController) Deactivate(ctx *gin.Context) {
	a, err := c.Service.Deactivate(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, a)
}

// @Summary Add a question to an assessment
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Param body body service.QuestionRequest true "question"
// @Success 201 {object} util.Response
// @Router /api/business/assessments/{id}/questions [post]
func (c *AssessmentController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		if errors.Is(err, util.ErrPositionTaken) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, q)
}

// @Summary List an assessment's questions (with answer keys)
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/business/assessments/{id}/questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	qs, err := c.Service.ListQuestions(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param questionId path int true "question id"
// @Param body body service.QuestionRequest true "question"
// @Success 200 {object} util.Response
// @Router /api/business/questions/{questionId} [put]
func (c *AssessmentController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(util.MustParseUint(ctx.Param("questionId")), req)
	if err != nil {
		if errors.Is(err, util.ErrPositionTaken) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, q)
}

// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param questionId path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/business/questions/{questionId} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	if err := c.Service.DeleteQuestion(util.MustParseUint(ctx.Param("questionId"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary List assessments targeting the current employee
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/assessments [get]
func (c *AssessmentController) ListForEmployee(ctx *gin.Context) {
	user := c.Auth.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	if user.CompanyID == nil {
		util.Error(ctx, 403, util.ErrNoCompany.Error())
		return
	}

	as, err := c.Service.ListForEmployee(*user.CompanyID, user.DepartmentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, as)
}

// @Summary Get an assessment's questions for taking it (answer keys stripped)
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id}/questions [get]
func (c *AssessmentController) QuestionsForEmployee(ctx *gin.Context) {
	qs, err := c.Service.ListQuestionsForEmployee(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		if errors.Is(err, util.ErrAssessmentInactive) {
			util.Error(ctx, 403, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}
