package controller

import (
	"traininghub_backend/internal/service"
	"traininghub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	Service *service.CompanyService
}

func NewCompanyController(svc *service.CompanyService) *CompanyController {
	return &CompanyController{Service: svc}
}

// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CompanyRequest true "company"
// @Success 201 {object} util.Response
// @Router /api/admin/companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req service.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.Service.CreateCompany(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, company)
}

// @Summary List companies
// @Tags companies
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)

	companies, total, err := c.Service.ListCompanies(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: companies, Total: total, Page: page, Limit: limit})
}

// @Summary Get one company
// @Tags companies
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "company id"
// @Success 200 {object} util.Response
// @Router /api/admin/companies/{id} [get]
func (c *CompanyController) Get(ctx *gin.Context) {
	company, err := c.Service.GetCompany(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, company)
}

// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "company id"
// @Param body body service.CompanyRequest true "company"
// @Success 200 {object} util.Response
// @Router /api/admin/companies/{id} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	var req service.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.Service.UpdateCompany(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, company)
}

// @Summary Create a department in the caller's company
// @Tags companies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.DepartmentRequest true "department"
// @Success 201 {object} util.Response
// @Router /api/business/departments [post]
func (c *CompanyController) CreateDepartment(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	var req service.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.Service.CreateDepartment(companyID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, d)
}

// @Summary List the caller's company departments
// @Tags companies
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/business/departments [get]
func (c *CompanyController) ListDepartments(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	ds, err := c.Service.ListDepartments(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ds)
}

// @Summary Delete a department
// @Tags companies
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "department id"
// @Success 200 {object} util.Response
// @Router /api/business/departments/{id} [delete]
func (c *CompanyController) DeleteDepartment(ctx *gin.Context) {
	if err := c.Service.DeleteDepartment(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary List the caller's company employees
// @Tags employees
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/business/employees [get]
func (c *CompanyController) ListEmployees(ctx *gin.Context) {
	companyID, ok := companyScope(ctx)
	if !ok {
		return
	}

	page, limit := pageParams(ctx)
	employees, total, err := c.Service.ListEmployees(companyID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: employees, Total: total, Page: page, Limit: limit})
}

// @Summary Update an employee's role, department, or active flag
// @Tags employees
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "employee id"
// @Param body body service.EmployeeUpdateRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /api/business/employees/{id} [patch]
func (c *CompanyController) UpdateEmployee(ctx *gin.Context) {
	var req service.EmployeeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.Service.UpdateEmployee(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}
