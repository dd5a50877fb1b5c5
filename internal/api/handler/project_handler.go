package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
	"github.com/inovaindustria/industria-api/internal/metrics"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /projetos?empresa=<id>.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        empresa  query     string  false  "Company id (required for tenant-scoped callers)"
// @Success      200      {array}   domain.Project
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Router       /projetos [get]
func (h *ProjectHandler) List(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), caller, ports.ListProjectsInput{
		CompanyID: companyFilter(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /projetos.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /projetos [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), caller, projectFromRequest(req))
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("project").Inc()
	return c.JSON(http.StatusCreated, idResponse{ID: created.ID})
}

// Get handles GET /projetos/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PUT /projetos/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project := projectFromRequest(req)
	project.ID = c.Param("id")
	if err := h.service.Update(c.Request().Context(), caller, project); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /projetos/:id.
func (h *ProjectHandler) Delete(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func projectFromRequest(req projectRequest) *domain.Project {
	return &domain.Project{
		CompanyID:   req.CompanyID,
		ManagerID:   req.ManagerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		PlannedEnd:  req.PlannedEnd,
		ActualEnd:   req.ActualEnd,
		Budget:      req.Budget,
		Status:      domain.ProjectStatus(req.Status),
		Priority:    domain.ProjectPriority(req.Priority),
	}
}
