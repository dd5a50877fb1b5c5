package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
	"github.com/inovaindustria/industria-api/internal/metrics"
)

// ActivityHandler handles HTTP requests for activities and sub-activities.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListByProject handles GET /projetos/:id/atividades.
//
// @Summary      List a project's activities with their sub-activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {array}   domain.Activity
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projetos/{id}/atividades [get]
func (h *ActivityHandler) ListByProject(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	activities, err := h.service.ListByProject(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Create handles POST /projetos/:id/atividades.
func (h *ActivityHandler) Create(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	activity := activityFromRequest(req)
	activity.ProjectID = c.Param("id")

	created, err := h.service.Create(c.Request().Context(), caller, activity)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("activity").Inc()
	return c.JSON(http.StatusCreated, idResponse{ID: created.ID})
}

// Update handles PUT /atividades/:id.
func (h *ActivityHandler) Update(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	activity := activityFromRequest(req)
	activity.ID = c.Param("id")
	if err := h.service.Update(c.Request().Context(), caller, activity); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /atividades/:id.
func (h *ActivityHandler) Delete(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// ListSubs handles GET /atividades/:id/subatividades.
func (h *ActivityHandler) ListSubs(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	subs, err := h.service.ListSubs(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// CreateSub handles POST /atividades/:id/subatividades.
func (h *ActivityHandler) CreateSub(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req subActivityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sub := subActivityFromRequest(req)
	sub.ActivityID = c.Param("id")

	created, err := h.service.CreateSub(c.Request().Context(), caller, sub)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("subactivity").Inc()
	return c.JSON(http.StatusCreated, idResponse{ID: created.ID})
}

// UpdateSub handles PUT /subatividades/:id.
func (h *ActivityHandler) UpdateSub(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req subActivityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sub := subActivityFromRequest(req)
	sub.ID = c.Param("id")
	if err := h.service.UpdateSub(c.Request().Context(), caller, sub); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// DeleteSub handles DELETE /subatividades/:id.
func (h *ActivityHandler) DeleteSub(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteSub(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func activityFromRequest(req activityRequest) *domain.Activity {
	return &domain.Activity{
		AssigneeID:   req.AssigneeID,
		Title:        req.Title,
		Description:  req.Description,
		PlannedStart: req.PlannedStart,
		PlannedEnd:   req.PlannedEnd,
		ActualEnd:    req.ActualEnd,
		Status:       domain.ActivityStatus(req.Status),
		Priority:     domain.ProjectPriority(req.Priority),
	}
}

func subActivityFromRequest(req subActivityRequest) *domain.SubActivity {
	return &domain.SubActivity{
		Title:        req.Title,
		Description:  req.Description,
		PlannedStart: req.PlannedStart,
		PlannedEnd:   req.PlannedEnd,
		ActualEnd:    req.ActualEnd,
		Status:       domain.ActivityStatus(req.Status),
		Priority:     domain.ProjectPriority(req.Priority),
	}
}
