package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
	"github.com/inovaindustria/industria-api/internal/metrics"
)

// CompanyHandler handles HTTP requests for company operations.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create handles POST /empresas.
//
// @Summary      Register a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company details"
// @Success      201   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /empresas [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), caller, companyFromRequest(req))
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("company").Inc()

	return c.JSON(http.StatusCreated, idResponse{ID: created.ID})
}

// List handles GET /empresas.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Company
// @Failure      401  {object}  errorResponse
// @Router       /empresas [get]
func (h *CompanyHandler) List(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	companies, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /empresas/:id.
func (h *CompanyHandler) Get(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	company, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Update handles PUT /empresas/:id.
func (h *CompanyHandler) Update(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	company := companyFromRequest(req)
	company.ID = c.Param("id")
	if err := h.service.Update(c.Request().Context(), caller, company); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /empresas/:id.
func (h *CompanyHandler) Delete(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func companyFromRequest(req companyRequest) *domain.Company {
	return &domain.Company{
		CNPJ:          req.CNPJ,
		LegalName:     req.LegalName,
		TradeName:     req.TradeName,
		StateRegistry: req.StateRegistry,
		CityRegistry:  req.CityRegistry,
		Email:         req.Email,
		Phone:         req.Phone,
		Street:        req.Street,
		Number:        req.Number,
		Complement:    req.Complement,
		District:      req.District,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		EmployeeCount: req.EmployeeCount,
		Sector:        req.Sector,
		FoundedAt:     req.FoundedAt,
		Active:        true,
	}
}
