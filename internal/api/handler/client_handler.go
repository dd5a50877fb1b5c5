package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
	"github.com/inovaindustria/industria-api/internal/metrics"
)

// ClientHandler handles HTTP requests for client account operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Register handles POST /clientes.
//
// @Summary      Register a client account
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Account details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /clientes [post]
func (h *ClientHandler) Register(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Register(c.Request().Context(), caller, ports.RegisterClientInput{
		Client:   clientFromRequest(req),
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("client").Inc()

	// The password hash is excluded by the domain type's json tags; nothing
	// sensitive leaves this endpoint.
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /clientes?empresa=<id>.
func (h *ClientHandler) List(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), caller, companyFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /clientes/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Update handles PUT /clientes/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	client := clientFromRequest(req)
	client.ID = c.Param("id")
	if err := h.service.Update(c.Request().Context(), caller, &client); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /clientes/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func clientFromRequest(req clientRequest) domain.Client {
	return domain.Client{
		CompanyID:  req.CompanyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		CPF:        req.CPF,
		BirthDate:  req.BirthDate,
		Position:   req.Position,
		Department: req.Department,
		Role:       domain.Role(req.Role),
	}
}
