package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadflow/lead-system/internal/core/ports"
)

// LeadHandler handles HTTP requests for lead operations.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// List handles GET /v1/leads.
//
// @Summary      List leads
// @Description  Filters by a case-insensitive substring over name, email, company, city, state, source and status, then returns one page.
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        filter      query     string  false  "Search text"
// @Param        page_index  query     int     false  "Zero-based page index"
// @Param        page_size   query     int     false  "Page size (default 10, max 100)"
// @Success      200         {object}  leadPageResponse
// @Failure      401         {object}  ErrorResponse
// @Failure      422         {object}  ErrorResponse
// @Failure      503         {object}  ErrorResponse
// @Router       /v1/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	var req listLeadsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), toListQuery(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLeadPageResponse(*page))
}

// View handles GET /v1/leads/view.
//
// @Summary      Current lead view
// @Description  The page most recently applied by the controller, with its request phase.
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  leadViewResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/leads/view [get]
func (h *LeadHandler) View(c echo.Context) error {
	return c.JSON(http.StatusOK, toLeadViewResponse(h.service.View()))
}

// Create handles POST /v1/leads.
//
// @Summary      Create a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLeadRequest  true  "Lead details"
// @Success      201   {object}  leadMutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /v1/leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	lead, err := h.service.Create(c.Request().Context(), toLeadForm(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, leadMutationResponse{
		Message: fmt.Sprintf("%s has been added to your leads.", lead.FullName()),
		Lead:    toLeadResponse(*lead),
	})
}

// Update handles PATCH /v1/leads/:id.
//
// @Summary      Update a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lead ID"
// @Param        body  body      updateLeadRequest  true  "Fields to change"
// @Success      200   {object}  leadMutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /v1/leads/{id} [patch]
func (h *LeadHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	lead, err := h.service.Update(c.Request().Context(), id, toLeadFormPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, leadMutationResponse{
		Message: fmt.Sprintf("%s has been updated.", lead.FullName()),
		Lead:    toLeadResponse(*lead),
	})
}

// Delete handles DELETE /v1/leads/:id.
//
// @Summary      Delete a lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  deleteLeadResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /v1/leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteLeadResponse{
		Message: fmt.Sprintf("%s has been removed from your leads.", res.FullName),
		ID:      res.ID,
	})
}
