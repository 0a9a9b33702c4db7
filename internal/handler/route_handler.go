package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/service"
)

// RouteHandler handles route HTTP requests
type RouteHandler struct {
	routeService service.RouteService
}

// NewRouteHandler creates a new RouteHandler
func NewRouteHandler(routeService service.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

// Create handles POST /routes
func (h *RouteHandler) Create(c *gin.Context) {
	var req dto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	route, err := h.routeService.CreateRoute(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RouteFromDomain(route))
}

// List handles GET /routes
func (h *RouteHandler) List(c *gin.Context) {
	var filter dto.RouteListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	routes, err := h.routeService.ListRoutes(c.Request.Context(), &filter)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		responses = append(responses, dto.RouteFromDomain(r))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /routes/:id
func (h *RouteHandler) GetByID(c *gin.Context) {
	route, err := h.routeService.GetRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RouteFromDomain(route))
}

// Update handles PUT /routes/:id
func (h *RouteHandler) Update(c *gin.Context) {
	var req dto.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	route, err := h.routeService.UpdateRoute(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RouteFromDomain(route))
}

// Delete handles DELETE /routes/:id
func (h *RouteHandler) Delete(c *gin.Context) {
	if err := h.routeService.DeleteRoute(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
