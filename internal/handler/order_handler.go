package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/middleware"
	"github.com/sashabryl/train-station-api-service/internal/service"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User ID not found in token",
			Code:  "UNAUTHORIZED",
		})
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderFromDomain(order))
}

// List handles GET /orders with pagination
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User ID not found in token",
			Code:  "UNAUTHORIZED",
		})
		return
	}

	var filter dto.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}
	filter.SetDefaults()

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), userID, &filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	responses := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, dto.OrderFromDomain(o))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders:   responses,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User ID not found in token",
			Code:  "UNAUTHORIZED",
		})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderFromDomain(order))
}

// handleError converts booking errors to HTTP responses. A journey referenced
// inside the order payload maps to 400, not 404: the order resource itself
// was addressed correctly.
func (h *OrderHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrJourneyNotFound) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
		return
	}
	handleError(c, err)
}
