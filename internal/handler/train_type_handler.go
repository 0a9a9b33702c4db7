package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/service"
)

// TrainTypeHandler handles train type HTTP requests
type TrainTypeHandler struct {
	trainTypeService service.TrainTypeService
}

// NewTrainTypeHandler creates a new TrainTypeHandler
func NewTrainTypeHandler(trainTypeService service.TrainTypeService) *TrainTypeHandler {
	return &TrainTypeHandler{trainTypeService: trainTypeService}
}

// Create handles POST /train-types
func (h *TrainTypeHandler) Create(c *gin.Context) {
	var req dto.CreateTrainTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	trainType, err := h.trainTypeService.CreateTrainType(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TrainTypeFromDomain(trainType))
}

// List handles GET /train-types
func (h *TrainTypeHandler) List(c *gin.Context) {
	trainTypes, err := h.trainTypeService.ListTrainTypes(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.TrainTypeResponse, 0, len(trainTypes))
	for _, t := range trainTypes {
		responses = append(responses, dto.TrainTypeFromDomain(t))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /train-types/:id
func (h *TrainTypeHandler) GetByID(c *gin.Context) {
	trainType, err := h.trainTypeService.GetTrainType(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TrainTypeFromDomain(trainType))
}

// Update handles PUT /train-types/:id
func (h *TrainTypeHandler) Update(c *gin.Context) {
	var req dto.UpdateTrainTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	trainType, err := h.trainTypeService.UpdateTrainType(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TrainTypeFromDomain(trainType))
}

// Delete handles DELETE /train-types/:id
func (h *TrainTypeHandler) Delete(c *gin.Context) {
	if err := h.trainTypeService.DeleteTrainType(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
