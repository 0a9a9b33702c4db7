package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/service"
)

// TrainHandler handles train HTTP requests
type TrainHandler struct {
	trainService service.TrainService
}

// NewTrainHandler creates a new TrainHandler
func NewTrainHandler(trainService service.TrainService) *TrainHandler {
	return &TrainHandler{trainService: trainService}
}

// Create handles POST /trains
func (h *TrainHandler) Create(c *gin.Context) {
	var req dto.CreateTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	train, err := h.trainService.CreateTrain(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TrainFromDomain(train))
}

// List handles GET /trains
func (h *TrainHandler) List(c *gin.Context) {
	var filter dto.TrainListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	trains, err := h.trainService.ListTrains(c.Request.Context(), &filter)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.TrainResponse, 0, len(trains))
	for _, t := range trains {
		responses = append(responses, dto.TrainFromDomain(t))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /trains/:id
func (h *TrainHandler) GetByID(c *gin.Context) {
	train, err := h.trainService.GetTrain(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TrainFromDomain(train))
}

// Update handles PUT /trains/:id
func (h *TrainHandler) Update(c *gin.Context) {
	var req dto.UpdateTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	train, err := h.trainService.UpdateTrain(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TrainFromDomain(train))
}

// Delete handles DELETE /trains/:id
func (h *TrainHandler) Delete(c *gin.Context) {
	if err := h.trainService.DeleteTrain(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
