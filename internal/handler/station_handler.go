package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/service"
)

// StationHandler handles station HTTP requests
type StationHandler struct {
	stationService service.StationService
}

// NewStationHandler creates a new StationHandler
func NewStationHandler(stationService service.StationService) *StationHandler {
	return &StationHandler{stationService: stationService}
}

// Create handles POST /stations
func (h *StationHandler) Create(c *gin.Context) {
	var req dto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	station, err := h.stationService.CreateStation(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StationFromDomain(station))
}

// List handles GET /stations
func (h *StationHandler) List(c *gin.Context) {
	var filter dto.StationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	stations, err := h.stationService.ListStations(c.Request.Context(), &filter)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.StationResponse, 0, len(stations))
	for _, s := range stations {
		responses = append(responses, dto.StationFromDomain(s))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /stations/:id
func (h *StationHandler) GetByID(c *gin.Context) {
	station, err := h.stationService.GetStation(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StationFromDomain(station))
}

// Update handles PUT /stations/:id
func (h *StationHandler) Update(c *gin.Context) {
	var req dto.UpdateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	station, err := h.stationService.UpdateStation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StationFromDomain(station))
}

// Delete handles DELETE /stations/:id
func (h *StationHandler) Delete(c *gin.Context) {
	if err := h.stationService.DeleteStation(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
