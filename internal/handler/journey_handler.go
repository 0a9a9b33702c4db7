package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/service"
)

// JourneyHandler handles journey HTTP requests
type JourneyHandler struct {
	journeyService service.JourneyService
}

// NewJourneyHandler creates a new JourneyHandler
func NewJourneyHandler(journeyService service.JourneyService) *JourneyHandler {
	return &JourneyHandler{journeyService: journeyService}
}

// Create handles POST /journeys
func (h *JourneyHandler) Create(c *gin.Context) {
	var req dto.CreateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	journey, err := h.journeyService.CreateJourney(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.JourneyFromDomain(journey))
}

// List handles GET /journeys with source/destination/departure filters
func (h *JourneyHandler) List(c *gin.Context) {
	var filter dto.JourneyListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}
	if valid, msg := filter.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	journeys, err := h.journeyService.ListJourneys(c.Request.Context(), &filter)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.JourneyResponse, 0, len(journeys))
	for _, j := range journeys {
		responses = append(responses, dto.JourneyFromDomain(j))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /journeys/:id, including the taken seats list
func (h *JourneyHandler) GetByID(c *gin.Context) {
	journey, takenSeats, err := h.journeyService.GetJourney(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.JourneyDetailFromDomain(journey, takenSeats))
}

// Update handles PUT /journeys/:id
func (h *JourneyHandler) Update(c *gin.Context) {
	var req dto.UpdateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	journey, err := h.journeyService.UpdateJourney(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.JourneyFromDomain(journey))
}

// Delete handles DELETE /journeys/:id
func (h *JourneyHandler) Delete(c *gin.Context) {
	if err := h.journeyService.DeleteJourney(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
