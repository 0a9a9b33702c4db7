package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/dto"
	"github.com/sashabryl/train-station-api-service/internal/service"
)

// CrewHandler handles crew HTTP requests
type CrewHandler struct {
	crewService service.CrewService
}

// NewCrewHandler creates a new CrewHandler
func NewCrewHandler(crewService service.CrewService) *CrewHandler {
	return &CrewHandler{crewService: crewService}
}

// Create handles POST /crew
func (h *CrewHandler) Create(c *gin.Context) {
	var req dto.CreateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	crew, err := h.crewService.CreateCrew(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CrewFromDomain(crew))
}

// List handles GET /crew
func (h *CrewHandler) List(c *gin.Context) {
	var filter dto.CrewListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	members, err := h.crewService.ListCrew(c.Request.Context(), &filter)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.CrewResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, dto.CrewFromDomain(m))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /crew/:id
func (h *CrewHandler) GetByID(c *gin.Context) {
	crew, err := h.crewService.GetCrew(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CrewFromDomain(crew))
}

// Update handles PUT /crew/:id
func (h *CrewHandler) Update(c *gin.Context) {
	var req dto.UpdateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		badRequest(c, msg)
		return
	}

	crew, err := h.crewService.UpdateCrew(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CrewFromDomain(crew))
}

// Delete handles DELETE /crew/:id
func (h *CrewHandler) Delete(c *gin.Context) {
	if err := h.crewService.DeleteCrew(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
