package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
)

// SeatTakenMessage is the fixed message returned on a booking conflict
const SeatTakenMessage = "This seat is already booked."

// handleError converts domain errors to HTTP responses
func handleError(c *gin.Context, err error) {
	var rangeErr *domain.SeatRangeError

	switch {
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rangeErr.Error(),
			Code:  "VALIDATION_ERROR",
		})
	case errors.Is(err, domain.ErrSeatTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: SeatTakenMessage,
			Code:  "SEAT_TAKEN",
		})
	case domain.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  "NOT_FOUND",
		})
	case domain.IsConflictError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  "CONFLICT",
		})
	case domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}
}

// badRequest responds with a 400 and the supplied message
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: msg,
		Code:  "BAD_REQUEST",
	})
}
