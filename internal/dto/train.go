package dto

import "github.com/sashabryl/train-station-api-service/internal/domain"

// CreateTrainTypeRequest represents the request to create a train type
type CreateTrainTypeRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// Validate validates the CreateTrainTypeRequest
func (r *CreateTrainTypeRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Name is required"
	}
	return true, ""
}

// UpdateTrainTypeRequest represents the request to update a train type
type UpdateTrainTypeRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// Validate validates the UpdateTrainTypeRequest
func (r *UpdateTrainTypeRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Name is required"
	}
	return true, ""
}

// TrainTypeResponse represents a train type in API responses
type TrainTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TrainTypeFromDomain converts a domain TrainType to its response form
func TrainTypeFromDomain(t *domain.TrainType) *TrainTypeResponse {
	return &TrainTypeResponse{ID: t.ID, Name: t.Name}
}

// CreateTrainRequest represents the request to create a train
type CreateTrainRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	CargoNum      int    `json:"cargo_num" binding:"required"`
	PlacesInCargo int    `json:"places_in_cargo" binding:"required"`
	TrainTypeID   string `json:"train_type_id" binding:"required"`
}

// Validate validates the CreateTrainRequest
func (r *CreateTrainRequest) Validate() (bool, string) {
	if r.CargoNum <= 0 {
		return false, "Cargo num must be a positive integer"
	}
	if r.PlacesInCargo <= 0 {
		return false, "Places in cargo must be a positive integer"
	}
	return true, ""
}

// UpdateTrainRequest represents the request to update a train
type UpdateTrainRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	CargoNum      int    `json:"cargo_num" binding:"required"`
	PlacesInCargo int    `json:"places_in_cargo" binding:"required"`
	TrainTypeID   string `json:"train_type_id" binding:"required"`
}

// Validate validates the UpdateTrainRequest
func (r *UpdateTrainRequest) Validate() (bool, string) {
	if r.CargoNum <= 0 {
		return false, "Cargo num must be a positive integer"
	}
	if r.PlacesInCargo <= 0 {
		return false, "Places in cargo must be a positive integer"
	}
	return true, ""
}

// TrainResponse represents a train in API responses
type TrainResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	CargoNum      int                `json:"cargo_num"`
	PlacesInCargo int                `json:"places_in_cargo"`
	Capacity      int                `json:"capacity"`
	TrainTypeID   string             `json:"train_type_id"`
	TrainType     *TrainTypeResponse `json:"train_type,omitempty"`
}

// TrainFromDomain converts a domain Train to its response form
func TrainFromDomain(t *domain.Train) *TrainResponse {
	resp := &TrainResponse{
		ID:            t.ID,
		Name:          t.Name,
		CargoNum:      t.CargoNum,
		PlacesInCargo: t.PlacesInCargo,
		Capacity:      t.Capacity(),
		TrainTypeID:   t.TrainTypeID,
	}
	if t.TrainType != nil {
		resp.TrainType = TrainTypeFromDomain(t.TrainType)
	}
	return resp
}

// TrainListFilter represents filters for listing trains
type TrainListFilter struct {
	Name string `form:"name"`
}
