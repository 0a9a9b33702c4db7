package domain

// TrainType represents a category of rolling stock
type TrainType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Train represents a train with its cargo layout
type Train struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CargoNum      int    `json:"cargo_num"`
	PlacesInCargo int    `json:"places_in_cargo"`
	TrainTypeID   string `json:"train_type_id"`

	// Expanded when loaded with its type
	TrainType *TrainType `json:"train_type,omitempty"`
}

// Capacity returns the total number of seats on the train
func (t *Train) Capacity() int {
	return t.CargoNum * t.PlacesInCargo
}

// Validate checks the train layout invariants
func (t *Train) Validate() error {
	if t.CargoNum <= 0 || t.PlacesInCargo <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}
