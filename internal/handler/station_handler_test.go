package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/internal/dto"
)

// MockStationService is a mock implementation of StationService
type MockStationService struct {
	stations map[string]*domain.Station
	names    map[string]bool
}

func NewMockStationService() *MockStationService {
	return &MockStationService{
		stations: make(map[string]*domain.Station),
		names:    make(map[string]bool),
	}
}

func (m *MockStationService) CreateStation(ctx context.Context, req *dto.CreateStationRequest) (*domain.Station, error) {
	if m.names[req.Name] {
		return nil, domain.ErrDuplicateName
	}
	station := &domain.Station{
		ID:        "station-123",
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	m.stations[station.ID] = station
	m.names[station.Name] = true
	return station, nil
}

func (m *MockStationService) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	station, ok := m.stations[id]
	if !ok {
		return nil, domain.ErrStationNotFound
	}
	return station, nil
}

func (m *MockStationService) ListStations(ctx context.Context, filter *dto.StationListFilter) ([]*domain.Station, error) {
	var stations []*domain.Station
	for _, s := range m.stations {
		stations = append(stations, s)
	}
	return stations, nil
}

func (m *MockStationService) UpdateStation(ctx context.Context, id string, req *dto.UpdateStationRequest) (*domain.Station, error) {
	station, ok := m.stations[id]
	if !ok {
		return nil, domain.ErrStationNotFound
	}
	station.Name = req.Name
	station.Latitude = req.Latitude
	station.Longitude = req.Longitude
	return station, nil
}

func (m *MockStationService) DeleteStation(ctx context.Context, id string) error {
	if _, ok := m.stations[id]; !ok {
		return domain.ErrStationNotFound
	}
	delete(m.stations, id)
	return nil
}

func setupStationRouter(h *StationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	stations := router.Group("/stations")
	{
		stations.GET("", h.List)
		stations.GET("/:id", h.GetByID)
		stations.POST("", h.Create)
		stations.PUT("/:id", h.Update)
		stations.DELETE("/:id", h.Delete)
	}

	return router
}

func TestStationHandler_Create(t *testing.T) {
	mockSvc := NewMockStationService()
	handler := NewStationHandler(mockSvc)
	router := setupStationRouter(handler)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid station",
			body:       `{"name": "Kyiv", "latitude": 50.45, "longitude": 30.52}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate name",
			body:       `{"name": "Kyiv", "latitude": 50.45, "longitude": 30.52}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "latitude out of range",
			body:       `{"name": "Nowhere", "latitude": 95, "longitude": 30.52}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "longitude out of range",
			body:       `{"name": "Elsewhere", "latitude": 50, "longitude": -200}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       `{"latitude": 50.45, "longitude": 30.52}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/stations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestStationHandler_Delete(t *testing.T) {
	mockSvc := NewMockStationService()
	handler := NewStationHandler(mockSvc)
	router := setupStationRouter(handler)

	mockSvc.stations["station-1"] = &domain.Station{ID: "station-1", Name: "Kyiv"}

	req, _ := http.NewRequest(http.MethodDelete, "/stations/station-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, resp.Code)
	}

	req, _ = http.NewRequest(http.MethodDelete, "/stations/station-1", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, resp.Code)
	}
}

func TestStationHandler_GetByID(t *testing.T) {
	mockSvc := NewMockStationService()
	handler := NewStationHandler(mockSvc)
	router := setupStationRouter(handler)

	mockSvc.stations["station-1"] = &domain.Station{ID: "station-1", Name: "Kyiv", Latitude: 50.45, Longitude: 30.52}

	req, _ := http.NewRequest(http.MethodGet, "/stations/station-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var got dto.StationResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Name != "Kyiv" {
		t.Errorf("expected name Kyiv, got %s", got.Name)
	}
}
