package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
)

// stubCentreService implements services.CentreService with canned answers.
type stubCentreService struct {
	centres    []*models.Centre
	centre     *models.Centre
	occupancy  map[string]map[string]dto.OccupancyTally
	windowDays int
	err        error
}

func (s *stubCentreService) GetCentres(ctx context.Context) ([]*models.Centre, error) {
	return s.centres, s.err
}

func (s *stubCentreService) GetCentre(ctx context.Context, id int64) (*models.Centre, error) {
	return s.centre, s.err
}

func (s *stubCentreService) CreateCentre(ctx context.Context, req *dto.CreateCentreRequest) (*models.Centre, error) {
	return s.centre, s.err
}

func (s *stubCentreService) UpdateCentre(ctx context.Context, id int64, req *dto.UpdateCentreRequest) (*models.Centre, error) {
	return s.centre, s.err
}

func (s *stubCentreService) DeleteCentre(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubCentreService) GetOccupancy(ctx context.Context, windowDays int) (map[string]map[string]dto.OccupancyTally, error) {
	s.windowDays = windowDays
	return s.occupancy, s.err
}

func newCentreTestRouter(svc *stubCentreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewCentreController(svc, nil)

	router := gin.New()
	router.GET("/api/centres", ctrl.GetCentres)
	router.GET("/api/centres/occupancy", ctrl.GetOccupancy)
	router.GET("/api/centres/:id", ctrl.GetCentre)
	return router
}

func TestGetOccupancy_DefaultWindow(t *testing.T) {
	svc := &stubCentreService{
		occupancy: map[string]map[string]dto.OccupancyTally{
			"Oxford": {"2024-07-01": {Students: 10, Leaders: 2}},
		},
	}
	router := newCentreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/centres/occupancy", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.windowDays != 0 {
		t.Errorf("no days param must pass 0 to the service, got %d", svc.windowDays)
	}

	var resp dto.OccupancyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Occupancy["Oxford"]["2024-07-01"].Students != 10 {
		t.Errorf("unexpected occupancy payload: %+v", resp.Occupancy)
	}
}

func TestGetOccupancy_CustomWindow(t *testing.T) {
	svc := &stubCentreService{occupancy: map[string]map[string]dto.OccupancyTally{}}
	router := newCentreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/centres/occupancy?days=7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.windowDays != 7 {
		t.Errorf("expected windowDays 7, got %d", svc.windowDays)
	}
}

func TestGetOccupancy_InvalidWindow(t *testing.T) {
	router := newCentreTestRouter(&stubCentreService{})

	for _, q := range []string{"days=0", "days=-3", "days=abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/centres/occupancy?"+q, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestGetCentre_NotFound(t *testing.T) {
	svc := &stubCentreService{err: apperrors.ErrCentreNotFound}
	router := newCentreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/centres/404", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetCentres_ReturnsList(t *testing.T) {
	svc := &stubCentreService{
		centres: []*models.Centre{{ID: 1, Name: "Oxford", Address: "Oxford, UK"}},
	}
	router := newCentreTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/centres", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.CentreListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Centres) != 1 || resp.Centres[0].Name != "Oxford" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
