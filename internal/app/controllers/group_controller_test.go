package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selim/groupdesk/internal/app/models"
	"github.com/selim/groupdesk/internal/app/models/dto"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
)

// stubGroupService implements services.GroupService with canned answers.
type stubGroupService struct {
	groups       []*models.Group
	group        *models.Group
	importResult *dto.ImportGroupsResponse
	err          error
}

func (s *stubGroupService) GetGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groups, s.err
}

func (s *stubGroupService) GetSalesGrid(ctx context.Context) ([]*models.Group, error) {
	return s.groups, s.err
}

func (s *stubGroupService) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	return s.group, s.err
}

func (s *stubGroupService) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	return s.group, s.err
}

func (s *stubGroupService) UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error) {
	return s.group, s.err
}

func (s *stubGroupService) DeleteGroup(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubGroupService) LinkFlight(ctx context.Context, groupID, flightID int64) error {
	return s.err
}

func (s *stubGroupService) UnlinkFlight(ctx context.Context, groupID, flightID int64) error {
	return s.err
}

func (s *stubGroupService) GetGroupFlights(ctx context.Context, groupID int64) ([]*models.Flight, error) {
	return nil, s.err
}

func (s *stubGroupService) GetFlightDateMismatches(ctx context.Context) ([]dto.DateMismatchResponse, error) {
	return []dto.DateMismatchResponse{}, s.err
}

func (s *stubGroupService) ImportGroups(ctx context.Context, req *dto.ImportGroupsRequest) (*dto.ImportGroupsResponse, error) {
	return s.importResult, s.err
}

func newGroupTestRouter(svc *stubGroupService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewGroupController(svc, nil, nil, nil)

	router := gin.New()
	router.GET("/api/groups", ctrl.GetGroups)
	router.GET("/api/groups/:id", ctrl.GetGroup)
	router.POST("/api/groups", ctrl.CreateGroup)
	router.POST("/api/groups/import", ctrl.ImportGroups)
	router.GET("/api/groups/flight-date-mismatches", ctrl.GetFlightDateMismatches)
	return router
}

func TestGetGroups_ReturnsList(t *testing.T) {
	svc := &stubGroupService{
		groups: []*models.Group{
			{
				ID:            1,
				Name:          "Milan Summer A",
				CentreName:    "Oxford",
				ArrivalDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
				DepartureDate: time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	router := newGroupTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/groups", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.GroupListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success || len(resp.Groups) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Groups[0].ArrivalDate != "2024-07-01" {
		t.Errorf("expected calendar date format, got %q", resp.Groups[0].ArrivalDate)
	}
}

func TestGetGroup_NotFound(t *testing.T) {
	svc := &stubGroupService{err: apperrors.ErrGroupNotFound}
	router := newGroupTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/groups/99", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetGroup_InvalidIDParam(t *testing.T) {
	router := newGroupTestRouter(&stubGroupService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/groups/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateGroup_Success(t *testing.T) {
	svc := &stubGroupService{
		group: &models.Group{
			ID:            7,
			Name:          "Madrid B",
			ArrivalDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			DepartureDate: time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC),
		},
	}
	router := newGroupTestRouter(svc)

	body := `{"name":"Madrid B","arrivalDate":"2024-07-01","departureDate":"2024-07-14"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.GroupDetailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Group.ID != 7 {
		t.Errorf("unexpected group id %d", resp.Group.ID)
	}
}

func TestCreateGroup_MissingRequiredFields(t *testing.T) {
	router := newGroupTestRouter(&stubGroupService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/groups", strings.NewReader(`{"name":"No Dates"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateGroup_DuplicateName(t *testing.T) {
	svc := &stubGroupService{err: apperrors.ErrGroupAlreadyExists}
	router := newGroupTestRouter(svc)

	body := `{"name":"Madrid B","arrivalDate":"2024-07-01","departureDate":"2024-07-14"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestImportGroups_ReturnsSummary(t *testing.T) {
	svc := &stubGroupService{
		importResult: &dto.ImportGroupsResponse{
			Success:                   true,
			SuccessfullyImportedCount: 2,
			SkippedCount:              1,
			Errors: []dto.ImportRowError{
				{Row: 1, Name: "Bad Row", Message: "arrivalDate is required"},
			},
		},
	}
	router := newGroupTestRouter(svc)

	body := `{"groups":[{"name":"A","arrivalDate":"2024-07-01","departureDate":"2024-07-14"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/groups/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.ImportGroupsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.SuccessfullyImportedCount != 2 || resp.SkippedCount != 1 || len(resp.Errors) != 1 {
		t.Errorf("unexpected summary: %+v", resp)
	}
}

func TestImportGroups_MissingGroupsField(t *testing.T) {
	router := newGroupTestRouter(&stubGroupService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/groups/import", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetFlightDateMismatches_EmptyList(t *testing.T) {
	router := newGroupTestRouter(&stubGroupService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/groups/flight-date-mismatches", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.DateMismatchListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Success || len(resp.Mismatches) != 0 {
		t.Errorf("unexpected response: %+v", resp)
	}
}
