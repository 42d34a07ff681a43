package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roboticsclub/internal/delivery/http/middleware"
	"roboticsclub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	createErr     error
	createResult  *domain.Event
	getErr        error
	getResult     *domain.Event
	listErr       error
	listResult    []*domain.Event
	listTotal     int
	updateErr     error
	updateResult  *domain.Event
	deleteErr     error
	lastCreatedBy string
	lastEvent     *domain.Event
	lastEventID   string
	lastFilter    domain.EventFilter
}

func (f *fakeEventService) Create(_ context.Context, event *domain.Event, createdBy string) (*domain.Event, error) {
	f.lastEvent = event
	f.lastCreatedBy = createdBy
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeEventService) GetByID(_ context.Context, eventID string) (*domain.Event, error) {
	f.lastEventID = eventID
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) List(_ context.Context, filter domain.EventFilter, _ domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func (f *fakeEventService) Update(_ context.Context, event *domain.Event) (*domain.Event, error) {
	f.lastEvent = event
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeEventService) Delete(_ context.Context, eventID string) error {
	f.lastEventID = eventID
	return f.deleteErr
}

func TestEventController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		withAdmin  bool
		svc        *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{
			name:      "created",
			body:      `{"title":"ROS Workshop","event_date":"2026-09-10T15:00:00Z","type":"workshop"}`,
			withAdmin: true,
			svc: &fakeEventService{
				createResult: &domain.Event{ID: "ev-1", Slug: "ros-workshop"},
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing admin context",
			body:       `{"title":"ROS Workshop","event_date":"2026-09-10T15:00:00Z"}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:       "bad date",
			body:       `{"title":"ROS Workshop","event_date":"next tuesday"}`,
			withAdmin:  true,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "slug conflict",
			body:       `{"title":"ROS Workshop","event_date":"2026-09-10T15:00:00Z"}`,
			withAdmin:  true,
			svc:        &fakeEventService{createErr: domain.ErrDuplicateSlug},
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger, tt.svc)
			req := httptest.NewRequest(http.MethodPost, "http://test/events", bytes.NewBufferString(tt.body))
			if tt.withAdmin {
				req = req.WithContext(middleware.SetAdminID(req.Context(), "admin-1"))
			}
			rec := httptest.NewRecorder()

			c.Create(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp struct {
				Error *struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if tt.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			} else {
				assert.Equal(t, "admin-1", tt.svc.lastCreatedBy)
			}
		})
	}
}

func TestEventController_List_filters(t *testing.T) {
	svc := &fakeEventService{listResult: []*domain.Event{{ID: "ev-1"}}, listTotal: 1}
	c := NewEventController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/events?status=upcoming&type=workshop&featured=true", nil)
	rec := httptest.NewRecorder()

	c.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter.Status)
	assert.Equal(t, domain.EventStatusUpcoming, *svc.lastFilter.Status)
	require.NotNil(t, svc.lastFilter.Type)
	assert.Equal(t, domain.EventTypeWorkshop, *svc.lastFilter.Type)
	require.NotNil(t, svc.lastFilter.Featured)
	assert.True(t, *svc.lastFilter.Featured)

	var resp struct {
		Data EventListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Events, 1)
	assert.Equal(t, 1, resp.Data.Pagination.Total)
}

func TestEventController_GetByID_notFound(t *testing.T) {
	c := NewEventController(testLogger, &fakeEventService{getErr: domain.ErrNotFound})
	req := httptest.NewRequest(http.MethodGet, "http://test/events/ev-404", nil)
	req.SetPathValue("eventID", "ev-404")
	rec := httptest.NewRecorder()

	c.GetByID(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventController_Update_setsIDFromPath(t *testing.T) {
	svc := &fakeEventService{updateResult: &domain.Event{ID: "ev-1", Title: "New title"}}
	c := NewEventController(testLogger, svc)
	body := `{"title":"New title","event_date":"2026-09-10T15:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "http://test/events/ev-1", bytes.NewBufferString(body))
	req.SetPathValue("eventID", "ev-1")
	req = req.WithContext(middleware.SetAdminID(req.Context(), "admin-1"))
	rec := httptest.NewRecorder()

	c.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastEvent)
	assert.Equal(t, "ev-1", svc.lastEvent.ID)
}

func TestEventController_Delete(t *testing.T) {
	svc := &fakeEventService{}
	c := NewEventController(testLogger, svc)
	req := httptest.NewRequest(http.MethodDelete, "http://test/events/ev-1", nil)
	req.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()

	c.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ev-1", svc.lastEventID)
}
