package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"roboticsclub/internal/delivery/http/helpers"
	"roboticsclub/internal/delivery/http/middleware"
	"roboticsclub/internal/domain"
)

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
type EventRequest struct {
	Title             string   `json:"title"`
	Slug              string   `json:"slug"`
	Description       string   `json:"description"`
	Content           string   `json:"content"`
	Image             string   `json:"image"`
	EventDate         string   `json:"event_date"`
	EventTime         string   `json:"event_time"`
	Location          string   `json:"location"`
	Mode              string   `json:"mode"`
	EventLink         string   `json:"event_link"`
	RegistrationLink  string   `json:"registration_link"`
	RegistrationLimit *int     `json:"registration_limit"`
	RegistrationOpen  bool     `json:"registration_open"`
	IsPaid            bool     `json:"is_paid"`
	RegistrationFee   *float64 `json:"registration_fee"`
	PaymentMethod     string   `json:"payment_method"`
	PaymentNumber     string   `json:"payment_number"`
	Type              string   `json:"type"`
	Status            string   `json:"status"`
	Featured          bool     `json:"featured"`
	Tags              []string `json:"tags"`
}

// Validate implements Validator. Only structural rules live here; business
// rules (paid events need a fee, etc.) live in the service.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Title == "" {
		errs = append(errs, "title is required")
	}
	if e.EventDate == "" {
		errs = append(errs, "event_date is required")
	} else if _, err := time.Parse(time.RFC3339, e.EventDate); err != nil {
		errs = append(errs, "event_date must be RFC3339")
	}
	return errs
}

func (e EventRequest) toDomain() *domain.Event {
	date, _ := time.Parse(time.RFC3339, e.EventDate)
	event := &domain.Event{
		Title:             e.Title,
		Slug:              e.Slug,
		Description:       e.Description,
		Content:           e.Content,
		Image:             e.Image,
		EventDate:         date,
		EventTime:         e.EventTime,
		Location:          e.Location,
		Mode:              e.Mode,
		EventLink:         e.EventLink,
		RegistrationLink:  e.RegistrationLink,
		RegistrationLimit: e.RegistrationLimit,
		RegistrationOpen:  e.RegistrationOpen,
		IsPaid:            e.IsPaid,
		RegistrationFee:   e.RegistrationFee,
		PaymentNumber:     e.PaymentNumber,
		Type:              domain.EventType(e.Type),
		Status:            domain.EventStatus(e.Status),
		Featured:          e.Featured,
		Tags:              e.Tags,
	}
	if e.PaymentMethod != "" {
		method := domain.PaymentMethod(e.PaymentMethod)
		event.PaymentMethod = &method
	}
	return event
}

// EventListResponse is the payload for GET /events.
type EventListResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// EventSuccessResponse is the success envelope wrapping a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope for GET /events (200).
type EventListSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event
// @Description Creates an event, workshop, or seminar. The slug is derived from the title when omitted. The authenticated admin is recorded as the creator.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Create(r.Context(), req.toDomain(), adminID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// List godoc
// @Summary List events
// @Description Lists events with optional status, type, featured, and slug filters, newest event date first.
// @Tags events
// @Produce json
// @Param status query string false "Filter by status (upcoming, ongoing, completed, cancelled)"
// @Param type query string false "Filter by type (event, workshop, seminar)"
// @Param featured query bool false "Filter by featured flag"
// @Param slug query string false "Look up by slug"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains events and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{Slug: q.Get("slug")}
	if s := q.Get("status"); s != "" {
		status := domain.EventStatus(s)
		filter.Status = &status
	}
	if s := q.Get("type"); s != "" {
		eventType := domain.EventType(s)
		filter.Type = &eventType
	}
	if s := q.Get("featured"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			filter.Featured = &v
		}
	}
	p := helpers.ParsePagination(r)

	events, total, err := c.Service.List(r.Context(), filter, p)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// GetByID godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetByID(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Description Replaces the editable fields of an event. The attendees counter and creator are never overwritten.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toDomain()
	event.ID = eventID
	updated, err := c.Service.Update(r.Context(), event)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes an event and, through the database, its registrations.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.Delete(r.Context(), eventID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "event deleted"})
}
