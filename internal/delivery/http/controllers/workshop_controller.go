package controllers

import (
	"log/slog"
	"net/http"

	"roboticsclub/internal/delivery/http/helpers"
	"roboticsclub/internal/delivery/http/middleware"
	"roboticsclub/internal/domain"
)

// RegisterRequest is the public request body for
// POST /workshops/{workshopID}/registrations.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StudentID     string `json:"student_id"`
	Department    string `json:"department"`
	Batch         string `json:"batch"`
	Message       string `json:"message"`
	PaymentMethod string `json:"payment_method"`
	PaymentNumber string `json:"payment_number"`
	TransactionID string `json:"transaction_id"`
}

// Validate implements Validator. Payment rules depend on the workshop and are
// enforced by the service.
func (rr RegisterRequest) Validate() []string {
	var errs []string
	if rr.Name == "" {
		errs = append(errs, "name is required")
	}
	if rr.Email == "" {
		errs = append(errs, "email is required")
	}
	if rr.Phone == "" {
		errs = append(errs, "phone is required")
	}
	return errs
}

func (rr RegisterRequest) toDomain() *domain.RegistrationRequest {
	req := &domain.RegistrationRequest{
		Name:          rr.Name,
		Email:         rr.Email,
		Phone:         rr.Phone,
		StudentID:     rr.StudentID,
		Department:    rr.Department,
		Batch:         rr.Batch,
		Message:       rr.Message,
		PaymentNumber: rr.PaymentNumber,
		TransactionID: rr.TransactionID,
	}
	if rr.PaymentMethod != "" {
		method := domain.PaymentMethod(rr.PaymentMethod)
		req.PaymentMethod = &method
	}
	return req
}

// UpdateRegistrationRequest is the admin request body for
// PATCH /registrations/{registrationID}. Omitted fields are left untouched.
type UpdateRegistrationRequest struct {
	PaymentStatus *string `json:"payment_status"`
	Status        *string `json:"status"`
}

// RegistrationSuccessResponse is the success envelope wrapping a single registration.
type RegistrationSuccessResponse struct {
	Data  *domain.WorkshopRegistration `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// RegistrationListSuccessResponse is the success envelope for the admin listing.
type RegistrationListSuccessResponse struct {
	Data  *domain.RegistrationList `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type WorkshopController struct {
	Logger  *slog.Logger
	Service domain.WorkshopService
}

func NewWorkshopController(logger *slog.Logger, svc domain.WorkshopService) *WorkshopController {
	return &WorkshopController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for a workshop
// @Description Public registration endpoint. Enforces open/closed state, payment requirements, capacity, and one registration per email per workshop. Paid workshops require payment_method, payment_number, and transaction_id.
// @Tags registrations
// @Accept json
// @Produce json
// @Param workshopID path string true "Workshop ID"
// @Param registration body RegisterRequest true "Registrant data"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the created registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, registration_closed, registration_full, payment_method_mismatch, or already_registered"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /workshops/{workshopID}/registrations [post]
func (c *WorkshopController) Register(w http.ResponseWriter, r *http.Request) {
	workshopID := r.PathValue("workshopID")
	if workshopID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing workshopID")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), workshopID, req.toDomain())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// ListRegistrations godoc
// @Summary List a workshop's registrations
// @Description Admin listing, newest first, with optional status and payment_status filters. pending_payments always counts the whole workshop regardless of filters.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param workshopID path string true "Workshop ID"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param payment_status query string false "Filter by payment status (pending, paid, rejected)"
// @Success 200 {object} controllers.RegistrationListSuccessResponse "data contains registrations, total, and pending_payments"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /workshops/{workshopID}/registrations [get]
func (c *WorkshopController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	workshopID := r.PathValue("workshopID")
	if workshopID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing workshopID")
		return
	}
	q := r.URL.Query()
	filter := domain.RegistrationFilter{}
	if s := q.Get("status"); s != "" {
		status := domain.RegistrationStatus(s)
		filter.Status = &status
	}
	if s := q.Get("payment_status"); s != "" {
		status := domain.PaymentStatus(s)
		filter.PaymentStatus = &status
	}
	list, err := c.Service.ListRegistrations(r.Context(), workshopID, filter)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UpdateRegistration godoc
// @Summary Update a registration
// @Description Admin payment/status transition. Setting payment_status to "paid" stamps the approver and confirms the registration unless an explicit status is sent; "rejected" leaves the status untouched.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Param update body UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the updated registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{registrationID} [patch]
func (c *WorkshopController) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing registrationID")
		return
	}
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req UpdateRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.RegistrationUpdate{}
	if req.PaymentStatus != nil {
		status := domain.PaymentStatus(*req.PaymentStatus)
		update.PaymentStatus = &status
	}
	if req.Status != nil {
		status := domain.RegistrationStatus(*req.Status)
		update.Status = &status
	}
	reg, err := c.Service.UpdateRegistration(r.Context(), registrationID, update, adminID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// DeleteRegistration godoc
// @Summary Delete a registration
// @Description Removes the registration outright. The workshop's attendees counter is not decremented.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{registrationID} [delete]
func (c *WorkshopController) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing registrationID")
		return
	}
	if err := c.Service.DeleteRegistration(r.Context(), registrationID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "registration deleted"})
}
