package controllers

import (
	"log/slog"
	"net/http"

	"roboticsclub/internal/delivery/http/helpers"
	"roboticsclub/internal/delivery/http/middleware"
	"roboticsclub/internal/domain"
)

// ApplyRequest is the public request body for POST /membership/applications.
type ApplyRequest struct {
	Name               string   `json:"name"`
	StudentID          string   `json:"student_id"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Department         string   `json:"department"`
	Batch              string   `json:"batch"`
	CurrentYear        string   `json:"current_year"`
	CGPA               string   `json:"cgpa"`
	PreviousExperience string   `json:"previous_experience"`
	WhyJoin            string   `json:"why_join"`
	Skills             []string `json:"skills"`
	Portfolio          string   `json:"portfolio"`
	LinkedIn           string   `json:"linkedin"`
	GitHub             string   `json:"github"`
	PaymentNumber      string   `json:"payment_number"`
	PaymentMethod      string   `json:"payment_method"`
	TransactionID      string   `json:"transaction_id"`
}

// Validate implements Validator.
func (a ApplyRequest) Validate() []string {
	var errs []string
	if a.Name == "" {
		errs = append(errs, "name is required")
	}
	if a.StudentID == "" {
		errs = append(errs, "student_id is required")
	}
	if a.Email == "" {
		errs = append(errs, "email is required")
	}
	if a.Phone == "" {
		errs = append(errs, "phone is required")
	}
	return errs
}

func (a ApplyRequest) toDomain() *domain.MemberApplication {
	return &domain.MemberApplication{
		Name:               a.Name,
		StudentID:          a.StudentID,
		Email:              a.Email,
		Phone:              a.Phone,
		Department:         a.Department,
		Batch:              a.Batch,
		CurrentYear:        a.CurrentYear,
		CGPA:               a.CGPA,
		PreviousExperience: a.PreviousExperience,
		WhyJoin:            a.WhyJoin,
		Skills:             a.Skills,
		Portfolio:          a.Portfolio,
		LinkedIn:           a.LinkedIn,
		GitHub:             a.GitHub,
		PaymentNumber:      a.PaymentNumber,
		PaymentMethod:      a.PaymentMethod,
		TransactionID:      a.TransactionID,
	}
}

// ReviewRequest is the admin request body for PATCH /membership/applications/{applicationID}.
type ReviewRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// ApplicationSuccessResponse is the success envelope wrapping a single application.
type ApplicationSuccessResponse struct {
	Data  *domain.MemberApplication `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ApplicationListResponse is the payload for the admin application listing.
type ApplicationListResponse struct {
	Applications []*domain.MemberApplication `json:"applications"`
	Pagination   helpers.PaginationMeta      `json:"pagination"`
}

// ApplicationListSuccessResponse is the success envelope for the admin listing.
type ApplicationListSuccessResponse struct {
	Data  ApplicationListResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type MemberController struct {
	Logger  *slog.Logger
	Service domain.MemberService
}

func NewMemberController(logger *slog.Logger, svc domain.MemberService) *MemberController {
	return &MemberController{
		Logger:  logger,
		Service: svc,
	}
}

// Apply godoc
// @Summary Submit a membership application
// @Description Public endpoint. Membership carries a fee, so payment_number, payment_method, and transaction_id are required. One application per student ID.
// @Tags membership
// @Accept json
// @Produce json
// @Param application body ApplyRequest true "Application data"
// @Success 201 {object} controllers.ApplicationSuccessResponse "data contains the created application"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (student ID already applied)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /membership/applications [post]
func (c *MemberController) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	app, err := c.Service.Apply(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, app)
}

// List godoc
// @Summary List membership applications
// @Description Admin listing with optional status filter and free-text search over name, email, and student ID.
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param search query string false "Search name, email, or student ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ApplicationListSuccessResponse "data contains applications and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /membership/applications [get]
func (c *MemberController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ApplicationFilter{Search: q.Get("search")}
	if s := q.Get("status"); s != "" {
		status := domain.ApplicationStatus(s)
		filter.Status = &status
	}
	p := helpers.ParsePagination(r)

	apps, total, err := c.Service.List(r.Context(), filter, p)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ApplicationListResponse{
		Applications: apps,
		Pagination:   helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// GetByID godoc
// @Summary Get a membership application
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param applicationID path string true "Application ID"
// @Success 200 {object} controllers.ApplicationSuccessResponse "data contains the application"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /membership/applications/{applicationID} [get]
func (c *MemberController) GetByID(w http.ResponseWriter, r *http.Request) {
	applicationID := r.PathValue("applicationID")
	if applicationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing applicationID")
		return
	}
	app, err := c.Service.GetByID(r.Context(), applicationID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, app)
}

// Review godoc
// @Summary Review a membership application
// @Description Admin review. Updates status and/or payment_status and stamps the reviewer.
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationID path string true "Application ID"
// @Param review body ReviewRequest true "Review decision"
// @Success 200 {object} controllers.ApplicationSuccessResponse "data contains the reviewed application"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /membership/applications/{applicationID} [patch]
func (c *MemberController) Review(w http.ResponseWriter, r *http.Request) {
	applicationID := r.PathValue("applicationID")
	if applicationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing applicationID")
		return
	}
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req ReviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	review := domain.ApplicationReview{}
	if req.Status != nil {
		status := domain.ApplicationStatus(*req.Status)
		review.Status = &status
	}
	if req.PaymentStatus != nil {
		status := domain.ApplicationPaymentStatus(*req.PaymentStatus)
		review.PaymentStatus = &status
	}
	app, err := c.Service.Review(r.Context(), applicationID, review, adminID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, app)
}

// Delete godoc
// @Summary Delete a membership application
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param applicationID path string true "Application ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /membership/applications/{applicationID} [delete]
func (c *MemberController) Delete(w http.ResponseWriter, r *http.Request) {
	applicationID := r.PathValue("applicationID")
	if applicationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing applicationID")
		return
	}
	if err := c.Service.Delete(r.Context(), applicationID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "application deleted"})
}
