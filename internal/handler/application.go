package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/simranbali-ace04/CampusHubX/internal/handler/middleware"
	"github.com/simranbali-ace04/CampusHubX/internal/metrics"
	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/usecase"
	"github.com/simranbali-ace04/CampusHubX/shared/auth"
	"github.com/simranbali-ace04/CampusHubX/shared/validator"
)

// ApplicationHandler wires the application lifecycle endpoints to their usecase.
type ApplicationHandler struct {
	resolver     usecase.OwnerResolver
	applications usecase.ApplicationUsecase
	validator    *validator.Validator
	metrics      *metrics.Metrics
	logger       *zerolog.Logger
}

// NewApplicationHandler creates a new ApplicationHandler instance.
func NewApplicationHandler(
	resolver usecase.OwnerResolver,
	applications usecase.ApplicationUsecase,
	validator *validator.Validator,
	metrics *metrics.Metrics,
	logger *zerolog.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		resolver:     resolver,
		applications: applications,
		validator:    validator,
		metrics:      metrics,
		logger:       logger,
	}
}

// Register mounts the application endpoints on the router.
func (h *ApplicationHandler) Register(r chi.Router) {
	recruiterOnly := middleware.RequireRole(auth.RoleRecruiter)
	studentOnly := middleware.RequireRole(auth.RoleStudent)

	r.With(recruiterOnly).Get("/applications", h.List)
	r.With(recruiterOnly).Get("/applications/{id}", h.Get)
	r.With(recruiterOnly).Patch("/applications/{id}/status", h.UpdateStatus)

	r.With(studentOnly).Get("/applications/my", h.ListMine)
	r.With(studentOnly).Post("/applications", h.Apply)
	r.With(studentOnly).Post("/applications/{id}/withdraw", h.Withdraw)
}

// List handles GET /applications.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	recruiter, ok := h.resolveRecruiter(w, r)
	if !ok {
		return
	}

	page, limit, skip := paginate(r)

	var statusFilter *model.ApplicationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := model.ApplicationStatus(raw)
		if !status.Valid() {
			writeValidationError(w, "invalid status filter")
			return
		}
		statusFilter = &status
	}

	applications, total, err := h.applications.List(r.Context(), recruiter, statusFilter, limit, skip)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if applications == nil {
		applications = []*usecase.ApplicationDetail{}
	}

	writeSuccess(w, http.StatusOK, newPageData(applications, total, page, limit), "Applications retrieved successfully")
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	recruiter, ok := h.resolveRecruiter(w, r)
	if !ok {
		return
	}

	application, err := h.applications.Get(r.Context(), recruiter, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, application, "Application retrieved successfully")
}

// UpdateStatus handles PATCH /applications/{id}/status.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	recruiter, ok := h.resolveRecruiter(w, r)
	if !ok {
		return
	}

	var req UpdateApplicationStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	application, err := h.applications.UpdateStatus(
		r.Context(),
		recruiter,
		chi.URLParam(r, "id"),
		model.ApplicationStatus(req.Status),
	)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordApplicationTransition(req.Status)
	writeSuccess(w, http.StatusOK, application, "Application status updated successfully")
}

// ListMine handles GET /applications/my.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	student, ok := h.resolveStudent(w, r)
	if !ok {
		return
	}

	page, limit, skip := paginate(r)

	applications, total, err := h.applications.ListMine(r.Context(), student, limit, skip)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if applications == nil {
		applications = []*model.Application{}
	}

	writeSuccess(w, http.StatusOK, newPageData(applications, total, page, limit), "Applications retrieved successfully")
}

// Apply handles POST /applications.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	student, ok := h.resolveStudent(w, r)
	if !ok {
		return
	}

	var req ApplyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	application, err := h.applications.Apply(r.Context(), student, usecase.ApplyParams{
		OpportunityID: req.OpportunityID,
		ResumeURL:     req.ResumeURL,
		CoverLetter:   req.CoverLetter,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, application, "Application submitted successfully")
}

// Withdraw handles POST /applications/{id}/withdraw.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	student, ok := h.resolveStudent(w, r)
	if !ok {
		return
	}

	application, err := h.applications.Withdraw(r.Context(), student, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordApplicationTransition(string(model.ApplicationWithdrawn))
	writeSuccess(w, http.StatusOK, application, "Application withdrawn successfully")
}

func (h *ApplicationHandler) resolveRecruiter(w http.ResponseWriter, r *http.Request) (*model.Recruiter, bool) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return nil, false
	}

	recruiter, err := h.resolver.ResolveRecruiter(r.Context(), principal)
	if err != nil {
		writeError(w, h.logger, err)
		return nil, false
	}

	return recruiter, true
}

func (h *ApplicationHandler) resolveStudent(w http.ResponseWriter, r *http.Request) (*model.Student, bool) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return nil, false
	}

	student, err := h.resolver.ResolveStudent(r.Context(), principal)
	if err != nil {
		writeError(w, h.logger, err)
		return nil, false
	}

	return student, true
}
