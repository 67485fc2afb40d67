package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/simranbali-ace04/CampusHubX/internal/handler/middleware"
	"github.com/simranbali-ace04/CampusHubX/internal/metrics"
	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
	"github.com/simranbali-ace04/CampusHubX/internal/usecase"
	"github.com/simranbali-ace04/CampusHubX/shared/auth"
	"github.com/simranbali-ace04/CampusHubX/shared/validator"
)

// CollegeHandler wires the college directory, dashboard, roster and
// verification endpoints to their usecases.
type CollegeHandler struct {
	resolver     usecase.OwnerResolver
	colleges     usecase.CollegeUsecase
	dashboard    usecase.DashboardUsecase
	pending      usecase.PendingQueueUsecase
	verification usecase.VerificationUsecase
	validator    *validator.Validator
	metrics      *metrics.Metrics
	logger       *zerolog.Logger
}

// NewCollegeHandler creates a new CollegeHandler instance.
func NewCollegeHandler(
	resolver usecase.OwnerResolver,
	colleges usecase.CollegeUsecase,
	dashboard usecase.DashboardUsecase,
	pending usecase.PendingQueueUsecase,
	verification usecase.VerificationUsecase,
	validator *validator.Validator,
	metrics *metrics.Metrics,
	logger *zerolog.Logger,
) *CollegeHandler {
	return &CollegeHandler{
		resolver:     resolver,
		colleges:     colleges,
		dashboard:    dashboard,
		pending:      pending,
		verification: verification,
		validator:    validator,
		metrics:      metrics,
		logger:       logger,
	}
}

// Register mounts the college endpoints on the router.
func (h *CollegeHandler) Register(r chi.Router) {
	r.Get("/colleges", h.ListColleges)
	r.Get("/colleges/{id}", h.GetCollege)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleCollege))

		r.Get("/colleges/profile", h.GetProfile)
		r.Patch("/colleges/profile", h.UpdateProfile)
		r.Get("/colleges/stats", h.GetStats)
		r.Get("/colleges/verifications/pending", h.ListPendingVerifications)
		r.Get("/colleges/{collegeId}/students", h.ListStudents)
		r.Get("/colleges/students/{studentId}", h.GetStudentProfile)
		r.Post("/colleges/verify-student/{studentId}", h.VerifyStudent)
		r.Patch("/achievements/{id}/verify", h.VerifyAchievement)
		r.Patch("/projects/{id}/verify", h.VerifyProject)
	})
}

// ListColleges handles GET /colleges.
func (h *CollegeHandler) ListColleges(w http.ResponseWriter, r *http.Request) {
	page, limit, skip := paginate(r)

	params := repository.FilterCollegesParams{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Skip:   skip,
	}
	if r.URL.Query().Get("verified") == "true" {
		verified := true
		params.Verified = &verified
	}

	colleges, total, err := h.colleges.ListColleges(r.Context(), params)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if colleges == nil {
		colleges = []*model.College{}
	}

	writeSuccess(w, http.StatusOK, newPageData(colleges, total, page, limit), "Colleges retrieved successfully")
}

// GetCollege handles GET /colleges/{id}.
func (h *CollegeHandler) GetCollege(w http.ResponseWriter, r *http.Request) {
	college, err := h.colleges.GetCollege(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, college, "College retrieved successfully")
}

// GetProfile handles GET /colleges/profile.
func (h *CollegeHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	writeSuccess(w, http.StatusOK, college, "Profile retrieved successfully")
}

// UpdateProfile handles PATCH /colleges/profile.
func (h *CollegeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	var req UpdateCollegeProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	updated, err := h.colleges.UpdateProfile(r.Context(), college, req.toParams())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, updated, "Profile updated successfully")
}

// GetStats handles GET /colleges/stats.
func (h *CollegeHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	stats, err := h.dashboard.GetStats(r.Context(), college)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, stats, "Dashboard stats retrieved successfully")
}

// ListPendingVerifications handles GET /colleges/verifications/pending.
func (h *CollegeHandler) ListPendingVerifications(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	_, limit, skip := paginate(r)

	pending, err := h.pending.ListPending(r.Context(), college, limit, skip)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, pending, "Pending verifications retrieved successfully")
}

// ListStudents handles GET /colleges/{collegeId}/students.
func (h *CollegeHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	page, limit, skip := paginate(r)

	students, total, err := h.colleges.ListStudents(r.Context(), college, chi.URLParam(r, "collegeId"), limit, skip)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if students == nil {
		students = []*usecase.StudentWithSkills{}
	}

	writeSuccess(w, http.StatusOK, newPageData(students, total, page, limit), "Students retrieved successfully")
}

// GetStudentProfile handles GET /colleges/students/{studentId}.
func (h *CollegeHandler) GetStudentProfile(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	profile, err := h.colleges.GetStudentProfile(r.Context(), college, chi.URLParam(r, "studentId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, profile, "Student profile retrieved successfully")
}

// VerifyStudent handles POST /colleges/verify-student/{studentId}.
func (h *CollegeHandler) VerifyStudent(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	result, err := h.verification.VerifyStudent(r.Context(), college, chi.URLParam(r, "studentId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordVerification("student", "verified")
	writeSuccess(w, http.StatusOK, result, "Student verified successfully")
}

// VerifyAchievement handles PATCH /achievements/{id}/verify.
func (h *CollegeHandler) VerifyAchievement(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	status, ok := h.decodeVerifyStatus(w, r)
	if !ok {
		return
	}

	achievement, err := h.verification.SetAchievementStatus(r.Context(), college, chi.URLParam(r, "id"), status)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordVerification("achievement", string(status))
	writeSuccess(w, http.StatusOK, achievement, "Achievement status updated successfully")
}

// VerifyProject handles PATCH /projects/{id}/verify.
func (h *CollegeHandler) VerifyProject(w http.ResponseWriter, r *http.Request) {
	college, ok := h.resolveCollege(w, r)
	if !ok {
		return
	}

	status, ok := h.decodeVerifyStatus(w, r)
	if !ok {
		return
	}

	project, err := h.verification.SetProjectStatus(r.Context(), college, chi.URLParam(r, "id"), status)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordVerification("project", string(status))
	writeSuccess(w, http.StatusOK, project, "Project status updated successfully")
}

// resolveCollege maps the request principal to its college record. Resolution
// happens on every request; profiles are never cached across requests.
func (h *CollegeHandler) resolveCollege(w http.ResponseWriter, r *http.Request) (*model.College, bool) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return nil, false
	}

	college, err := h.resolver.ResolveCollege(r.Context(), principal)
	if err != nil {
		writeError(w, h.logger, err)
		return nil, false
	}

	return college, true
}

func (h *CollegeHandler) decodeVerifyStatus(w http.ResponseWriter, r *http.Request) (model.VerificationStatus, bool) {
	var req VerifyRequest
	if !decodeJSON(w, r, &req) {
		return "", false
	}
	if err := h.validator.Struct(&req); err != nil {
		writeValidationError(w, err.Error())
		return "", false
	}

	return model.VerificationStatus(req.Status), true
}
