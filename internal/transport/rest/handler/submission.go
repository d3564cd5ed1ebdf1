package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/luay-ju/formilon-project/internal/model"
	"github.com/luay-ju/formilon-project/internal/service"
	"github.com/luay-ju/formilon-project/internal/transport/rest/middleware"
)

// SubmissionHandler handles submission endpoints
type SubmissionHandler struct {
	submissionSvc *service.SubmissionService
	formSvc       *service.FormService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionSvc *service.SubmissionService, formSvc *service.FormService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionSvc: submissionSvc,
		formSvc:       formSvc,
	}
}

// CreateSubmissionRequest is the request body for submitting answers
type CreateSubmissionRequest struct {
	FormID    string                   `json:"formId"`
	Completed bool                     `json:"completed"`
	Metadata  model.SubmissionMetadata `json:"metadata"`
	Answers   []model.Answer           `json:"answers"`
}

// Create handles POST /v1/submissions (public)
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FormID == "" {
		writeError(w, http.StatusBadRequest, "formId is required")
		return
	}

	if req.Metadata.UserAgent == "" {
		req.Metadata.UserAgent = r.UserAgent()
	}

	submission := &model.Submission{
		FormID:    req.FormID,
		Completed: req.Completed,
		Metadata:  req.Metadata,
		Answers:   req.Answers,
	}

	err := h.submissionSvc.Create(r.Context(), submission)
	switch err {
	case nil:
	case service.ErrFormNotFound:
		writeError(w, http.StatusNotFound, err.Error())
		return
	case service.ErrFormNotPublished:
		writeError(w, http.StatusForbidden, err.Error())
		return
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"submissionId": submission.ID})
}

// Get handles GET /v1/forms/{formId}/submissions/{submissionId}
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	form, err := h.formSvc.GetByID(r.Context(), vars["formId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}
	if form.OwnerID != userID {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	submission, err := h.submissionSvc.GetByID(r.Context(), vars["submissionId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if submission == nil || submission.FormID != form.ID {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}

	writeJSON(w, http.StatusOK, submission)
}

// ListByForm handles GET /v1/forms/{formId}/submissions
func (h *SubmissionHandler) ListByForm(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	form, err := h.formSvc.GetByID(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}
	if form.OwnerID != userID {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	submissions, err := h.submissionSvc.ListByForm(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": submissions})
}
