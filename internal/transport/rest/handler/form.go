package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/luay-ju/formilon-project/internal/model"
	"github.com/luay-ju/formilon-project/internal/service"
	"github.com/luay-ju/formilon-project/internal/transport/rest/middleware"
)

// FormHandler handles form endpoints
type FormHandler struct {
	formSvc *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// CreateFormRequest is the request body for creating or updating a form
type CreateFormRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
}

// PublishRequest is the request body for publishing a form
type PublishRequest struct {
	Published bool `json:"published"`
}

// Create handles POST /v1/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// An empty body creates an untitled draft
	var req CreateFormRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	form := &model.Form{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	}

	id, err := h.formSvc.Create(r.Context(), form)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"formId": id})
}

// List handles GET /v1/forms
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	forms, err := h.formSvc.GetByOwnerID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	type formListItem struct {
		*model.Form
		SubmissionCount int64 `json:"submissionCount"`
	}

	items := make([]formListItem, 0, len(forms))
	for _, form := range forms {
		count, err := h.formSvc.SubmissionCount(r.Context(), form.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		items = append(items, formListItem{Form: form, SubmissionCount: count})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"forms": items})
}

// Get handles GET /v1/forms/{formId}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	form, ok := h.ownedForm(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// GetPublic handles GET /v1/forms/{formId}/view, the respondent-facing
// form definition, available without auth once published
func (h *FormHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.formSvc.GetByID(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil || !form.Published {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Update handles PUT /v1/forms/{formId}
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	form, ok := h.ownedForm(w, r)
	if !ok {
		return
	}

	var req CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form.Title = req.Title
	form.Description = req.Description
	form.Questions = req.Questions

	if err := h.formSvc.Update(r.Context(), form); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Publish handles POST /v1/forms/{formId}/publish
func (h *FormHandler) Publish(w http.ResponseWriter, r *http.Request) {
	form, ok := h.ownedForm(w, r)
	if !ok {
		return
	}

	req := PublishRequest{Published: true}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := h.formSvc.SetPublished(r.Context(), form.ID, req.Published); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"published": req.Published})
}

// Delete handles DELETE /v1/forms/{formId}
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	form, ok := h.ownedForm(w, r)
	if !ok {
		return
	}

	if err := h.formSvc.Delete(r.Context(), form.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ownedForm loads the form in the path and verifies the caller owns it
func (h *FormHandler) ownedForm(w http.ResponseWriter, r *http.Request) (*model.Form, bool) {
	formID := mux.Vars(r)["formId"]
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	form, err := h.formSvc.GetByID(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return nil, false
	}
	if form.OwnerID != userID {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return form, true
}
