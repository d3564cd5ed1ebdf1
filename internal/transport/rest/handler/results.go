package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/luay-ju/formilon-project/internal/model"
	"github.com/luay-ju/formilon-project/internal/service"
	"github.com/luay-ju/formilon-project/internal/transport/rest/middleware"
)

// ResultsHandler handles analytics report endpoints
type ResultsHandler struct {
	resultsSvc *service.ResultsService
	formSvc    *service.FormService
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsSvc *service.ResultsService, formSvc *service.FormService) *ResultsHandler {
	return &ResultsHandler{
		resultsSvc: resultsSvc,
		formSvc:    formSvc,
	}
}

// Get handles GET /v1/forms/{formId}/results
//
// Cross-filters are passed as repeated filter params of the form
// "questionId:value1,value2"; answers count toward a question only when
// their submission answered every filter question with an allowed value.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.resultsSvc.GetReport(r.Context(), formID, parseFilters(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// parseFilters reads filter params shaped "questionId:v1,v2". Malformed
// entries are ignored rather than rejected.
func parseFilters(r *http.Request) model.FilterSet {
	filters := model.FilterSet{}
	for _, raw := range r.URL.Query()["filter"] {
		questionID, values, ok := strings.Cut(raw, ":")
		if !ok || questionID == "" || values == "" {
			continue
		}
		filters[questionID] = append(filters[questionID], strings.Split(values, ",")...)
	}
	return filters
}
