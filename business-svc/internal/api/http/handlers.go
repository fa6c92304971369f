package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"local-business-dashboard/business-svc/internal/domain"
	"local-business-dashboard/business-svc/internal/service"
)

const (
	msgMissingBody   = "Name and location are required"
	msgMissingParams = "Name and location query parameters are required"
)

type Handler struct {
	Business service.BusinessServiceInterface
}

func NewHandler(business service.BusinessServiceInterface) *Handler {
	return &Handler{Business: business}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/business-data", h.fetchBusinessData).Methods("POST")
	r.HandleFunc("/regenerate-headline", h.regenerateHeadline).Methods("GET")
	r.HandleFunc("/review-qrcode", h.reviewQRCode).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "business-svc",
	})
}

func (h *Handler) fetchBusinessData(w http.ResponseWriter, r *http.Request) {
	// A body that is not a JSON object of strings is treated like one
	// without the required fields.
	var query domain.BusinessQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingBody)
		return
	}

	data, err := h.Business.FetchBusinessData(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) regenerateHeadline(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Business.RegenerateHeadline(r.Context(), queryFromURL(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) reviewQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Business.ReviewQRCode(queryFromURL(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingBusinessData):
		writeError(w, http.StatusBadRequest, msgMissingBody)
	case errors.Is(err, service.ErrMissingQueryParams):
		writeError(w, http.StatusBadRequest, msgMissingParams)
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func queryFromURL(r *http.Request) domain.BusinessQuery {
	values := r.URL.Query()
	return domain.BusinessQuery{
		Name:     values.Get("name"),
		Location: values.Get("location"),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, domain.ErrorResponse{Error: message})
}
