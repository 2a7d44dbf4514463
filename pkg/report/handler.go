package report

import (
	"encoding/json"
	"net/http"
)

type CategoryTotalDTO struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) CategoryReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	totals, err := h.service.CategoryReport(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalsDTO := make([]CategoryTotalDTO, 0, len(totals))
	for _, total := range totals {
		totalsDTO = append(totalsDTO, CategoryTotalDTO{
			Category: total.CategoryName,
			Total:    total.Total.String(),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(totalsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
