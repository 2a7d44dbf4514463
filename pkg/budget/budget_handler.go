package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	ID    int    `json:"id,omitempty"`
	Month string `json:"month"`
	Limit string `json:"limit"`
}

type MonthStatusDTO struct {
	Month  string `json:"month"`
	Spent  string `json:"spent"`
	Limit  string `json:"limit,omitempty"`
	Status string `json:"status"`
}

type BudgetHandler struct {
	budgetService BudgetService
}

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

func (handler *BudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting monthly budget")
	w.Header().Set("Content-Type", "application/json")
	month := mux.Vars(r)["month"]

	var budgetDTO BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&budgetDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := handler.budgetService.Set(r.Context(), month, budgetDTO.Limit)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) || errors.Is(err, ErrInvalidLimit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(BudgetToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) MonthStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	month := mux.Vars(r)["month"]

	status, err := handler.budgetService.MonthStatus(r.Context(), month)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	statusDTO := MonthStatusDTO{
		Month:  status.Month,
		Spent:  status.Spent.String(),
		Status: string(status.Status),
	}
	if status.Status != StatusNoBudget {
		statusDTO.Limit = status.Limit.String()
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(statusDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func BudgetToDTO(budget Budget) BudgetDTO {
	return BudgetDTO{
		ID:    budget.ID,
		Month: budget.Month,
		Limit: budget.Limit.String(),
	}
}
