package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Category
	r.HandleFunc("/api/category", deps.CategoryHandler.GetOrCreate).Methods("POST")
	r.HandleFunc("/api/category", deps.CategoryHandler.GetAll).Methods("GET")

	// Expense
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expense/search", deps.ExpenseHandler.SearchByDate).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.GetByID).Methods("GET")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Budget
	r.HandleFunc("/api/budget/{month}", deps.BudgetHandler.Set).Methods("PUT")
	r.HandleFunc("/api/budget/{month}/status", deps.BudgetHandler.MonthStatus).Methods("GET")

	// Report
	r.HandleFunc("/api/report/category", deps.ReportHandler.CategoryReport).Methods("GET")
}
