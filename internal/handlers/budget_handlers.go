package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/analytics"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/internal/middleware"
	"github.com/marialebedeva/finance-api/models"
)

type setBudgetRequest struct {
	Month       string   `json:"month"`
	TotalBudget *float64 `json:"total_budget"`
}

func SetBudgetHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		var req setBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Month == "" || req.TotalBudget == nil {
			writeError(w, http.StatusBadRequest, "month and total_budget are required")
			return
		}
		if _, err := analytics.ParseMonth(req.Month); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if *req.TotalBudget < 0 {
			writeError(w, http.StatusBadRequest, "total_budget must be non-negative")
			return
		}

		budget := models.Budget{
			UserID:      user.ID,
			Month:       req.Month,
			TotalBudget: *req.TotalBudget,
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		if err := database.UpsertBudget(ctx, pool, &budget); err != nil {
			log.Printf("Ошибка сохранения бюджета: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Budget saved",
			"budget":  budget,
		})
	}
}

func GetBudgetHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		month := r.URL.Query().Get("month")
		if _, err := analytics.ParseMonth(month); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		budget, err := database.GetBudget(ctx, pool, user.ID, month)
		if err != nil {
			log.Printf("Ошибка получения бюджета: %v", err)
			writeStoreError(w, err)
			return
		}

		// Бюджет не установлен — это null, а не ошибка.
		writeJSON(w, http.StatusOK, budget)
	}
}

type setCategoryBudgetRequest struct {
	Month        string   `json:"month"`
	CategoryID   *int     `json:"category_id"`
	BudgetAmount *float64 `json:"budget_amount"`
}

func SetCategoryBudgetHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		var req setCategoryBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Month == "" || req.CategoryID == nil || req.BudgetAmount == nil {
			writeError(w, http.StatusBadRequest, "month, category_id, and budget_amount are required")
			return
		}
		if _, err := analytics.ParseMonth(req.Month); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if *req.BudgetAmount < 0 {
			writeError(w, http.StatusBadRequest, "budget_amount must be non-negative")
			return
		}

		cb := models.CategoryBudget{
			UserID:       user.ID,
			Month:        req.Month,
			CategoryID:   *req.CategoryID,
			BudgetAmount: *req.BudgetAmount,
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		if err := database.UpsertCategoryBudget(ctx, pool, &cb); err != nil {
			log.Printf("Ошибка сохранения бюджета категории: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":         "Category budget saved",
			"category_budget": cb,
		})
	}
}

func GetCategoryBudgetsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		month := r.URL.Query().Get("month")
		if _, err := analytics.ParseMonth(month); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		budgets, err := database.GetCategoryBudgets(ctx, pool, user.ID, month)
		if err != nil {
			log.Printf("Ошибка получения бюджетов категорий: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, budgets)
	}
}
