package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/analytics"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/internal/middleware"
)

func MonthlySpendingHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		totals, err := database.GetMonthlySpending(ctx, pool, user.ID)
		if err != nil {
			log.Printf("Ошибка месячной аналитики: %v", err)
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}

func DailySpendingHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		totals, err := database.GetDailySpending(ctx, pool, user.ID)
		if err != nil {
			log.Printf("Ошибка дневной аналитики: %v", err)
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}

func CategorySpendingHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		totals, err := database.GetCategorySpending(ctx, pool, user.ID)
		if err != nil {
			log.Printf("Ошибка аналитики по категориям: %v", err)
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}

func BudgetVsActualHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		month := r.URL.Query().Get("month")
		monthStart, err := analytics.ParseMonth(month)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		budget, err := database.GetBudget(ctx, pool, user.ID, month)
		if err != nil {
			log.Printf("Ошибка сравнения бюджета: %v", err)
			writeStoreError(w, err)
			return
		}
		if budget == nil {
			writeError(w, http.StatusNotFound, "Budget not set for this month")
			return
		}

		spent, err := database.GetMonthSpend(ctx, pool, user.ID, monthStart)
		if err != nil {
			log.Printf("Ошибка сравнения бюджета: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, analytics.CompareBudget(month, budget.TotalBudget, spent))
	}
}

func CategoryOverspendHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		month := r.URL.Query().Get("month")
		monthStart, err := analytics.ParseMonth(month)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		overspends, err := database.GetCategoryOverspend(ctx, pool, user.ID, month, monthStart)
		if err != nil {
			log.Printf("Ошибка поиска перерасхода: %v", err)
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, overspends)
	}
}

func InsightsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		month := r.URL.Query().Get("month")
		monthStart, err := analytics.ParseMonth(month)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		budget, err := database.GetBudget(ctx, pool, user.ID, month)
		if err != nil {
			log.Printf("Ошибка построения сводки: %v", err)
			writeStoreError(w, err)
			return
		}
		if budget == nil {
			// Отсутствие бюджета — информационное сообщение, не ошибка.
			writeJSON(w, http.StatusOK, map[string]string{"message": "No budget set for this month."})
			return
		}

		spent, err := database.GetMonthSpend(ctx, pool, user.ID, monthStart)
		if err != nil {
			log.Printf("Ошибка построения сводки: %v", err)
			writeStoreError(w, err)
			return
		}

		topCategory, hasTopCategory, err := database.GetTopCategory(ctx, pool, user.ID, monthStart)
		if err != nil {
			log.Printf("Ошибка построения сводки: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, analytics.BuildInsight(budget.TotalBudget, spent, topCategory, hasTopCategory))
	}
}

func PredictionHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		totals, err := database.GetRecentMonthlyTotals(ctx, pool, user.ID, 3)
		if err != nil {
			log.Printf("Ошибка прогноза: %v", err)
			writeStoreError(w, err)
			return
		}

		prediction, ok := analytics.Predict(totals)
		if !ok {
			writeJSON(w, http.StatusOK, map[string]string{"message": "Not enough data to make prediction"})
			return
		}
		writeJSON(w, http.StatusOK, prediction)
	}
}

type savingsSimulatorRequest struct {
	GoalAmount    *float64 `json:"goal_amount"`
	Months        *int     `json:"months"`
	MonthlyIncome *float64 `json:"monthly_income"`
}

func SavingsSimulatorHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		var req savingsSimulatorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// Нулевое значение отклоняется наравне с отсутствующим — поведение
		// зафиксировано контрактом.
		if req.GoalAmount == nil || *req.GoalAmount == 0 ||
			req.Months == nil || *req.Months == 0 ||
			req.MonthlyIncome == nil || *req.MonthlyIncome == 0 {
			writeError(w, http.StatusBadRequest, "goal_amount, months, and monthly_income required")
			return
		}
		if *req.Months < 0 {
			writeError(w, http.StatusBadRequest, "months must be a positive number")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		avgSpend, err := database.GetAvgMonthlySpend(ctx, pool, user.ID)
		if err != nil {
			log.Printf("Ошибка симулятора накоплений: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, analytics.SimulateSavings(*req.GoalAmount, *req.Months, *req.MonthlyIncome, avgSpend))
	}
}
