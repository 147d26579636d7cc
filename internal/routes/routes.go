package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/handlers"
	"github.com/marialebedeva/finance-api/internal/middleware"
)

func SetupRouter(pool *pgxpool.Pool) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("API is running..."))
	}).Methods("GET")

	r.HandleFunc("/register", handlers.RegisterHandler(pool)).Methods("POST")
	r.HandleFunc("/login", handlers.LoginHandler(pool)).Methods("POST")

	// Всё ниже доступно только с валидным Bearer-токеном.
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(middleware.Authenticate)

	protected.HandleFunc("/transactions", handlers.AddTransactionHandler(pool)).Methods("POST")
	protected.HandleFunc("/transactions", handlers.GetTransactionsHandler(pool)).Methods("GET")

	protected.HandleFunc("/budgets", handlers.SetBudgetHandler(pool)).Methods("POST")
	protected.HandleFunc("/budgets", handlers.GetBudgetHandler(pool)).Methods("GET")
	protected.HandleFunc("/budgets/category", handlers.SetCategoryBudgetHandler(pool)).Methods("POST")
	protected.HandleFunc("/budgets/category", handlers.GetCategoryBudgetsHandler(pool)).Methods("GET")

	protected.HandleFunc("/categories", handlers.CreateCategoryHandler(pool)).Methods("POST")
	protected.HandleFunc("/categories", handlers.GetCategoriesHandler(pool)).Methods("GET")

	protected.HandleFunc("/analytics/monthly", handlers.MonthlySpendingHandler(pool)).Methods("GET")
	protected.HandleFunc("/analytics/daily", handlers.DailySpendingHandler(pool)).Methods("GET")
	protected.HandleFunc("/analytics/categories", handlers.CategorySpendingHandler(pool)).Methods("GET")
	protected.HandleFunc("/analytics/budget-vs-actual", handlers.BudgetVsActualHandler(pool)).Methods("GET")
	protected.HandleFunc("/analytics/category-overspend", handlers.CategoryOverspendHandler(pool)).Methods("GET")
	protected.HandleFunc("/analytics/insights", handlers.InsightsHandler(pool)).Methods("GET")
	protected.HandleFunc("/analytics/prediction", handlers.PredictionHandler(pool)).Methods("GET")
	protected.HandleFunc("/analytics/savings-simulator", handlers.SavingsSimulatorHandler(pool)).Methods("POST")

	return r
}
