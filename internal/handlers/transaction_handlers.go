package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/internal/middleware"
	"github.com/marialebedeva/finance-api/models"
)

type addTransactionRequest struct {
	Amount     *float64 `json:"amount"`
	CategoryID *int     `json:"category_id"`
	Note       *string  `json:"note"`
	Vendor     *string  `json:"vendor"`
	TxnDate    string   `json:"txn_date"`
}

func AddTransactionHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		var req addTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Amount == nil || req.TxnDate == "" {
			writeError(w, http.StatusBadRequest, "amount and txn_date are required")
			return
		}
		if *req.Amount < 0 {
			writeError(w, http.StatusBadRequest, "amount must be non-negative")
			return
		}
		txnDate, err := time.Parse("2006-01-02", req.TxnDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "txn_date must be in YYYY-MM-DD format")
			return
		}

		transaction := models.Transaction{
			UserID:     user.ID,
			Amount:     *req.Amount,
			CategoryID: req.CategoryID,
			Note:       req.Note,
			Vendor:     req.Vendor,
			TxnDate:    txnDate,
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		if err := database.CreateTransaction(ctx, pool, &transaction); err != nil {
			log.Printf("Ошибка добавления транзакции: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message":     "Transaction added",
			"transaction": transaction,
		})
	}
}

func GetTransactionsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization token missing")
			return
		}

		var filter models.TransactionFilter
		params := r.URL.Query()

		if v := params.Get("from"); v != "" {
			from, err := time.Parse("2006-01-02", v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "from must be in YYYY-MM-DD format")
				return
			}
			filter.From = &from
		}
		if v := params.Get("to"); v != "" {
			to, err := time.Parse("2006-01-02", v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "to must be in YYYY-MM-DD format")
				return
			}
			filter.To = &to
		}
		if v := params.Get("category_id"); v != "" {
			categoryID, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "category_id must be a number")
				return
			}
			filter.CategoryID = &categoryID
		}
		if v := params.Get("vendor"); v != "" {
			filter.Vendor = &v
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		transactions, err := database.GetTransactions(ctx, pool, user.ID, filter)
		if err != nil {
			log.Printf("Ошибка получения транзакций: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"count":        len(transactions),
			"transactions": transactions,
		})
	}
}
