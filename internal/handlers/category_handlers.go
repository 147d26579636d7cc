package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/models"
)

func CreateCategoryHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if category.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		if err := database.CreateCategory(ctx, pool, &category); err != nil {
			log.Printf("Ошибка создания категории: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}

func GetCategoriesHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		categories, err := database.GetAllCategories(ctx, pool)
		if err != nil {
			log.Printf("Ошибка получения категорий: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}
