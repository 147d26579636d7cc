package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/internal/middleware"
	"github.com/marialebedeva/finance-api/models"
)

func RegisterHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if user.Email == "" || user.Password == "" || user.Name == "" {
			writeError(w, http.StatusBadRequest, "email, password, and name are required")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		if err := database.RegisterUser(ctx, pool, &user); err != nil {
			log.Printf("Ошибка регистрации пользователя: %v", err)
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "User registered",
			"user_id": user.ID,
		})
	}
}

func LoginHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials models.User
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		ctx, cancel := requestContext(r)
		defer cancel()

		user, err := database.AuthenticateUser(ctx, pool, credentials.Email, credentials.Password)
		if err != nil {
			if errors.Is(err, database.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			log.Printf("Ошибка авторизации: %v", err)
			writeStoreError(w, err)
			return
		}

		token, err := middleware.GenerateToken(user)
		if err != nil {
			log.Printf("Ошибка выпуска токена: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"token": token,
			"user":  user,
		})
	}
}
