package utils

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/models"
)

// Генерация тестовых данных для ручной проверки API.

func GenerateTestUser(ctx context.Context, pool *pgxpool.Pool) *models.User {
	user := &models.User{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 8),
		Name:     gofakeit.Name(),
	}
	if err := database.RegisterUser(ctx, pool, user); err != nil {
		log.Fatalf("ошибка при добавлении пользователя: %v", err)
	}
	return user
}

func GenerateTestCategories(ctx context.Context, pool *pgxpool.Pool, numCategories int) []models.Category {
	categories := make([]models.Category, 0, numCategories)
	for i := 0; i < numCategories; i++ {
		category := models.Category{Name: gofakeit.Word()}
		if err := database.CreateCategory(ctx, pool, &category); err != nil {
			log.Fatalf("ошибка при добавлении категории: %v", err)
		}
		categories = append(categories, category)
	}
	return categories
}

func GenerateTestTransactions(ctx context.Context, pool *pgxpool.Pool, userID int, categories []models.Category, numTransactions int) {
	for i := 0; i < numTransactions; i++ {
		transaction := models.Transaction{
			UserID:  userID,
			Amount:  gofakeit.Price(10, 5000),
			TxnDate: gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
		}
		if len(categories) > 0 && rand.Intn(4) != 0 { // примерно четверть без категории
			id := categories[rand.Intn(len(categories))].ID
			transaction.CategoryID = &id
		}
		if rand.Intn(2) == 0 {
			vendor := gofakeit.Company()
			transaction.Vendor = &vendor
		}
		if err := database.CreateTransaction(ctx, pool, &transaction); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}
