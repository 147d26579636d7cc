package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/models"
)

// Интеграционные тесты ходят в настоящий PostgreSQL со схемой из schema.sql.
// Без TEST_DATABASE_URL пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL не задан, пропускаем интеграционный тест")
	}

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// testUser регистрирует свежего пользователя: у него гарантированно нет
// транзакций и бюджетов.
func testUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	user := &models.User{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 8),
		Name:     gofakeit.Name(),
	}
	if err := database.RegisterUser(context.Background(), pool, user); err != nil {
		t.Fatalf("ошибка регистрации тестового пользователя: %v", err)
	}
	return user
}

func testCategory(t *testing.T, pool *pgxpool.Pool) *models.Category {
	t.Helper()
	category := &models.Category{Name: gofakeit.UUID()}
	if err := database.CreateCategory(context.Background(), pool, category); err != nil {
		t.Fatalf("ошибка создания тестовой категории: %v", err)
	}
	return category
}
