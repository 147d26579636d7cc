package database_test

import (
	"context"
	"testing"

	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/models"
)

func TestUpsertBudgetIdempotent(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	ctx := context.Background()

	budget := &models.Budget{UserID: user.ID, Month: "2031-05", TotalBudget: 1000}
	if err := database.UpsertBudget(ctx, pool, budget); err != nil {
		t.Fatalf("ошибка сохранения бюджета: %v", err)
	}
	firstID := budget.ID

	// Повторная установка того же значения ничего не меняет.
	repeat := &models.Budget{UserID: user.ID, Month: "2031-05", TotalBudget: 1000}
	if err := database.UpsertBudget(ctx, pool, repeat); err != nil {
		t.Fatalf("ошибка повторного сохранения бюджета: %v", err)
	}
	if repeat.ID != firstID {
		t.Errorf("upsert создал новую строку: ID %d вместо %d", repeat.ID, firstID)
	}

	stored, err := database.GetBudget(ctx, pool, user.ID, "2031-05")
	if err != nil {
		t.Fatalf("ошибка получения бюджета: %v", err)
	}
	if stored == nil || stored.TotalBudget != 1000 || stored.ID != firstID {
		t.Errorf("бюджет после повторного upsert: %+v", stored)
	}
}

func TestUpsertBudgetOverwrites(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	ctx := context.Background()

	first := &models.Budget{UserID: user.ID, Month: "2031-06", TotalBudget: 1000}
	if err := database.UpsertBudget(ctx, pool, first); err != nil {
		t.Fatalf("ошибка сохранения бюджета: %v", err)
	}

	second := &models.Budget{UserID: user.ID, Month: "2031-06", TotalBudget: 1500}
	if err := database.UpsertBudget(ctx, pool, second); err != nil {
		t.Fatalf("ошибка перезаписи бюджета: %v", err)
	}

	stored, err := database.GetBudget(ctx, pool, user.ID, "2031-06")
	if err != nil {
		t.Fatalf("ошибка получения бюджета: %v", err)
	}
	if stored == nil || stored.TotalBudget != 1500 {
		t.Errorf("бюджет не перезаписался: %+v", stored)
	}
}

func TestGetBudgetMissing(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)

	budget, err := database.GetBudget(context.Background(), pool, user.ID, "2031-07")
	if err != nil {
		t.Fatalf("отсутствие бюджета не должно быть ошибкой: %v", err)
	}
	if budget != nil {
		t.Errorf("ожидали nil, получили %+v", budget)
	}
}

func TestUpsertCategoryBudget(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	category := testCategory(t, pool)
	ctx := context.Background()

	cb := &models.CategoryBudget{UserID: user.ID, Month: "2031-05", CategoryID: category.ID, BudgetAmount: 500}
	if err := database.UpsertCategoryBudget(ctx, pool, cb); err != nil {
		t.Fatalf("ошибка сохранения бюджета категории: %v", err)
	}

	cb.BudgetAmount = 700
	if err := database.UpsertCategoryBudget(ctx, pool, cb); err != nil {
		t.Fatalf("ошибка перезаписи бюджета категории: %v", err)
	}

	budgets, err := database.GetCategoryBudgets(ctx, pool, user.ID, "2031-05")
	if err != nil {
		t.Fatalf("ошибка получения бюджетов категорий: %v", err)
	}
	if len(budgets) != 1 || budgets[0].BudgetAmount != 700 {
		t.Errorf("бюджеты категорий: %+v", budgets)
	}
}
