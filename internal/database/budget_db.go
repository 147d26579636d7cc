package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/models"
)

// UpsertBudget сохраняет бюджет месяца. Повторная установка для той же пары
// (user_id, month) атомарно перезаписывает прежнее значение.
func UpsertBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, month, total_budget)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, month)
		DO UPDATE SET total_budget = EXCLUDED.total_budget
		RETURNING id`

	err := pool.QueryRow(ctx, query,
		budget.UserID,
		budget.Month,
		budget.TotalBudget).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении бюджета: %w", err)
	}
	return nil
}

// GetBudget возвращает бюджет месяца либо nil, если он не установлен.
func GetBudget(ctx context.Context, pool *pgxpool.Pool, userID int, month string) (*models.Budget, error) {
	query := `
		SELECT id, user_id, month, total_budget
		FROM budgets
		WHERE user_id = $1 AND month = $2`

	budget := &models.Budget{}
	err := pool.QueryRow(ctx, query, userID, month).Scan(
		&budget.ID,
		&budget.UserID,
		&budget.Month,
		&budget.TotalBudget,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении бюджета: %w", err)
	}
	return budget, nil
}

func UpsertCategoryBudget(ctx context.Context, pool *pgxpool.Pool, cb *models.CategoryBudget) error {
	query := `
		INSERT INTO category_budgets (user_id, month, category_id, budget_amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month, category_id)
		DO UPDATE SET budget_amount = EXCLUDED.budget_amount
		RETURNING id`

	err := pool.QueryRow(ctx, query,
		cb.UserID,
		cb.Month,
		cb.CategoryID,
		cb.BudgetAmount).Scan(&cb.ID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении бюджета категории: %w", err)
	}
	return nil
}

func GetCategoryBudgets(ctx context.Context, pool *pgxpool.Pool, userID int, month string) ([]models.CategoryBudget, error) {
	query := `
		SELECT id, user_id, month, category_id, budget_amount
		FROM category_budgets
		WHERE user_id = $1 AND month = $2
		ORDER BY category_id`

	rows, err := pool.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бюджетов категорий: %w", err)
	}
	defer rows.Close()

	budgets := []models.CategoryBudget{}
	for rows.Next() {
		var cb models.CategoryBudget
		if err := rows.Scan(&cb.ID, &cb.UserID, &cb.Month, &cb.CategoryID, &cb.BudgetAmount); err != nil {
			return nil, fmt.Errorf("ошибка чтения бюджета категории: %w", err)
		}
		budgets = append(budgets, cb)
	}
	return budgets, rows.Err()
}
