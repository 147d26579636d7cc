package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/models"
)

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	err := pool.QueryRow(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании категории: %w", err)
	}
	return nil
}

func GetAllCategories(ctx context.Context, pool *pgxpool.Pool) ([]models.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка категорий: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("ошибка чтения категории: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
