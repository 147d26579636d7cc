package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/models"
)

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, amount, category_id, note, vendor, txn_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := pool.QueryRow(ctx, query,
		transaction.UserID,
		transaction.Amount,
		transaction.CategoryID,
		transaction.Note,
		transaction.Vendor,
		transaction.TxnDate).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %w", err)
	}
	return nil
}

// GetTransactions возвращает транзакции пользователя с необязательными фильтрами.
// Условия собираются списком плейсхолдеров, значения в текст запроса не попадают.
func GetTransactions(ctx context.Context, pool *pgxpool.Pool, userID int, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, category_id, note, vendor, txn_date
		FROM transactions
		WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND txn_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND txn_date <= $%d", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Vendor != nil {
		args = append(args, "%"+*filter.Vendor+"%")
		query += fmt.Sprintf(" AND vendor ILIKE $%d", len(args))
	}

	query += ` ORDER BY txn_date DESC, id DESC`

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.CategoryID, &t.Note, &t.Vendor, &t.TxnDate); err != nil {
			return nil, fmt.Errorf("ошибка чтения транзакции: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
