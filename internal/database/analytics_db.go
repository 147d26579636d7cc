package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/models"
	"golang.org/x/net/context"
)

// Агрегирующие запросы аналитики. Только чтение, данные не меняются.

func GetMonthlySpending(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.MonthlyTotal, error) {
	query := `
		SELECT TO_CHAR(txn_date, 'YYYY-MM') AS month, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1
		GROUP BY month
		ORDER BY month`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении месячных расходов: %w", err)
	}
	defer rows.Close()

	totals := []models.MonthlyTotal{}
	for rows.Next() {
		var mt models.MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Total); err != nil {
			return nil, fmt.Errorf("ошибка чтения месячного итога: %w", err)
		}
		totals = append(totals, mt)
	}
	return totals, rows.Err()
}

func GetDailySpending(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.DailyTotal, error) {
	query := `
		SELECT txn_date AS date, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1
		GROUP BY txn_date
		ORDER BY txn_date`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении дневных расходов: %w", err)
	}
	defer rows.Close()

	totals := []models.DailyTotal{}
	for rows.Next() {
		var dt models.DailyTotal
		if err := rows.Scan(&dt.Date, &dt.Total); err != nil {
			return nil, fmt.Errorf("ошибка чтения дневного итога: %w", err)
		}
		totals = append(totals, dt)
	}
	return totals, rows.Err()
}

// GetCategorySpending группирует расходы по имени категории; транзакции без
// категории попадают в "Uncategorized". При равных суммах порядок фиксируется
// именем категории.
func GetCategorySpending(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.CategoryTotal, error) {
	query := `
		SELECT COALESCE(c.name, 'Uncategorized') AS category, SUM(t.amount) AS total
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		GROUP BY category
		ORDER BY total DESC, category`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении расходов по категориям: %w", err)
	}
	defer rows.Close()

	totals := []models.CategoryTotal{}
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("ошибка чтения итога по категории: %w", err)
		}
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}

// GetMonthSpend возвращает сумму расходов за календарный месяц monthStart.
// Без транзакций результат 0, не NULL.
func GetMonthSpend(ctx context.Context, pool *pgxpool.Pool, userID int, monthStart time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS spent
		FROM transactions
		WHERE user_id = $1
		AND DATE_TRUNC('month', txn_date) = DATE_TRUNC('month', $2::date)`

	var spent float64
	if err := pool.QueryRow(ctx, query, userID, monthStart).Scan(&spent); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте расходов за месяц: %w", err)
	}
	return spent, nil
}

// GetTopCategory возвращает категорию с наибольшей суммой расходов за месяц.
// Второе значение false, когда ни одна транзакция месяца не имеет категории.
func GetTopCategory(ctx context.Context, pool *pgxpool.Pool, userID int, monthStart time.Time) (string, bool, error) {
	query := `
		SELECT c.name, SUM(t.amount) AS spent
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		AND DATE_TRUNC('month', t.txn_date) = DATE_TRUNC('month', $2::date)
		GROUP BY c.name
		ORDER BY spent DESC, c.name
		LIMIT 1`

	rows, err := pool.Query(ctx, query, userID, monthStart)
	if err != nil {
		return "", false, fmt.Errorf("ошибка при поиске крупнейшей категории: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}
	var name string
	var spent float64
	if err := rows.Scan(&name, &spent); err != nil {
		return "", false, fmt.Errorf("ошибка чтения крупнейшей категории: %w", err)
	}
	return name, true, nil
}

// GetRecentMonthlyTotals возвращает итоги последних месяцев с активностью,
// от самого свежего к старому, не больше limit штук.
func GetRecentMonthlyTotals(ctx context.Context, pool *pgxpool.Pool, userID int, limit int) ([]float64, error) {
	query := `
		SELECT DATE_TRUNC('month', txn_date) AS month, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1
		GROUP BY month
		ORDER BY month DESC
		LIMIT $2`

	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении итогов последних месяцев: %w", err)
	}
	defer rows.Close()

	totals := []float64{}
	for rows.Next() {
		var month time.Time
		var total float64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, fmt.Errorf("ошибка чтения итога месяца: %w", err)
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

// GetCategoryOverspend возвращает только категории, где расходы месяца превысили
// бюджет категории, по убыванию перерасхода. Это фильтр: отсутствие строк — не ошибка.
func GetCategoryOverspend(ctx context.Context, pool *pgxpool.Pool, userID int, month string, monthStart time.Time) ([]models.CategoryOverspend, error) {
	query := `
		SELECT
			c.name AS category,
			cb.budget_amount AS budget,
			SUM(t.amount) AS spent,
			SUM(t.amount) - cb.budget_amount AS overspent_by
		FROM category_budgets cb
		JOIN categories c ON cb.category_id = c.id
		JOIN transactions t ON t.category_id = c.id AND t.user_id = cb.user_id
		WHERE cb.user_id = $1
		AND cb.month = $2
		AND DATE_TRUNC('month', t.txn_date) = DATE_TRUNC('month', $3::date)
		GROUP BY c.name, cb.budget_amount
		HAVING SUM(t.amount) > cb.budget_amount
		ORDER BY overspent_by DESC, category`

	rows, err := pool.Query(ctx, query, userID, month, monthStart)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске перерасхода по категориям: %w", err)
	}
	defer rows.Close()

	overspends := []models.CategoryOverspend{}
	for rows.Next() {
		var co models.CategoryOverspend
		if err := rows.Scan(&co.Category, &co.Budget, &co.Spent, &co.OverspentBy); err != nil {
			return nil, fmt.Errorf("ошибка чтения перерасхода: %w", err)
		}
		overspends = append(overspends, co)
	}
	return overspends, rows.Err()
}

// GetAvgMonthlySpend — средний месячный расход по всей истории пользователя,
// 0 при отсутствии транзакций.
func GetAvgMonthlySpend(ctx context.Context, pool *pgxpool.Pool, userID int) (float64, error) {
	query := `
		SELECT COALESCE(AVG(monthly_total), 0) AS avg_spend
		FROM (
			SELECT SUM(amount) AS monthly_total
			FROM transactions
			WHERE user_id = $1
			GROUP BY DATE_TRUNC('month', txn_date)
		) t`

	var avg float64
	if err := pool.QueryRow(ctx, query, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте среднего расхода: %w", err)
	}
	return avg, nil
}

// GetOverBudgetUsers — пользователи, у которых расходы месяца превысили общий
// бюджет. Используется плановой проверкой, см. internal/jobs.
func GetOverBudgetUsers(ctx context.Context, pool *pgxpool.Pool, month string, monthStart time.Time) ([]models.BudgetAlert, error) {
	query := `
		SELECT b.user_id, b.month, b.total_budget, SUM(t.amount) AS spent
		FROM budgets b
		JOIN transactions t ON t.user_id = b.user_id
		AND DATE_TRUNC('month', t.txn_date) = DATE_TRUNC('month', $2::date)
		WHERE b.month = $1
		GROUP BY b.user_id, b.month, b.total_budget
		HAVING SUM(t.amount) > b.total_budget
		ORDER BY b.user_id`

	rows, err := pool.Query(ctx, query, month, monthStart)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске превышений бюджета: %w", err)
	}
	defer rows.Close()

	alerts := []models.BudgetAlert{}
	for rows.Next() {
		var a models.BudgetAlert
		if err := rows.Scan(&a.UserID, &a.Month, &a.Budget, &a.Spent); err != nil {
			return nil, fmt.Errorf("ошибка чтения превышения бюджета: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
