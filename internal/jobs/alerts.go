package jobs

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/robfig/cron/v3"
)

// ScheduleBudgetAlerts раз в сутки находит пользователей, превысивших бюджет
// текущего месяца, и пишет их в журнал. Только чтение, данные не меняются.
func ScheduleBudgetAlerts(pool *pgxpool.Pool) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		checkBudgets(pool)
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи проверки бюджетов: %v", err)
	}
	c.Start()
	return c
}

func checkBudgets(pool *pgxpool.Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	month := now.Format("2006-01")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	alerts, err := database.GetOverBudgetUsers(ctx, pool, month, monthStart)
	if err != nil {
		log.Printf("Ошибка проверки бюджетов за %s: %v", month, err)
		return
	}

	for _, a := range alerts {
		log.Printf("Превышение бюджета: пользователь %d, месяц %s, бюджет %.2f, потрачено %.2f",
			a.UserID, a.Month, a.Budget, a.Spent)
	}
	log.Printf("Проверка бюджетов за %s завершена, превышений: %d", month, len(alerts))
}
