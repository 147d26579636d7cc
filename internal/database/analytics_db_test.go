package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/internal/database"
	"github.com/marialebedeva/finance-api/models"
)

func seedTransaction(t *testing.T, pool *pgxpool.Pool, userID int, amount float64, categoryID *int, date time.Time) {
	t.Helper()
	transaction := &models.Transaction{
		UserID:     userID,
		Amount:     amount,
		CategoryID: categoryID,
		TxnDate:    date,
	}
	if err := database.CreateTransaction(context.Background(), pool, transaction); err != nil {
		t.Fatalf("ошибка наполнения транзакциями: %v", err)
	}
}

func TestAggregationsEmptyForFreshUser(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	ctx := context.Background()

	monthly, err := database.GetMonthlySpending(ctx, pool, user.ID)
	if err != nil {
		t.Fatalf("месячная агрегация без данных упала: %v", err)
	}
	if len(monthly) != 0 {
		t.Errorf("ожидали пустую последовательность, получили %+v", monthly)
	}

	daily, err := database.GetDailySpending(ctx, pool, user.ID)
	if err != nil {
		t.Fatalf("дневная агрегация без данных упала: %v", err)
	}
	if len(daily) != 0 {
		t.Errorf("ожидали пустую последовательность, получили %+v", daily)
	}

	categories, err := database.GetCategorySpending(ctx, pool, user.ID)
	if err != nil {
		t.Fatalf("агрегация по категориям без данных упала: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("ожидали пустую последовательность, получили %+v", categories)
	}

	spent, err := database.GetMonthSpend(ctx, pool, user.ID, time.Date(2031, time.May, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("сумма за месяц без данных упала: %v", err)
	}
	if spent != 0 {
		t.Errorf("без транзакций сумма должна быть 0, получили %v", spent)
	}

	totals, err := database.GetRecentMonthlyTotals(ctx, pool, user.ID, 3)
	if err != nil {
		t.Fatalf("итоги последних месяцев без данных упали: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("ожидали пустую последовательность, получили %v", totals)
	}
}

func TestMonthlyAndCategoryAggregation(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	food := testCategory(t, pool)
	ctx := context.Background()

	seedTransaction(t, pool, user.ID, 100, &food.ID, time.Date(2031, time.April, 10, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, pool, user.ID, 200, &food.ID, time.Date(2031, time.May, 5, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, pool, user.ID, 50, nil, time.Date(2031, time.May, 6, 0, 0, 0, 0, time.UTC))

	monthly, err := database.GetMonthlySpending(ctx, pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка месячной агрегации: %v", err)
	}
	if len(monthly) != 2 {
		t.Fatalf("ожидали 2 месяца, получили %+v", monthly)
	}
	// По возрастанию месяца.
	if monthly[0].Month != "2031-04" || monthly[0].Total != 100 {
		t.Errorf("первый месяц: %+v", monthly[0])
	}
	if monthly[1].Month != "2031-05" || monthly[1].Total != 250 {
		t.Errorf("второй месяц: %+v", monthly[1])
	}

	categories, err := database.GetCategorySpending(ctx, pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка агрегации по категориям: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("ожидали 2 категории, получили %+v", categories)
	}
	if categories[0].Category != food.Name || categories[0].Total != 300 {
		t.Errorf("крупнейшая категория: %+v", categories[0])
	}
	if categories[1].Category != "Uncategorized" || categories[1].Total != 50 {
		t.Errorf("транзакции без категории: %+v", categories[1])
	}

	spent, err := database.GetMonthSpend(ctx, pool, user.ID, time.Date(2031, time.May, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ошибка суммы за месяц: %v", err)
	}
	if spent != 250 {
		t.Errorf("сумма за май: получили %v, хотели 250", spent)
	}
}

func TestGetTopCategory(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	food := testCategory(t, pool)
	travel := testCategory(t, pool)
	ctx := context.Background()
	may := time.Date(2031, time.May, 1, 0, 0, 0, 0, time.UTC)

	// Без транзакций с категориями крупнейшей категории нет.
	_, ok, err := database.GetTopCategory(ctx, pool, user.ID, may)
	if err != nil {
		t.Fatalf("ошибка поиска крупнейшей категории: %v", err)
	}
	if ok {
		t.Error("крупнейшей категории быть не должно")
	}

	seedTransaction(t, pool, user.ID, 300, &food.ID, time.Date(2031, time.May, 3, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, pool, user.ID, 700, &travel.ID, time.Date(2031, time.May, 4, 0, 0, 0, 0, time.UTC))

	name, ok, err := database.GetTopCategory(ctx, pool, user.ID, may)
	if err != nil {
		t.Fatalf("ошибка поиска крупнейшей категории: %v", err)
	}
	if !ok || name != travel.Name {
		t.Errorf("крупнейшая категория: получили %q (ok=%v), хотели %q", name, ok, travel.Name)
	}
}

func TestGetCategoryOverspend(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	food := testCategory(t, pool)
	travel := testCategory(t, pool)
	ctx := context.Background()
	may := time.Date(2031, time.May, 1, 0, 0, 0, 0, time.UTC)

	for _, cb := range []models.CategoryBudget{
		{UserID: user.ID, Month: "2031-05", CategoryID: food.ID, BudgetAmount: 500},
		{UserID: user.ID, Month: "2031-05", CategoryID: travel.ID, BudgetAmount: 500},
	} {
		cb := cb
		if err := database.UpsertCategoryBudget(ctx, pool, &cb); err != nil {
			t.Fatalf("ошибка сохранения бюджета категории: %v", err)
		}
	}

	// Food: 700 против 500 — перерасход 200. Travel: 400 против 500 — не попадает.
	seedTransaction(t, pool, user.ID, 700, &food.ID, time.Date(2031, time.May, 10, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, pool, user.ID, 400, &travel.ID, time.Date(2031, time.May, 11, 0, 0, 0, 0, time.UTC))

	overspends, err := database.GetCategoryOverspend(ctx, pool, user.ID, "2031-05", may)
	if err != nil {
		t.Fatalf("ошибка поиска перерасхода: %v", err)
	}
	if len(overspends) != 1 {
		t.Fatalf("ожидали одну категорию с перерасходом, получили %+v", overspends)
	}
	got := overspends[0]
	if got.Category != food.Name || got.Budget != 500 || got.Spent != 700 || got.OverspentBy != 200 {
		t.Errorf("перерасход: %+v", got)
	}
}

func TestGetRecentMonthlyTotalsAndAverage(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	ctx := context.Background()

	// Четыре месяца истории: в выборку попадают три последних, свежие первыми.
	amounts := map[time.Month]float64{
		time.January:  400,
		time.February: 100,
		time.March:    200,
		time.April:    300,
	}
	for month, amount := range amounts {
		seedTransaction(t, pool, user.ID, amount, nil, time.Date(2031, month, 15, 0, 0, 0, 0, time.UTC))
	}

	totals, err := database.GetRecentMonthlyTotals(ctx, pool, user.ID, 3)
	if err != nil {
		t.Fatalf("ошибка итогов последних месяцев: %v", err)
	}
	want := []float64{300, 200, 100}
	if len(totals) != len(want) {
		t.Fatalf("ожидали %d месяца, получили %v", len(want), totals)
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("итог %d: получили %v, хотели %v", i, totals[i], want[i])
		}
	}

	avg, err := database.GetAvgMonthlySpend(ctx, pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка среднего расхода: %v", err)
	}
	if avg != 250 {
		t.Errorf("средний расход: получили %v, хотели 250", avg)
	}
}

func TestGetAvgMonthlySpendNoHistory(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)

	avg, err := database.GetAvgMonthlySpend(context.Background(), pool, user.ID)
	if err != nil {
		t.Fatalf("средний расход без истории упал: %v", err)
	}
	if avg != 0 {
		t.Errorf("без истории средний расход должен быть 0, получили %v", avg)
	}
}
