package analytics

import "github.com/marialebedeva/finance-api/utils"

type Prediction struct {
	Method                  string `json:"method"`
	PredictedNextMonthSpend int64  `json:"predicted_next_month_spend"`
}

// PredictionMethod отдаётся как есть и при двух усреднённых месяцах —
// документированное поведение.
const PredictionMethod = "3-month moving average"

// MinPredictionMonths — минимум месяцев истории для прогноза.
const MinPredictionMonths = 2

// Predict усредняет итоги последних месяцев (от 2 до 3). При недостатке
// истории второй результат false — наружу уходит сообщение, а не число.
func Predict(monthlyTotals []float64) (Prediction, bool) {
	if len(monthlyTotals) < MinPredictionMonths {
		return Prediction{}, false
	}

	var sum float64
	for _, total := range monthlyTotals {
		sum += total
	}
	avg := sum / float64(len(monthlyTotals))

	return Prediction{
		Method:                  PredictionMethod,
		PredictedNextMonthSpend: utils.RoundWhole(avg),
	}, true
}
