package analytics

const (
	StatusOverBudget  = "over_budget"
	StatusUnderBudget = "under_budget"
)

type BudgetComparison struct {
	Month       string   `json:"month"`
	Budget      float64  `json:"budget"`
	Spent       float64  `json:"spent"`
	OverspentBy *float64 `json:"overspent_by,omitempty"`
	Remaining   *float64 `json:"remaining,omitempty"`
	Status      string   `json:"status"`
}

// CompareBudget сравнивает факт с бюджетом месяца. Ровно потраченный бюджет
// считается уложившимся (перерасход только при spent > budget).
func CompareBudget(month string, budget, spent float64) BudgetComparison {
	result := BudgetComparison{
		Month:  month,
		Budget: budget,
		Spent:  spent,
	}
	if spent > budget {
		over := spent - budget
		result.OverspentBy = &over
		result.Status = StatusOverBudget
		return result
	}
	remaining := budget - spent
	result.Remaining = &remaining
	result.Status = StatusUnderBudget
	return result
}
