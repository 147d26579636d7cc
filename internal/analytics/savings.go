package analytics

import "github.com/marialebedeva/finance-api/utils"

type SavingsPlan struct {
	AvgMonthlySpend         int64  `json:"avg_monthly_spend"`
	RequiredSavingsPerMonth int64  `json:"required_savings_per_month"`
	PossibleSavingsPerMonth int64  `json:"possible_savings_per_month"`
	Feasible                bool   `json:"feasible"`
	Suggestion              string `json:"suggestion"`
}

const (
	suggestionFeasible   = "Goal is achievable with current spending."
	suggestionInfeasible = "Reduce expenses or increase income to reach this goal."
)

// SimulateSavings считает план накоплений. Достижимость определяется до
// округления сумм; months > 0 проверяет вызывающая сторона.
func SimulateSavings(goalAmount float64, months int, monthlyIncome, avgSpend float64) SavingsPlan {
	requiredPerMonth := goalAmount / float64(months)
	possibleSavings := monthlyIncome - avgSpend
	feasible := possibleSavings >= requiredPerMonth

	suggestion := suggestionInfeasible
	if feasible {
		suggestion = suggestionFeasible
	}

	return SavingsPlan{
		AvgMonthlySpend:         utils.RoundWhole(avgSpend),
		RequiredSavingsPerMonth: utils.RoundWhole(requiredPerMonth),
		PossibleSavingsPerMonth: utils.RoundWhole(possibleSavings),
		Feasible:                feasible,
		Suggestion:              suggestion,
	}
}
