package analytics

import (
	"fmt"

	"github.com/marialebedeva/finance-api/utils"
)

type Insight struct {
	Summary    string `json:"summary"`
	TopReason  string `json:"top_reason,omitempty"`
	Suggestion string `json:"suggestion"`
}

const (
	suggestionOverBudget  = "Review discretionary expenses to stay within budget next month."
	suggestionUnderBudget = "Good job! Consider increasing savings or investments."
	reasonNoCategory      = "A major category caused overspending."
)

// BuildInsight собирает текстовую сводку месяца. topCategory — категория с
// наибольшими расходами; hasTopCategory=false, когда транзакций с категориями
// в месяце не было.
func BuildInsight(budget, spent float64, topCategory string, hasTopCategory bool) Insight {
	if spent > budget {
		insight := Insight{
			Summary:    fmt.Sprintf("You overspent this month by %s.", utils.FormatRupees(spent-budget)),
			Suggestion: suggestionOverBudget,
		}
		if hasTopCategory {
			insight.TopReason = fmt.Sprintf("%s was your highest spending category.", topCategory)
		} else {
			insight.TopReason = reasonNoCategory
		}
		return insight
	}
	return Insight{
		Summary:    fmt.Sprintf("You are within budget with %s remaining.", utils.FormatRupees(budget-spent)),
		Suggestion: suggestionUnderBudget,
	}
}
