package models

type Budget struct {
	ID          int     `json:"id" db:"id"`
	UserID      int     `json:"user_id" db:"user_id"`
	Month       string  `json:"month" db:"month"`
	TotalBudget float64 `json:"total_budget" db:"total_budget"`
}

type CategoryBudget struct {
	ID           int     `json:"id" db:"id"`
	UserID       int     `json:"user_id" db:"user_id"`
	Month        string  `json:"month" db:"month"`
	CategoryID   int     `json:"category_id" db:"category_id"`
	BudgetAmount float64 `json:"budget_amount" db:"budget_amount"`
}
