package models

import "time"

// Агрегаты по транзакциям, отдаются аналитическими запросами как есть.

type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type DailyTotal struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type CategoryOverspend struct {
	Category    string  `json:"category"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	OverspentBy float64 `json:"overspent_by"`
}

type BudgetAlert struct {
	UserID int     `json:"user_id"`
	Month  string  `json:"month"`
	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`
}
