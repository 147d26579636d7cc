package models

import "time"

type Transaction struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"user_id" db:"user_id"`
	Amount     float64   `json:"amount" db:"amount"`
	CategoryID *int      `json:"category_id" db:"category_id"`
	Note       *string   `json:"note" db:"note"`
	Vendor     *string   `json:"vendor" db:"vendor"`
	TxnDate    time.Time `json:"txn_date" db:"txn_date"`
}

// TransactionFilter — необязательные условия выборки, объединяются через AND.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID *int
	Vendor     *string
}
