package entity

// Transaction is an append-only ledger entry, written exactly once per job
// completion and immutable afterwards.
type Transaction struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}
