package entity

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleCandidate Role = "CANDIDATE"
)

type User struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	DisplayName   string  `json:"display_name"`
	Role          Role    `json:"role"`
	WalletBalance float64 `json:"wallet_balance"`
	OfferLetter   string  `json:"offer_letter,omitempty"` // markdown
	OfferAccepted bool    `json:"offer_accepted"`
}
