package model

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
}

type AddUserRequest struct {
	ID          string `json:"id" validate:"required,max=100"`
	Username    string `json:"username" validate:"required,max=100"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Role        string `json:"role" validate:"required,oneof=ADMIN CANDIDATE"`
}

// UpdateUserRequest merges only the fields present in the body.
type UpdateUserRequest struct {
	ID          string  `json:"-" validate:"required,max=100"`
	Username    *string `json:"username,omitempty" validate:"omitempty,max=100"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
	OfferLetter *string `json:"offer_letter,omitempty"`
}

type GenerateOfferRequest struct {
	UserID  string `json:"-" validate:"required,max=100"`
	JobRole string `json:"job_role" validate:"required,max=200"`
}

type UserResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	DisplayName   string  `json:"display_name"`
	Role          string  `json:"role"`
	WalletBalance float64 `json:"wallet_balance"`
	OfferLetter   string  `json:"offer_letter,omitempty"`
	OfferAccepted bool    `json:"offer_accepted"`
}

type WalletResponse struct {
	UserID       string                `json:"user_id"`
	Balance      float64               `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}
