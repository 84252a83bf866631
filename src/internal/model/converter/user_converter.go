package converter

import (
	"vocalwork/src/internal/entity"
	"vocalwork/src/internal/model"
)

func UserToResponse(user entity.User) *model.UserResponse {
	return &model.UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		DisplayName:   user.DisplayName,
		Role:          string(user.Role),
		WalletBalance: user.WalletBalance,
		OfferLetter:   user.OfferLetter,
		OfferAccepted: user.OfferAccepted,
	}
}

func UsersToResponse(users []entity.User) []*model.UserResponse {
	responses := make([]*model.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, UserToResponse(u))
	}
	return responses
}

func TransactionToResponse(tx entity.Transaction) model.TransactionResponse {
	return model.TransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

func WalletToResponse(user entity.User, txs []entity.Transaction) *model.WalletResponse {
	responses := make([]model.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, TransactionToResponse(tx))
	}
	return &model.WalletResponse{
		UserID:       user.ID,
		Balance:      user.WalletBalance,
		Transactions: responses,
	}
}
