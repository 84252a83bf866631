package usecase

import (
	"fmt"

	"vocalwork/src/internal/model/converter"
	"vocalwork/src/internal/repository"
	httpError "vocalwork/src/pkg/http-error"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"
)

type WalletUseCase struct {
	Log                   log.Log
	UserRepository        *repository.UserRepository
	TransactionRepository *repository.TransactionRepository
}

func NewWalletUseCase(
	logger log.Log,
	userRepository *repository.UserRepository,
	transactionRepository *repository.TransactionRepository,
) *WalletUseCase {
	return &WalletUseCase{
		Log:                   logger,
		UserRepository:        userRepository,
		TransactionRepository: transactionRepository,
	}
}

// Wallet returns the user's balance together with the ledger entries behind
// it.
func (c *WalletUseCase) Wallet(userID string) utils.Result {
	var result utils.Result

	user, err := c.UserRepository.FindByID(userID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", userID)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "Wallet", "")
		return result
	}

	txs := c.TransactionRepository.ListByUser(userID)
	result.Data = converter.WalletToResponse(user, txs)
	return result
}
