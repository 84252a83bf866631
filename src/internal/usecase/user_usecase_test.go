package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocalwork/src/internal/model"
)

func TestAddUser(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.Users.AddUser(&model.AddUserRequest{
		ID:          "4",
		Username:    "mary",
		DisplayName: "Mary Major",
		Role:        "CANDIDATE",
	})
	require.NoError(t, result.Error)

	user := result.Data.(*model.UserResponse)
	assert.Equal(t, "mary", user.Username)
	assert.Equal(t, 0.0, user.WalletBalance)
	assert.False(t, user.OfferAccepted)
}

func TestAddUserRejectsDuplicateID(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.Users.AddUser(&model.AddUserRequest{
		ID:          "2",
		Username:    "john2",
		DisplayName: "John Again",
		Role:        "CANDIDATE",
	})
	require.Error(t, result.Error)
	assert.Equal(t, http.StatusConflict, errCode(t, result.Error))
}

func TestAddUserValidatesRole(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.Users.AddUser(&model.AddUserRequest{
		ID:          "4",
		Username:    "mary",
		DisplayName: "Mary Major",
		Role:        "SUPERVISOR",
	})
	require.Error(t, result.Error)
	assert.Equal(t, http.StatusBadRequest, errCode(t, result.Error))
}

func TestUpdateUserMergesAndRefreshesSession(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.Auth.Login(&model.LoginRequest{Username: "john"}).Error)

	name := "Johnny D"
	result := env.Users.UpdateUser(&model.UpdateUserRequest{ID: "2", DisplayName: &name})
	require.NoError(t, result.Error)

	profile := env.Auth.Profile()
	require.NoError(t, profile.Error)
	assert.Equal(t, "Johnny D", profile.Data.(*model.UserResponse).DisplayName)
}

func TestUpdateUserNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	name := "Nobody"
	result := env.Users.UpdateUser(&model.UpdateUserRequest{ID: "404", DisplayName: &name})
	require.Error(t, result.Error)
	assert.Equal(t, http.StatusNotFound, errCode(t, result.Error))
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t, nil)

	require.NoError(t, env.Users.DeleteUser("3").Error)
	result := env.Users.DeleteUser("3")
	require.Error(t, result.Error)
	assert.Equal(t, http.StatusNotFound, errCode(t, result.Error))
}

func TestGenerateOfferAttachesFallbackLetter(t *testing.T) {
	env := newTestEnv(t, nil)

	// The test env runs generation fallback-only; the letter is still
	// attached rather than surfacing an error.
	result := env.Users.GenerateOffer(context.Background(), &model.GenerateOfferRequest{
		UserID:  "3",
		JobRole: "Narrator",
	})
	require.NoError(t, result.Error)

	user := result.Data.(*model.UserResponse)
	assert.NotEmpty(t, user.OfferLetter)
}

func TestAcceptOffer(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.Users.AcceptOffer("2")
	require.NoError(t, result.Error)
	assert.True(t, result.Data.(*model.UserResponse).OfferAccepted)

	missing := env.Users.AcceptOffer("404")
	require.Error(t, missing.Error)
	assert.Equal(t, http.StatusNotFound, errCode(t, missing.Error))
}

func TestWalletSummary(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.Wallets.Wallet("2")
	require.NoError(t, result.Error)

	wallet := result.Data.(*model.WalletResponse)
	assert.Equal(t, 150.0, wallet.Balance)
	require.Len(t, wallet.Transactions, 1)
	assert.Equal(t, 10.0, wallet.Transactions[0].Amount)

	missing := env.Wallets.Wallet("404")
	require.Error(t, missing.Error)
	assert.Equal(t, http.StatusNotFound, errCode(t, missing.Error))
}
