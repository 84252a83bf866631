package usecase

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"vocalwork/src/internal/gateway/generation"
	"vocalwork/src/internal/gateway/messaging"
	"vocalwork/src/internal/recording"
	"vocalwork/src/internal/repository"
	httpError "vocalwork/src/pkg/http-error"
	"vocalwork/src/pkg/log"
)

// testEnv wires the use cases over a seeded store, with eventing disabled
// and generation running fallback-only.
type testEnv struct {
	Store      *repository.Store
	Auth       *AuthUseCase
	Users      *UserUseCase
	Wallets    *WalletUseCase
	Jobs       *JobUseCase
	Recordings *RecordingUseCase
	Manager    *recording.Manager
}

func newTestEnv(t *testing.T, device recording.InputDevice) *testEnv {
	t.Helper()

	store := repository.NewStore()
	repository.SeedDemoData(store)

	logger := log.Log{}
	validate := validator.New()
	userRepository := repository.NewUserRepository(store)
	jobRepository := repository.NewJobRepository(store)
	transactionRepository := repository.NewTransactionRepository(store)
	generationClient := generation.NewClient(nil, nil, logger)
	jobProducer := messaging.NewJobProducer(nil, logger)

	if device == nil {
		device = recording.LoopbackDevice{}
	}
	manager := recording.NewManager(device, recording.FrameClock{}, recording.NopRenderer{}, logger)

	jobs := NewJobUseCase(logger, validate, jobRepository, userRepository, generationClient, jobProducer)
	return &testEnv{
		Store:      store,
		Auth:       NewAuthUseCase(logger, validate, store),
		Users:      NewUserUseCase(logger, validate, userRepository, generationClient),
		Wallets:    NewWalletUseCase(logger, userRepository, transactionRepository),
		Jobs:       jobs,
		Recordings: NewRecordingUseCase(logger, store, jobRepository, manager, jobs),
		Manager:    manager,
	}
}

func errCode(t *testing.T, err error) int {
	t.Helper()
	errObj, ok := err.(*httpError.ErrorObject)
	if !ok {
		t.Fatalf("expected *httpError.ErrorObject, got %T: %v", err, err)
	}
	return errObj.Code
}
