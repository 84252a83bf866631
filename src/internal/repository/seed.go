package repository

import (
	"time"

	"vocalwork/src/internal/entity"
)

// SeedDemoData loads the demo agency: one admin, two candidates and a small
// job board, including one historically completed job and its ledger entry.
func SeedDemoData(store *Store) {
	users := []entity.User{
		{ID: "1", Username: "admin", DisplayName: "Admin User", Role: entity.RoleAdmin},
		{
			ID:            "2",
			Username:      "john",
			DisplayName:   "John Doe",
			Role:          entity.RoleCandidate,
			WalletBalance: 150,
			OfferLetter:   "# Offer Letter\n\nWelcome to the team!",
		},
		{
			ID:            "3",
			Username:      "jane",
			DisplayName:   "Jane Smith",
			Role:          entity.RoleCandidate,
			WalletBalance: 450,
			OfferAccepted: true,
		},
	}
	for _, u := range users {
		_ = store.InsertUser(u)
	}

	completedAt := mustDate("2023-10-01")
	jobs := []entity.Job{
		{
			ID:          "101",
			Title:       "Intro Greeting",
			Instruction: "Upbeat and friendly",
			Script:      "Welcome to VocalWork! We are happy to have you.",
			Reward:      15,
			Status:      entity.JobStatusOpen,
		},
		{
			ID:          "102",
			Title:       "Tech Narration",
			Instruction: "Serious and slow",
			Script:      "The quantum processor utilizes entanglement to solve complex problems.",
			Reward:      25,
			Status:      entity.JobStatusOpen,
		},
		{
			ID:             "103",
			Title:          "Podcast Outro",
			Instruction:    "Relaxed",
			Script:         "Thanks for listening. See you next time.",
			Reward:         10,
			Status:         entity.JobStatusCompleted,
			AssignedUserID: "2",
			CompletedAt:    &completedAt,
		},
	}
	for _, j := range jobs {
		_ = store.InsertJob(j)
	}

	store.InsertTransaction(entity.Transaction{
		ID:          "t1",
		UserID:      "2",
		Amount:      10,
		Description: "Completed: Podcast Outro",
		Date:        "2023-10-01",
	})
}

func mustDate(value string) (t time.Time) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
