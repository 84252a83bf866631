package repository

import (
	"time"

	"vocalwork/src/internal/entity"
)

type JobRepository struct {
	Store *Store
}

func NewJobRepository(store *Store) *JobRepository {
	return &JobRepository{Store: store}
}

func (r *JobRepository) Insert(job entity.Job) error {
	return r.Store.InsertJob(job)
}

func (r *JobRepository) FindByID(id string) (entity.Job, error) {
	return r.Store.FindJobByID(id)
}

func (r *JobRepository) List(filter JobFilter) []entity.Job {
	return r.Store.ListJobs(filter)
}

func (r *JobRepository) Take(jobID, userID string) (entity.Job, error) {
	return r.Store.TakeJob(jobID, userID)
}

func (r *JobRepository) Complete(jobID, txID string, now time.Time) (entity.Job, entity.Transaction, error) {
	return r.Store.CompleteJob(jobID, txID, now)
}
