package repository

import (
	"sort"
	"sync"
	"time"

	"vocalwork/src/internal/entity"
)

// Store is the single authoritative holder of all domain collections for the
// process lifetime. Fiber handlers run concurrently, so every operation takes
// the store mutex; compound operations (CompleteJob) apply all their effects
// inside one critical section so no reader observes a partial update.
//
// The session is kept as a user id, not a copied record, so reads through the
// session always see the latest merged fields.
type Store struct {
	mu            sync.Mutex
	users         map[string]*entity.User
	jobs          map[string]*entity.Job
	transactions  []entity.Transaction
	sessionUserID string
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*entity.User),
		jobs:  make(map[string]*entity.Job),
	}
}

// UserPatch carries the partial-update fields of a user. Nil pointers are
// left untouched. The wallet balance is not patchable; it only changes
// through CompleteJob.
type UserPatch struct {
	Username      *string
	DisplayName   *string
	OfferLetter   *string
	OfferAccepted *bool
}

// ---- session ----

// Login establishes the process-wide session for the user with the given
// username. Exact match only.
func (s *Store) Login(username string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findByUsername(username)
	if user == nil {
		return entity.User{}, ErrNotFound
	}
	s.sessionUserID = user.ID
	return *user, nil
}

// Logout clears the session unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionUserID = ""
}

// SessionUser returns a copy of the currently-authenticated user, if any.
func (s *Store) SessionUser() (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[s.sessionUserID]
	if s.sessionUserID == "" || !ok {
		return entity.User{}, false
	}
	return *user, true
}

// ---- users ----

func (s *Store) InsertUser(user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return ErrDuplicate
	}
	if s.findByUsername(user.Username) != nil {
		return ErrDuplicate
	}
	u := user
	s.users[user.ID] = &u
	return nil
}

func (s *Store) FindUserByID(id string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return entity.User{}, ErrNotFound
	}
	return *user, nil
}

func (s *Store) ListUsers() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// UpdateUser merges the patch into the matching user and returns the merged
// record. The session sees the merge immediately because it references the
// user by id.
func (s *Store) UpdateUser(id string, patch UserPatch) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return entity.User{}, ErrNotFound
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.DisplayName != nil {
		user.DisplayName = *patch.DisplayName
	}
	if patch.OfferLetter != nil {
		user.OfferLetter = *patch.OfferLetter
	}
	if patch.OfferAccepted != nil {
		user.OfferAccepted = *patch.OfferAccepted
	}
	return *user, nil
}

// DeleteUser removes the user record. Jobs assigned to the user and
// transactions referencing it are left in place; those are weak references.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// ---- jobs ----

func (s *Store) InsertJob(job entity.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[job.ID]; ok {
		return ErrDuplicate
	}
	j := job
	s.jobs[job.ID] = &j
	return nil
}

func (s *Store) FindJobByID(id string) (entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return entity.Job{}, ErrNotFound
	}
	return *job, nil
}

// JobFilter narrows ListJobs; zero values match everything.
type JobFilter struct {
	Status         entity.JobStatus
	AssignedUserID string
}

func (s *Store) ListJobs(filter JobFilter) []entity.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]entity.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		if filter.AssignedUserID != "" && j.AssignedUserID != filter.AssignedUserID {
			continue
		}
		jobs = append(jobs, *j)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs
}

// TakeJob is a compare-and-set: the transition succeeds only while the job is
// still OPEN, so the first taker wins and later takers get ErrConflict.
func (s *Store) TakeJob(jobID, userID string) (entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return entity.Job{}, ErrNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return entity.Job{}, ErrNotFound
	}
	if job.Status != entity.JobStatusOpen {
		return entity.Job{}, ErrConflict
	}
	job.Status = entity.JobStatusAssigned
	job.AssignedUserID = userID
	return *job, nil
}

// CompleteJob applies the three completion effects as one unit: the job is
// stamped COMPLETED, the session user's wallet is credited the reward, and
// one ledger transaction is appended. txID is caller-supplied so the store
// stays free of id-generation policy.
func (s *Store) CompleteJob(jobID, txID string, now time.Time) (entity.Job, entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[s.sessionUserID]
	if s.sessionUserID == "" || !ok {
		return entity.Job{}, entity.Transaction{}, ErrNoSession
	}
	job, ok := s.jobs[jobID]
	if !ok {
		return entity.Job{}, entity.Transaction{}, ErrNotFound
	}
	if job.Status != entity.JobStatusAssigned {
		return entity.Job{}, entity.Transaction{}, ErrConflict
	}

	completedAt := now
	job.Status = entity.JobStatusCompleted
	job.CompletedAt = &completedAt

	user.WalletBalance += job.Reward

	tx := entity.Transaction{
		ID:          txID,
		UserID:      user.ID,
		Amount:      job.Reward,
		Description: "Completed: " + job.Title,
		Date:        now.Format("2006-01-02"),
	}
	s.transactions = append(s.transactions, tx)

	return *job, tx, nil
}

// ---- transactions ----

// InsertTransaction appends a ledger entry directly; used only by seeding.
func (s *Store) InsertTransaction(tx entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
}

func (s *Store) ListTransactionsByUser(userID string) []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := make([]entity.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs
}

// findByUsername expects the caller to hold the mutex.
func (s *Store) findByUsername(username string) *entity.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}
