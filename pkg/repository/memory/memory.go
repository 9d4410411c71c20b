// Package memory holds map-backed repositories for tests and for running the
// server without a database (DATABASE_URL=memory://).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/artem13815/resumeboost/pkg/auth"
	"github.com/artem13815/resumeboost/pkg/job"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]auth.User)}
}

func (r *UserRepository) Create(_ context.Context, user auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return auth.ErrUserAlreadyExists
	}
	r.users[user.Email] = user
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

// Delete removes a user out-of-band; tokens issued to it become stale.
func (r *UserRepository) Delete(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, email)
}

type JobRepository struct {
	mu   sync.RWMutex
	jobs []job.Job
}

func NewJobRepository() *JobRepository {
	return &JobRepository{}
}

func (r *JobRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs), nil
}

func (r *JobRepository) CreateMany(_ context.Context, jobs []job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range jobs {
		if r.indexOf(j.ID) >= 0 {
			continue
		}
		r.jobs = append(r.jobs, j)
	}
	return nil
}

func (r *JobRepository) List(_ context.Context) ([]job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]job.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.jobs[i], nil
	}
	return job.Job{}, job.ErrNotFound
}

func (r *JobRepository) indexOf(id string) int {
	for i, j := range r.jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}

type ApplicationRepository struct {
	mu   sync.RWMutex
	apps []job.Application
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

func (r *ApplicationRepository) Create(_ context.Context, a job.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps = append(r.apps, a)
	return nil
}

func (r *ApplicationRepository) ListByUser(_ context.Context, userID string) ([]job.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []job.Application
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

var (
	_ auth.UserRepository       = (*UserRepository)(nil)
	_ job.Repository            = (*JobRepository)(nil)
	_ job.ApplicationRepository = (*ApplicationRepository)(nil)
)
