package job

import (
	"context"
	"errors"
	"time"
)

// Type is the employment type of a posting.
type Type string

const (
	TypeFullTime Type = "Full-time"
	TypePartTime Type = "Part-time"
	TypeContract Type = "Contract"
	TypeRemote   Type = "Remote"
)

// Valid reports whether t is one of the known job types.
func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeRemote:
		return true
	}
	return false
}

// Job is a read-only posting. MatchScore is a static attribute of the
// posting and has nothing to do with resume scores.
type Job struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Company      string   `json:"company" yaml:"company"`
	Location     string   `json:"location" yaml:"location"`
	Salary       *string  `json:"salary" yaml:"salary"`
	MatchScore   int      `json:"matchScore" yaml:"matchScore"`
	Description  string   `json:"description" yaml:"description"`
	Requirements []string `json:"requirements" yaml:"requirements"`
	PostedAt     string   `json:"postedAt" yaml:"postedAt"`
	Type         Type     `json:"type" yaml:"type"`
}

// Application records that a user applied to a job.
type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	UserID    string    `json:"userId"`
	AppliedAt time.Time `json:"appliedAt"`
}

var ErrNotFound = errors.New("job not found")

// Repository is the storage port for jobs. Jobs have no update or delete.
type Repository interface {
	Count(ctx context.Context) (int, error)
	// CreateMany inserts jobs in order; List returns them in that order.
	CreateMany(ctx context.Context, jobs []Job) error
	List(ctx context.Context) ([]Job, error)
	// GetByID returns ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (Job, error)
}

// ApplicationRepository persists applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a Application) error
	ListByUser(ctx context.Context, userID string) ([]Application, error)
}
