package job

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/artem13815/resumeboost/pkg/metrics"
	"github.com/artem13815/resumeboost/pkg/resume"
)

// ApplyMessage is returned for every acknowledged application.
const ApplyMessage = "Your application has been submitted successfully!"

// ApplyResult is the acknowledgment returned by Apply.
type ApplyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UseCase is the read-only job catalog.
type UseCase interface {
	// EnsureSeeded inserts the canonical postings only when no job exists.
	EnsureSeeded(ctx context.Context) error
	// List returns all jobs in storage order. score is reserved for
	// personalisation and currently has no effect.
	List(ctx context.Context, score *resume.Score) ([]Job, error)
	// Apply acknowledges an application. userID is empty for anonymous
	// callers; otherwise the application is persisted.
	Apply(ctx context.Context, jobID, userID string) (ApplyResult, error)
	ListApplications(ctx context.Context, userID string) ([]Application, error)
}

type service struct {
	repo         Repository
	applications ApplicationRepository
	clock        clockwork.Clock
	seed         func() ([]Job, error)

	seedMu sync.Mutex
}

func NewService(repo Repository, applications ApplicationRepository, clock clockwork.Clock) UseCase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{repo: repo, applications: applications, clock: clock, seed: SeedJobs}
}

func (s *service) EnsureSeeded(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if n > 0 {
		return nil
	}
	jobs, err := s.seed()
	if err != nil {
		return err
	}
	if err := s.repo.CreateMany(ctx, jobs); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}
	return nil
}

func (s *service) List(ctx context.Context, _ *resume.Score) ([]Job, error) {
	if err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []Job{}
	}
	return jobs, nil
}

func (s *service) Apply(ctx context.Context, jobID, userID string) (ApplyResult, error) {
	j, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return ApplyResult{}, err
	}
	persisted := userID != "" && s.applications != nil
	if persisted {
		a := Application{
			ID:        uuid.NewString(),
			JobID:     j.ID,
			UserID:    userID,
			AppliedAt: s.clock.Now().UTC(),
		}
		if err := s.applications.Create(ctx, a); err != nil {
			return ApplyResult{}, fmt.Errorf("save application: %w", err)
		}
	}
	metrics.JobApplicationsTotal.WithLabelValues(strconv.FormatBool(persisted)).Inc()
	return ApplyResult{Success: true, Message: ApplyMessage}, nil
}

func (s *service) ListApplications(ctx context.Context, userID string) ([]Application, error) {
	if s.applications == nil {
		return []Application{}, nil
	}
	apps, err := s.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if apps == nil {
		apps = []Application{}
	}
	return apps, nil
}
