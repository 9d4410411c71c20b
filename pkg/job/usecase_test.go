package job_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboost/pkg/job"
	"github.com/artem13815/resumeboost/pkg/repository/memory"
	"github.com/artem13815/resumeboost/pkg/resume"
)

func newCatalog(t *testing.T) (job.UseCase, *memory.JobRepository, *memory.ApplicationRepository, *clockwork.FakeClock) {
	t.Helper()
	jobs := memory.NewJobRepository()
	apps := memory.NewApplicationRepository()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	return job.NewService(jobs, apps, clock), jobs, apps, clock
}

func TestSeedJobs_Canonical(t *testing.T) {
	jobs, err := job.SeedJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 5)

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)

	first := jobs[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "TechCorp Inc.", first.Company)
	require.NotNil(t, first.Salary)
	assert.Equal(t, "$150,000 - $200,000", *first.Salary)
	assert.Equal(t, 92, first.MatchScore)
	assert.Equal(t, []string{"5+ years experience", "React/TypeScript", "Cloud platforms"}, first.Requirements)
	assert.Equal(t, job.TypeFullTime, first.Type)

	assert.Equal(t, job.TypeRemote, jobs[1].Type)
	assert.Equal(t, job.TypeContract, jobs[4].Type)
	assert.Equal(t, "1 day ago", jobs[4].PostedAt)
}

func TestList_SeedsOnceAndKeepsOrder(t *testing.T) {
	svc, repo, _, _ := newCatalog(t)
	ctx := context.Background()

	first, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, first, 5)

	score := &resume.Score{Overall: 80}
	for i := 0; i < 3; i++ {
		again, err := svc.List(ctx, score)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestEnsureSeeded_NeverReseedsNonEmptyStore(t *testing.T) {
	svc, repo, _, _ := newCatalog(t)
	ctx := context.Background()

	custom := job.Job{ID: "x", Title: "Only job", Type: job.TypePartTime, Requirements: []string{}}
	require.NoError(t, repo.CreateMany(ctx, []job.Job{custom}))

	require.NoError(t, svc.EnsureSeeded(ctx))
	list, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []job.Job{custom}, list)
}

func TestApply_UnknownJob(t *testing.T) {
	svc, _, _, _ := newCatalog(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeeded(ctx))

	_, err := svc.Apply(ctx, "999", "")
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestApply_AnonymousIsAcknowledgedOnly(t *testing.T) {
	svc, _, apps, _ := newCatalog(t)
	ctx := context.Background()

	jobs, err := svc.List(ctx, nil)
	require.NoError(t, err)

	for _, j := range jobs {
		res, err := svc.Apply(ctx, j.ID, "")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, job.ApplyMessage, res.Message)
	}

	stored, err := apps.ListByUser(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestApply_AuthenticatedPersistsApplication(t *testing.T) {
	svc, _, _, clock := newCatalog(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeeded(ctx))

	res, err := svc.Apply(ctx, "2", "user-1")
	require.NoError(t, err)
	assert.Equal(t, job.ApplyResult{Success: true, Message: job.ApplyMessage}, res)

	clock.Advance(time.Minute)
	_, err = svc.Apply(ctx, "3", "user-1")
	require.NoError(t, err)

	apps, err := svc.ListApplications(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "3", apps[0].JobID)
	assert.Equal(t, "2", apps[1].JobID)
	assert.Equal(t, "user-1", apps[1].UserID)
	assert.NotEmpty(t, apps[1].ID)

	others, err := svc.ListApplications(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, []job.Application{}, others)
}
