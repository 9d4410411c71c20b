package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeboost/pkg/job"
)

// ApplicationRepository persists job applications.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) Create(ctx context.Context, a job.Application) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO applications (id, job_id, user_id, applied_at)
VALUES ($1, $2, $3, $4)
`, a.ID, a.JobID, a.UserID, a.AppliedAt)
	return err
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]job.Application, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, job_id, user_id, applied_at FROM applications
WHERE user_id = $1
ORDER BY applied_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.Application
	for rows.Next() {
		var a job.Application
		var applied time.Time
		if err := rows.Scan(&a.ID, &a.JobID, &a.UserID, &applied); err != nil {
			return nil, err
		}
		a.AppliedAt = applied.UTC()
		res = append(res, a)
	}
	return res, rows.Err()
}

var _ job.ApplicationRepository = (*ApplicationRepository)(nil)
