package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artem13815/resumeboost/pkg/job"
)

// ApplicationRepository persists job applications on SQLite.
type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a job.Application) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO applications (id, job_id, user_id, applied_at)
VALUES (?, ?, ?, ?)
`, a.ID, a.JobID, a.UserID, a.AppliedAt.UTC().Format(timeLayout))
	return err
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]job.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, job_id, user_id, applied_at FROM applications
WHERE user_id = ?
ORDER BY applied_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.Application
	for rows.Next() {
		var a job.Application
		var applied string
		if err := rows.Scan(&a.ID, &a.JobID, &a.UserID, &applied); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, applied)
		if err != nil {
			return nil, fmt.Errorf("parse applied_at: %w", err)
		}
		a.AppliedAt = t.UTC()
		res = append(res, a)
	}
	return res, rows.Err()
}

var _ job.ApplicationRepository = (*ApplicationRepository)(nil)
