package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/artem13815/resumeboost/pkg/job"
)

// JobRepository stores the job catalog; seq keeps insertion order.
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *JobRepository) CreateMany(ctx context.Context, jobs []job.Job) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, j := range jobs {
		reqs := j.Requirements
		if reqs == nil {
			reqs = []string{}
		}
		encoded, err := json.Marshal(reqs)
		if err != nil {
			return fmt.Errorf("encode requirements for job %s: %w", j.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO jobs (id, title, company, location, salary, match_score, description, requirements, posted_at, type)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING
`, j.ID, j.Title, j.Company, j.Location, j.Salary, j.MatchScore, j.Description, string(encoded), j.PostedAt, string(j.Type))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

const jobColumns = `id, title, company, location, salary, match_score, description, requirements, posted_at, type`

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (job.Job, error) {
	var j job.Job
	var salary sql.NullString
	var reqs, typ string
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &salary, &j.MatchScore, &j.Description, &reqs, &j.PostedAt, &typ); err != nil {
		return job.Job{}, err
	}
	if salary.Valid {
		s := salary.String
		j.Salary = &s
	}
	j.Type = job.Type(typ)
	if err := json.Unmarshal([]byte(reqs), &j.Requirements); err != nil {
		return job.Job{}, fmt.Errorf("decode requirements for job %s: %w", j.ID, err)
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	return j, nil
}

var _ job.Repository = (*JobRepository)(nil)
