package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeboost/pkg/job"
)

// JobRepository stores the job catalog. Rows keep their insertion order
// through the seq identity column.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *JobRepository) CreateMany(ctx context.Context, jobs []job.Job) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, j := range jobs {
		reqs, err := json.Marshal(requirementsOrEmpty(j.Requirements))
		if err != nil {
			return fmt.Errorf("encode requirements for job %s: %w", j.ID, err)
		}
		_, err = tx.Exec(ctx, `
INSERT INTO jobs (id, title, company, location, salary, match_score, description, requirements, posted_at, type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO NOTHING
`, j.ID, j.Title, j.Company, j.Location, j.Salary, j.MatchScore, j.Description, reqs, j.PostedAt, string(j.Type))
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

const jobColumns = `id, title, company, location, salary, match_score, description, requirements, posted_at, type`

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq`)
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
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var reqs []byte
	var typ string
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.MatchScore, &j.Description, &reqs, &j.PostedAt, &typ); err != nil {
		return job.Job{}, err
	}
	j.Type = job.Type(typ)
	if err := json.Unmarshal(reqs, &j.Requirements); err != nil {
		return job.Job{}, fmt.Errorf("decode requirements for job %s: %w", j.ID, err)
	}
	j.Requirements = requirementsOrEmpty(j.Requirements)
	return j, nil
}

func requirementsOrEmpty(reqs []string) []string {
	if reqs == nil {
		return []string{}
	}
	return reqs
}

var _ job.Repository = (*JobRepository)(nil)
