package postgres

import (
	"context"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const jobColumns = `id, company_id, title, description, status, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row scanner) (domain.Job, error) {
	var rec domain.JobRecord
	if err := row.Scan(&rec.ID, &rec.CompanyID, &rec.Title, &rec.Description, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.Job{}, err
	}
	return domain.RestoreJob(rec)
}

func collectJobs(rows pgx.Rows, op string) ([]domain.Job, error) {
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, mapReadError(err, op)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, op)
	}
	return jobs, nil
}

func (r *jobRepo) query(ctx context.Context, op, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapReadError(err, op)
	}
	return collectJobs(rows, op)
}

func (r *jobRepo) FindByID(ctx context.Context, id string) (domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return domain.Job{}, mapReadError(err, "select job")
	}
	return job, nil
}

func (r *jobRepo) FindByCompanyID(ctx context.Context, companyID string) ([]domain.Job, error) {
	return r.query(ctx, "select jobs by company",
		`SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
}

func (r *jobRepo) FindByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	return r.query(ctx, "select jobs by status",
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *jobRepo) FindAllOpen(ctx context.Context) ([]domain.Job, error) {
	return r.FindByStatus(ctx, domain.JobStatusOpen)
}

// FindAllOpenPaginated runs the page query and the count concurrently.
func (r *jobRepo) FindAllOpenPaginated(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResult[domain.Job], error) {
	var (
		jobs  []domain.Job
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = r.query(gctx, "select open jobs page",
			`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`,
			domain.JobStatusOpen, params.Limit, params.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = r.CountOpen(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.PaginatedResult[domain.Job]{}, err
	}

	return domain.NewPaginatedResult(jobs, total, params), nil
}

func (r *jobRepo) CountOpen(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = $1`, domain.JobStatusOpen).Scan(&total); err != nil {
		return 0, mapReadError(err, "count open jobs")
	}
	return total, nil
}

func (r *jobRepo) Save(ctx context.Context, job domain.Job) error {
	rec := job.Record()
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.CompanyID, rec.Title, rec.Description, rec.Status, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "insert job")
	}
	return nil
}

func (r *jobRepo) Update(ctx context.Context, job domain.Job) error {
	rec := job.Record()
	tag, err := r.db.Exec(ctx,
		`UPDATE jobs SET title = $2, description = $3, status = $4, updated_at = $5 WHERE id = $1`,
		rec.ID, rec.Title, rec.Description, rec.Status, rec.UpdatedAt,
	)
	return requireAffected(tag, err, "update job")
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return requireAffected(tag, err, "delete job")
}
