package postgres

import (
	"context"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, candidate_id, job_id, status, created_at, updated_at`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row scanner) (domain.Application, error) {
	var rec domain.ApplicationRecord
	if err := row.Scan(&rec.ID, &rec.CandidateID, &rec.JobID, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.Application{}, err
	}
	return domain.RestoreApplication(rec)
}

func (r *applicationRepo) list(ctx context.Context, op, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapReadError(err, op)
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, mapReadError(err, op)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, op)
	}
	return applications, nil
}

func (r *applicationRepo) FindByID(ctx context.Context, id string) (domain.Application, error) {
	a, err := scanApplication(r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		return domain.Application{}, mapReadError(err, "select application")
	}
	return a, nil
}

func (r *applicationRepo) FindByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	return r.list(ctx, "select applications by candidate",
		`SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 ORDER BY created_at DESC`, candidateID)
}

func (r *applicationRepo) FindByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.list(ctx, "select applications by job",
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at DESC`, jobID)
}

func (r *applicationRepo) FindByCompanyID(ctx context.Context, companyID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.candidate_id, a.job_id, a.status, a.created_at, a.updated_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = $1
		ORDER BY a.created_at DESC`
	return r.list(ctx, "select applications by company", query, companyID)
}

func (r *applicationRepo) FindByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return r.list(ctx, "select applications by status",
		`SELECT `+applicationColumns+` FROM applications WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *applicationRepo) ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID,
	).Scan(&exists)
	if err != nil {
		return false, mapReadError(err, "check application")
	}
	return exists, nil
}

func (r *applicationRepo) Save(ctx context.Context, a domain.Application) error {
	rec := a.Record()
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.CandidateID, rec.JobID, rec.Status, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "insert application")
	}
	return nil
}

// Update only moves a PENDING row; a row decided in the meantime yields
// ErrStaleState.
func (r *applicationRepo) Update(ctx context.Context, a domain.Application) error {
	rec := a.Record()
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`,
		rec.ID, rec.Status, rec.UpdatedAt, domain.ApplicationPending,
	)
	if err != nil {
		return mapWriteError(err, "update application")
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`, rec.ID).Scan(&exists); err != nil {
		return mapReadError(err, "check application")
	}
	if exists {
		return domain.ErrStaleState
	}
	return domain.ErrNotFound
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	return requireAffected(tag, err, "delete application")
}
