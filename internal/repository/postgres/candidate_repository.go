package postgres

import (
	"context"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const candidateColumns = `id, user_id, resume, created_at, updated_at`

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func scanCandidate(row scanner) (domain.Candidate, error) {
	var rec domain.CandidateRecord
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Resume, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.Candidate{}, err
	}
	return domain.RestoreCandidate(rec)
}

func (r *candidateRepo) FindByID(ctx context.Context, id string) (domain.Candidate, error) {
	c, err := scanCandidate(r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		return domain.Candidate{}, mapReadError(err, "select candidate")
	}
	return c, nil
}

func (r *candidateRepo) FindByUserID(ctx context.Context, userID string) (domain.Candidate, error) {
	c, err := scanCandidate(r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE user_id = $1`, userID))
	if err != nil {
		return domain.Candidate{}, mapReadError(err, "select candidate by user")
	}
	return c, nil
}

func (r *candidateRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, mapReadError(err, "check candidate")
	}
	return exists, nil
}

func (r *candidateRepo) Save(ctx context.Context, c domain.Candidate) error {
	rec := c.Record()
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (`+candidateColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.UserID, rec.Resume, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "insert candidate")
	}
	return nil
}

func (r *candidateRepo) Update(ctx context.Context, c domain.Candidate) error {
	rec := c.Record()
	tag, err := r.db.Exec(ctx,
		`UPDATE candidates SET resume = $2, updated_at = $3 WHERE id = $1`,
		rec.ID, rec.Resume, rec.UpdatedAt,
	)
	return requireAffected(tag, err, "update candidate")
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	return requireAffected(tag, err, "delete candidate")
}
