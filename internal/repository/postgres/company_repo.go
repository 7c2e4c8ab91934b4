package postgres

import (
	"context"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `id, user_id, company_name, description, created_at, updated_at`

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func scanCompany(row scanner) (domain.Company, error) {
	var rec domain.CompanyRecord
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.CompanyName, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.Company{}, err
	}
	return domain.RestoreCompany(rec)
}

func (r *companyRepo) FindByID(ctx context.Context, id string) (domain.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		return domain.Company{}, mapReadError(err, "select company")
	}
	return c, nil
}

func (r *companyRepo) FindByUserID(ctx context.Context, userID string) (domain.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE user_id = $1`, userID))
	if err != nil {
		return domain.Company{}, mapReadError(err, "select company by user")
	}
	return c, nil
}

func (r *companyRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, mapReadError(err, "check company")
	}
	return exists, nil
}

func (r *companyRepo) Save(ctx context.Context, c domain.Company) error {
	rec := c.Record()
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (`+companyColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.UserID, rec.CompanyName, rec.Description, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "insert company")
	}
	return nil
}

func (r *companyRepo) Update(ctx context.Context, c domain.Company) error {
	rec := c.Record()
	tag, err := r.db.Exec(ctx,
		`UPDATE companies SET company_name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		rec.ID, rec.CompanyName, rec.Description, rec.UpdatedAt,
	)
	return requireAffected(tag, err, "update company")
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return requireAffected(tag, err, "delete company")
}
