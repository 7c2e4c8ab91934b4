package gormstore

import (
	"context"

	"go-jobboard-api/internal/domain"

	"gorm.io/gorm"
)

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) list(tx *gorm.DB, op string) ([]domain.Application, error) {
	var rows []applicationModel
	if err := tx.Order("applications.created_at DESC").Find(&rows).Error; err != nil {
		return nil, mapError(err, op)
	}
	return toDomainList(rows, applicationModel.toDomain)
}

func (r *applicationRepo) FindByID(ctx context.Context, id string) (domain.Application, error) {
	var m applicationModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.Application{}, mapError(err, "select application")
	}
	return m.toDomain()
}

func (r *applicationRepo) FindByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	return r.list(r.db.WithContext(ctx).Where("candidate_id = ?", candidateID), "select applications by candidate")
}

func (r *applicationRepo) FindByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.list(r.db.WithContext(ctx).Where("job_id = ?", jobID), "select applications by job")
}

func (r *applicationRepo) FindByCompanyID(ctx context.Context, companyID string) ([]domain.Application, error) {
	tx := r.db.WithContext(ctx).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID)
	return r.list(tx, "select applications by company")
}

func (r *applicationRepo) FindByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", string(status)), "select applications by status")
}

func (r *applicationRepo) ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID string) (bool, error) {
	return exists(ctx, r.db, &applicationModel{}, "check application",
		"candidate_id = ? AND job_id = ?", candidateID, jobID)
}

func (r *applicationRepo) Save(ctx context.Context, a domain.Application) error {
	m := toApplicationModel(a)
	return create(ctx, r.db, &m, "insert application")
}

// Update only moves a PENDING row; a row decided in the meantime yields
// ErrStaleState.
func (r *applicationRepo) Update(ctx context.Context, a domain.Application) error {
	m := toApplicationModel(a)
	result := r.db.WithContext(ctx).Model(&applicationModel{}).
		Where("id = ? AND status = ?", m.ID, string(domain.ApplicationPending)).
		Updates(map[string]any{
			"status":     m.Status,
			"updated_at": m.UpdatedAt,
		})
	if result.Error != nil {
		return mapError(result.Error, "update application")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	found, err := exists(ctx, r.db, &applicationModel{}, "check application", "id = ?", m.ID)
	if err != nil {
		return err
	}
	if found {
		return domain.ErrStaleState
	}
	return domain.ErrNotFound
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.db, &applicationModel{}, id, "delete application")
}
