package gormstore

import (
	"context"

	"go-jobboard-api/internal/domain"

	"gorm.io/gorm"
)

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) list(tx *gorm.DB, op string) ([]domain.Job, error) {
	var rows []jobModel
	if err := tx.Order("created_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, mapError(err, op)
	}
	return toDomainList(rows, jobModel.toDomain)
}

func (r *jobRepo) FindByID(ctx context.Context, id string) (domain.Job, error) {
	var m jobModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.Job{}, mapError(err, "select job")
	}
	return m.toDomain()
}

func (r *jobRepo) FindByCompanyID(ctx context.Context, companyID string) ([]domain.Job, error) {
	return r.list(r.db.WithContext(ctx).Where("company_id = ?", companyID), "select jobs by company")
}

func (r *jobRepo) FindByStatus(ctx context.Context, status domain.JobStatus) ([]domain.Job, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", string(status)), "select jobs by status")
}

func (r *jobRepo) FindAllOpen(ctx context.Context) ([]domain.Job, error) {
	return r.FindByStatus(ctx, domain.JobStatusOpen)
}

// FindAllOpenPaginated counts then pages in sequence; the sqlite store holds a
// single connection.
func (r *jobRepo) FindAllOpenPaginated(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResult[domain.Job], error) {
	total, err := r.CountOpen(ctx)
	if err != nil {
		return domain.PaginatedResult[domain.Job]{}, err
	}

	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.JobStatusOpen)).
		Limit(params.Limit).
		Offset(params.Offset())
	jobs, err := r.list(tx, "select open jobs page")
	if err != nil {
		return domain.PaginatedResult[domain.Job]{}, err
	}
	return domain.NewPaginatedResult(jobs, total, params), nil
}

func (r *jobRepo) CountOpen(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&jobModel{}).Where("status = ?", string(domain.JobStatusOpen)).Count(&total).Error
	if err != nil {
		return 0, mapError(err, "count open jobs")
	}
	return total, nil
}

func (r *jobRepo) Save(ctx context.Context, job domain.Job) error {
	m := toJobModel(job)
	return create(ctx, r.db, &m, "insert job")
}

func (r *jobRepo) Update(ctx context.Context, job domain.Job) error {
	m := toJobModel(job)
	return update(ctx, r.db, &jobModel{}, m.ID, map[string]any{
		"title":       m.Title,
		"description": m.Description,
		"status":      m.Status,
		"updated_at":  m.UpdatedAt,
	}, "update job")
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.db, &jobModel{}, id, "delete job")
}
