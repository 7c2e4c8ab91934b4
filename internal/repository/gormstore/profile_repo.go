package gormstore

import (
	"context"

	"go-jobboard-api/internal/domain"

	"gorm.io/gorm"
)

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) find(ctx context.Context, column, value string) (domain.Candidate, error) {
	var m candidateModel
	if err := r.db.WithContext(ctx).First(&m, column+" = ?", value).Error; err != nil {
		return domain.Candidate{}, mapError(err, "select candidate")
	}
	return m.toDomain()
}

func (r *candidateRepo) FindByID(ctx context.Context, id string) (domain.Candidate, error) {
	return r.find(ctx, "id", id)
}

func (r *candidateRepo) FindByUserID(ctx context.Context, userID string) (domain.Candidate, error) {
	return r.find(ctx, "user_id", userID)
}

func (r *candidateRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return exists(ctx, r.db, &candidateModel{}, "check candidate", "user_id = ?", userID)
}

func (r *candidateRepo) Save(ctx context.Context, c domain.Candidate) error {
	m := toCandidateModel(c)
	return create(ctx, r.db, &m, "insert candidate")
}

func (r *candidateRepo) Update(ctx context.Context, c domain.Candidate) error {
	m := toCandidateModel(c)
	return update(ctx, r.db, &candidateModel{}, m.ID, map[string]any{
		"resume":     m.Resume,
		"updated_at": m.UpdatedAt,
	}, "update candidate")
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.db, &candidateModel{}, id, "delete candidate")
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) find(ctx context.Context, column, value string) (domain.Company, error) {
	var m companyModel
	if err := r.db.WithContext(ctx).First(&m, column+" = ?", value).Error; err != nil {
		return domain.Company{}, mapError(err, "select company")
	}
	return m.toDomain()
}

func (r *companyRepo) FindByID(ctx context.Context, id string) (domain.Company, error) {
	return r.find(ctx, "id", id)
}

func (r *companyRepo) FindByUserID(ctx context.Context, userID string) (domain.Company, error) {
	return r.find(ctx, "user_id", userID)
}

func (r *companyRepo) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return exists(ctx, r.db, &companyModel{}, "check company", "user_id = ?", userID)
}

func (r *companyRepo) Save(ctx context.Context, c domain.Company) error {
	m := toCompanyModel(c)
	return create(ctx, r.db, &m, "insert company")
}

func (r *companyRepo) Update(ctx context.Context, c domain.Company) error {
	m := toCompanyModel(c)
	return update(ctx, r.db, &companyModel{}, m.ID, map[string]any{
		"company_name": m.CompanyName,
		"description":  m.Description,
		"updated_at":   m.UpdatedAt,
	}, "update company")
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.db, &companyModel{}, id, "delete company")
}
