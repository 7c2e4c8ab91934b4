// Package gormstore implements the domain repositories on top of gorm. It backs
// the SQLite storage driver used for local runs and tests.
package gormstore

import (
	"time"

	"go-jobboard-api/internal/domain"

	"gorm.io/gorm"
)

type userModel struct {
	ID           string    `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Name         string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (userModel) TableName() string { return "users" }

type candidateModel struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"uniqueIndex;not null"`
	User      userModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Resume    string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (candidateModel) TableName() string { return "candidates" }

type companyModel struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"uniqueIndex;not null"`
	User        userModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CompanyName string    `gorm:"not null"`
	Description string
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

func (companyModel) TableName() string { return "companies" }

type jobModel struct {
	ID          string       `gorm:"primaryKey"`
	CompanyID   string       `gorm:"index;not null"`
	Company     companyModel `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Title       string       `gorm:"not null"`
	Description string       `gorm:"not null"`
	Status      string       `gorm:"index;not null"`
	CreatedAt   time.Time    `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime:false"`
}

func (jobModel) TableName() string { return "jobs" }

type applicationModel struct {
	ID          string         `gorm:"primaryKey"`
	CandidateID string         `gorm:"uniqueIndex:idx_applications_candidate_job;not null"`
	Candidate   candidateModel `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	JobID       string         `gorm:"uniqueIndex:idx_applications_candidate_job;index;not null"`
	Job         jobModel       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Status      string         `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime:false"`
}

func (applicationModel) TableName() string { return "applications" }

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &candidateModel{}, &companyModel{}, &jobModel{}, &applicationModel{})
}

func toUserModel(u domain.User) userModel {
	r := u.Record()
	return userModel{ID: r.ID, Email: r.Email, PasswordHash: r.PasswordHash, Name: r.Name, Role: string(r.Role), CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func (m userModel) toDomain() (domain.User, error) {
	return domain.RestoreUser(domain.UserRecord{
		ID: m.ID, Email: m.Email, PasswordHash: m.PasswordHash, Name: m.Name,
		Role: domain.UserRole(m.Role), CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	})
}

func toCandidateModel(c domain.Candidate) candidateModel {
	r := c.Record()
	return candidateModel{ID: r.ID, UserID: r.UserID, Resume: r.Resume, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func (m candidateModel) toDomain() (domain.Candidate, error) {
	return domain.RestoreCandidate(domain.CandidateRecord{
		ID: m.ID, UserID: m.UserID, Resume: m.Resume, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	})
}

func toCompanyModel(c domain.Company) companyModel {
	r := c.Record()
	return companyModel{ID: r.ID, UserID: r.UserID, CompanyName: r.CompanyName, Description: r.Description, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func (m companyModel) toDomain() (domain.Company, error) {
	return domain.RestoreCompany(domain.CompanyRecord{
		ID: m.ID, UserID: m.UserID, CompanyName: m.CompanyName, Description: m.Description,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	})
}

func toJobModel(j domain.Job) jobModel {
	r := j.Record()
	return jobModel{ID: r.ID, CompanyID: r.CompanyID, Title: r.Title, Description: r.Description, Status: string(r.Status), CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func (m jobModel) toDomain() (domain.Job, error) {
	return domain.RestoreJob(domain.JobRecord{
		ID: m.ID, CompanyID: m.CompanyID, Title: m.Title, Description: m.Description,
		Status: domain.JobStatus(m.Status), CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	})
}

func toApplicationModel(a domain.Application) applicationModel {
	r := a.Record()
	return applicationModel{ID: r.ID, CandidateID: r.CandidateID, JobID: r.JobID, Status: string(r.Status), CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func (m applicationModel) toDomain() (domain.Application, error) {
	return domain.RestoreApplication(domain.ApplicationRecord{
		ID: m.ID, CandidateID: m.CandidateID, JobID: m.JobID,
		Status: domain.ApplicationStatus(m.Status), CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	})
}
