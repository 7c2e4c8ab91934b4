package v1

import (
	"time"

	"go-jobboard-api/internal/domain"
)

// Response bodies. Entities are never serialized directly so a password hash
// can never reach a client.

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type CandidateResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Resume    string    `json:"resume"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CompanyName string    `json:"companyName"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type JobResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ApplicationResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	JobID       string    `json:"jobId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func toCandidateResponse(c domain.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:        c.ID(),
		UserID:    c.UserID(),
		Resume:    c.Resume(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toCompanyResponse(c domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID(),
		UserID:      c.UserID(),
		CompanyName: c.CompanyName(),
		Description: c.Description(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func toJobResponse(j domain.Job) JobResponse {
	return JobResponse{
		ID:          j.ID(),
		CompanyID:   j.CompanyID(),
		Title:       j.Title().String(),
		Description: j.Description(),
		Status:      string(j.Status()),
		CreatedAt:   j.CreatedAt(),
		UpdatedAt:   j.UpdatedAt(),
	}
}

func toApplicationResponse(a domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID(),
		CandidateID: a.CandidateID(),
		JobID:       a.JobID(),
		Status:      string(a.Status()),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func mapSlice[E, R any](items []E, fn func(E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
