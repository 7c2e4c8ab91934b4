package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	userRepo      domain.UserRepository
	rt            runtime
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, userRepo domain.UserRepository, opts ...Option) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
		rt:            newRuntime(opts),
	}
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, actor domain.Actor, resume string) (domain.Candidate, error) {
	if strings.TrimSpace(actor.UserID) == "" {
		return domain.Candidate{}, apperror.Validation("User ID is required")
	}

	user, err := u.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return domain.Candidate{}, notFoundOr(err, apperror.NotFound("User", actor.UserID), "find user")
	}
	if err := domain.ValidateCandidateRole(user); err != nil {
		return domain.Candidate{}, err
	}

	exists, err := u.candidateRepo.ExistsByUserID(ctx, user.ID())
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("check candidate profile: %w", err)
	}
	if exists {
		return domain.Candidate{}, apperror.Conflict("User already has a candidate profile")
	}

	candidate, err := domain.NewCandidate(u.rt.newID(), user.ID(), resume, u.rt.now())
	if err != nil {
		return domain.Candidate{}, err
	}
	if err := u.candidateRepo.Save(ctx, candidate); err != nil {
		return domain.Candidate{}, conflictOr(err, "User already has a candidate profile", "save candidate")
	}
	return candidate, nil
}

func (u *candidateUsecase) GetMyProfile(ctx context.Context, actor domain.Actor) (domain.Candidate, error) {
	return resolveCandidate(ctx, u.candidateRepo, actor)
}

func (u *candidateUsecase) UpdateResume(ctx context.Context, actor domain.Actor, resume string) (domain.Candidate, error) {
	candidate, err := resolveCandidate(ctx, u.candidateRepo, actor)
	if err != nil {
		return domain.Candidate{}, err
	}

	updated, err := candidate.UpdateResume(resume, u.rt.now())
	if err != nil {
		return domain.Candidate{}, err
	}
	if err := u.candidateRepo.Update(ctx, updated); err != nil {
		return domain.Candidate{}, notFoundOr(err, apperror.NotFoundMsg(msgCandidateProfileMissing), "update candidate")
	}
	return updated, nil
}
