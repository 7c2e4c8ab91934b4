package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
	rt          runtime
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, userRepo domain.UserRepository, opts ...Option) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		rt:          newRuntime(opts),
	}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, actor domain.Actor, in domain.CompanyInput) (domain.Company, error) {
	if strings.TrimSpace(actor.UserID) == "" {
		return domain.Company{}, apperror.Validation("User ID is required")
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return domain.Company{}, apperror.Validation("Company name is required")
	}

	user, err := u.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return domain.Company{}, notFoundOr(err, apperror.NotFound("User", actor.UserID), "find user")
	}
	if err := domain.ValidateCompanyRole(user); err != nil {
		return domain.Company{}, err
	}

	exists, err := u.companyRepo.ExistsByUserID(ctx, user.ID())
	if err != nil {
		return domain.Company{}, fmt.Errorf("check company profile: %w", err)
	}
	if exists {
		return domain.Company{}, apperror.Conflict("User already has a company profile")
	}

	company, err := domain.NewCompany(u.rt.newID(), user.ID(), in.CompanyName, in.Description, u.rt.now())
	if err != nil {
		return domain.Company{}, err
	}
	if err := u.companyRepo.Save(ctx, company); err != nil {
		return domain.Company{}, conflictOr(err, "User already has a company profile", "save company")
	}
	return company, nil
}

func (u *companyUsecase) GetMyCompany(ctx context.Context, actor domain.Actor) (domain.Company, error) {
	return resolveCompany(ctx, u.companyRepo, actor)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, actor domain.Actor, in domain.CompanyInput) (domain.Company, error) {
	company, err := resolveCompany(ctx, u.companyRepo, actor)
	if err != nil {
		return domain.Company{}, err
	}

	updated, err := company.UpdateProfile(in.CompanyName, in.Description, u.rt.now())
	if err != nil {
		return domain.Company{}, err
	}
	if err := u.companyRepo.Update(ctx, updated); err != nil {
		return domain.Company{}, notFoundOr(err, apperror.NotFoundMsg(msgCompanyProfileMissing), "update company")
	}
	return updated, nil
}
