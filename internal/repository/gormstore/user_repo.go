package gormstore

import (
	"context"

	"go-jobboard-api/internal/domain"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return domain.User{}, mapError(err, "select user")
	}
	return m.toDomain()
}

func (r *userRepo) FindByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, "email = ?", email.String()).Error; err != nil {
		return domain.User{}, mapError(err, "select user by email")
	}
	return m.toDomain()
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	return exists(ctx, r.db, &userModel{}, "check user email", "email = ?", email.String())
}

func (r *userRepo) Save(ctx context.Context, user domain.User) error {
	m := toUserModel(user)
	return create(ctx, r.db, &m, "insert user")
}

func (r *userRepo) Update(ctx context.Context, user domain.User) error {
	m := toUserModel(user)
	return update(ctx, r.db, &userModel{}, m.ID, map[string]any{
		"email":         m.Email,
		"password_hash": m.PasswordHash,
		"name":          m.Name,
		"updated_at":    m.UpdatedAt,
	}, "update user")
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.db, &userModel{}, id, "delete user")
}
