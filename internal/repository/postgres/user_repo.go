package postgres

import (
	"context"

	"go-jobboard-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password_hash, name, role, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row scanner) (domain.User, error) {
	var rec domain.UserRecord
	if err := row.Scan(&rec.ID, &rec.Email, &rec.PasswordHash, &rec.Name, &rec.Role, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	return domain.RestoreUser(rec)
}

func (r *userRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return domain.User{}, mapReadError(err, "select user by id")
	}
	return user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email.String()))
	if err != nil {
		return domain.User{}, mapReadError(err, "select user by email")
	}
	return user, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email.String()).Scan(&exists)
	if err != nil {
		return false, mapReadError(err, "check user email")
	}
	return exists, nil
}

func (r *userRepo) Save(ctx context.Context, user domain.User) error {
	rec := user.Record()
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, rec.ID, rec.Email, rec.PasswordHash, rec.Name, rec.Role, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "insert user")
	}
	return nil
}

func (r *userRepo) Update(ctx context.Context, user domain.User) error {
	rec := user.Record()
	query := `UPDATE users SET email = $2, password_hash = $3, name = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, rec.ID, rec.Email, rec.PasswordHash, rec.Name, rec.UpdatedAt)
	return requireAffected(tag, err, "update user")
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return requireAffected(tag, err, "delete user")
}
