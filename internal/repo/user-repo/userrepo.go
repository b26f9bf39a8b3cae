package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, role, created_at
        FROM users
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by login", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, login, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, login, password_hash, role, created_at
    `
	row := r.db.QueryRow(ctx, query, user.ID, user.Login, user.PasswordHash, user.Role)
	var created domain.User
	err := row.Scan(&created.ID, &created.Login, &created.PasswordHash, &created.Role, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
