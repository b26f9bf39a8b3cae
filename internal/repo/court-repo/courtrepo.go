package courtrepo

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

func (r *Repository) List(ctx context.Context) ([]domain.Court, error) {
	query := `SELECT id, name, price_per_hour, is_active FROM courts ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list courts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var courts []domain.Court
	for rows.Next() {
		var c domain.Court
		if err := rows.Scan(&c.ID, &c.Name, &c.PricePerHour, &c.IsActive); err != nil {
			return nil, err
		}
		courts = append(courts, c)
	}
	return courts, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Court, error) {
	query := `SELECT id, name, price_per_hour, is_active FROM courts WHERE id = $1`
	var c domain.Court
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.PricePerHour, &c.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find court", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// GetForUpdate locks the court row; creating a booking for a court happens
// under this lock so that the conflict check and the insert are serialized.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Court, error) {
	query := `SELECT id, name, price_per_hour, is_active FROM courts WHERE id = $1 FOR UPDATE`
	var c domain.Court
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.PricePerHour, &c.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock court row", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	query := `
        INSERT INTO courts (name, price_per_hour, is_active)
        VALUES ($1, $2, $3)
        RETURNING id, name, price_per_hour, is_active
    `
	var created domain.Court
	err := r.db.QueryRow(ctx, query, court.Name, court.PricePerHour, court.IsActive).
		Scan(&created.ID, &created.Name, &created.PricePerHour, &created.IsActive)
	if err != nil {
		zap.L().Error("failed to create court", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, court *domain.Court) error {
	query := `UPDATE courts SET name = $1, price_per_hour = $2, is_active = $3 WHERE id = $4`
	if _, err := r.db.Exec(ctx, query, court.Name, court.PricePerHour, court.IsActive, court.ID); err != nil {
		zap.L().Error("failed to update court", zap.Error(err))
		return err
	}
	return nil
}
