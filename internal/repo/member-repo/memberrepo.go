package memberrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

const memberColumns = `id, user_id, full_name, join_date, rank_level, is_active, wallet_balance, tier, total_spent, avatar_url`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.UserID, &m.FullName, &m.JoinDate, &m.RankLevel, &m.IsActive,
		&m.WalletBalance, &m.Tier, &m.TotalSpent, &m.AvatarURL)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
        INSERT INTO members (user_id, full_name, avatar_url)
        VALUES ($1, $2, $3)
        RETURNING ` + memberColumns
	created, err := scanMember(r.db.QueryRow(ctx, query, member.UserID, member.FullName, member.AvatarURL))
	if err != nil {
		zap.L().Error("failed to create member", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE user_id = $1`
	member, err := scanMember(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find member by user id", zap.Error(err))
		return nil, err
	}
	return member, nil
}

// GetForUpdate locks the member row for the current transaction. Callers must
// run inside a TXManager scope; the lock serializes concurrent wallet writes.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1 FOR UPDATE`
	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock member row", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) UpdateWallet(ctx context.Context, member *domain.Member) error {
	query := `
        UPDATE members
        SET wallet_balance = $1, total_spent = $2, tier = $3
        WHERE id = $4
    `
	if _, err := r.db.Exec(ctx, query, member.WalletBalance, member.TotalSpent, member.Tier, member.ID); err != nil {
		zap.L().Error("failed to update member wallet", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	query := `UPDATE members SET avatar_url = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, avatarURL, id); err != nil {
		zap.L().Error("failed to update member avatar", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRank(ctx context.Context, id int, rank float64) error {
	query := `UPDATE members SET rank_level = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, rank, id); err != nil {
		zap.L().Error("failed to update member rank", zap.Error(err))
		return err
	}
	return nil
}
