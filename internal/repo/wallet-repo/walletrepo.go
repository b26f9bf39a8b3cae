package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

const txColumns = `id, member_id, amount, type, status, related_id, description, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanTransaction(row pgx.Row) (*domain.WalletTransaction, error) {
	var t domain.WalletTransaction
	err := row.Scan(&t.ID, &t.MemberID, &t.Amount, &t.Type, &t.Status, &t.RelatedID, &t.Description, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions (member_id, amount, type, status, related_id, description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + txColumns
	created, err := scanTransaction(r.db.QueryRow(ctx, query,
		t.MemberID, t.Amount, t.Type, t.Status, t.RelatedID, t.Description))
	if err != nil {
		zap.L().Error("failed to create wallet transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.WalletTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM wallet_transactions WHERE id = $1`
	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find wallet transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

// GetForUpdate locks the transaction row; deposit approval runs under this
// lock so a Pending row completes exactly once.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.WalletTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM wallet_transactions WHERE id = $1 FOR UPDATE`
	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.TransactionStatus) error {
	query := `UPDATE wallet_transactions SET status = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetRelatedID(ctx context.Context, id int, relatedID string) error {
	query := `UPDATE wallet_transactions SET related_id = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, relatedID, id); err != nil {
		zap.L().Error("failed to set transaction related id", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByMember(ctx context.Context, memberID int) ([]domain.WalletTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM wallet_transactions WHERE member_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("failed to list wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *t)
	}
	return txs, rows.Err()
}
