package notificationrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (member_id, title, message, severity, link)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, member_id, title, message, severity, link, is_read, created_at
    `
	var created domain.Notification
	err := r.db.QueryRow(ctx, query, n.MemberID, n.Title, n.Message, n.Severity, n.Link).
		Scan(&created.ID, &created.MemberID, &created.Title, &created.Message, &created.Severity,
			&created.Link, &created.IsRead, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create notification", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListByMember(ctx context.Context, memberID int) ([]domain.Notification, error) {
	query := `
        SELECT id, member_id, title, message, severity, link, is_read, created_at
        FROM notifications
        WHERE member_id = $1
        ORDER BY created_at DESC
        LIMIT 100
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.MemberID, &n.Title, &n.Message, &n.Severity, &n.Link, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *Repository) MarkRead(ctx context.Context, id, memberID int) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND member_id = $2`
	if _, err := r.db.Exec(ctx, query, id, memberID); err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, memberID int) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE member_id = $1`
	if _, err := r.db.Exec(ctx, query, memberID); err != nil {
		zap.L().Error("failed to mark notifications read", zap.Error(err))
		return err
	}
	return nil
}
