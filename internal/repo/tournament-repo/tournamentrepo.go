package tournamentrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

const tournamentColumns = `id, name, start_date, end_date, format, entry_fee, prize_pool, status, settings`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanTournament(row pgx.Row) (*domain.Tournament, error) {
	var t domain.Tournament
	err := row.Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.Format, &t.EntryFee,
		&t.PrizePool, &t.Status, &t.Settings)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	query := `
        INSERT INTO tournaments (name, start_date, end_date, format, entry_fee, prize_pool, status, settings)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + tournamentColumns
	created, err := scanTournament(r.db.QueryRow(ctx, query,
		t.Name, t.StartDate, t.EndDate, t.Format, t.EntryFee, t.PrizePool, t.Status, t.Settings))
	if err != nil {
		zap.L().Error("failed to create tournament", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	t, err := scanTournament(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find tournament", zap.Error(err))
		return nil, err
	}
	return t, nil
}

// GetForUpdate locks the tournament row; join, schedule generation and result
// settlement serialize on it.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1 FOR UPDATE`
	t, err := scanTournament(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock tournament row", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) List(ctx context.Context, status domain.TournamentStatus) ([]domain.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, *t)
	}
	return tournaments, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.TournamentStatus) error {
	query := `UPDATE tournaments SET status = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("failed to update tournament status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountParticipants(ctx context.Context, tournamentID int) (int, error) {
	query := `SELECT count(*) FROM tournament_participants WHERE tournament_id = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, tournamentID).Scan(&count); err != nil {
		zap.L().Error("failed to count participants", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) HasParticipant(ctx context.Context, tournamentID, memberID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tournament_participants WHERE tournament_id = $1 AND member_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, tournamentID, memberID).Scan(&exists); err != nil {
		zap.L().Error("failed to check participant", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) AddParticipant(ctx context.Context, p *domain.TournamentParticipant) (*domain.TournamentParticipant, error) {
	query := `
        INSERT INTO tournament_participants (tournament_id, member_id, team_name, fee_settled)
        VALUES ($1, $2, $3, $4)
        RETURNING id, tournament_id, member_id, team_name, fee_settled
    `
	var created domain.TournamentParticipant
	err := r.db.QueryRow(ctx, query, p.TournamentID, p.MemberID, p.TeamName, p.FeeSettled).
		Scan(&created.ID, &created.TournamentID, &created.MemberID, &created.TeamName, &created.FeeSettled)
	if err != nil {
		zap.L().Error("failed to add participant", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListParticipants(ctx context.Context, tournamentID int) ([]domain.TournamentParticipant, error) {
	query := `
        SELECT id, tournament_id, member_id, team_name, fee_settled
        FROM tournament_participants
        WHERE tournament_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, tournamentID)
	if err != nil {
		zap.L().Error("failed to list participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.TournamentParticipant
	for rows.Next() {
		var p domain.TournamentParticipant
		if err := rows.Scan(&p.ID, &p.TournamentID, &p.MemberID, &p.TeamName, &p.FeeSettled); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
