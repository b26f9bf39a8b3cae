package matchrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

const matchColumns = `id, tournament_id, round_name, scheduled_at, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id, score1, score2, details, winning_side, is_ranked, status`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(&m.ID, &m.TournamentID, &m.RoundName, &m.ScheduledAt,
		&m.Team1Player1, &m.Team1Player2, &m.Team2Player1, &m.Team2Player2,
		&m.Score1, &m.Score2, &m.Details, &m.WinningSide, &m.IsRanked, &m.Status)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, m *domain.Match) (*domain.Match, error) {
	query := `
        INSERT INTO matches (tournament_id, round_name, scheduled_at, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id, score1, score2, details, winning_side, is_ranked, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING ` + matchColumns
	created, err := scanMatch(r.db.QueryRow(ctx, query,
		m.TournamentID, m.RoundName, m.ScheduledAt,
		m.Team1Player1, m.Team1Player2, m.Team2Player1, m.Team2Player2,
		m.Score1, m.Score2, m.Details, m.WinningSide, m.IsRanked, m.Status))
	if err != nil {
		zap.L().Error("failed to create match", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m, err := scanMatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find match", zap.Error(err))
		return nil, err
	}
	return m, nil
}

// GetForUpdate locks the match row for result recording.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1 FOR UPDATE`
	m, err := scanMatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock match row", zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (r *Repository) Update(ctx context.Context, m *domain.Match) error {
	query := `
        UPDATE matches
        SET score1 = $1, score2 = $2, details = $3, winning_side = $4, status = $5
        WHERE id = $6
    `
	if _, err := r.db.Exec(ctx, query, m.Score1, m.Score2, m.Details, m.WinningSide, m.Status, m.ID); err != nil {
		zap.L().Error("failed to update match", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByTournament(ctx context.Context, tournamentID int) ([]domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1 ORDER BY scheduled_at, id`
	rows, err := r.db.Query(ctx, query, tournamentID)
	if err != nil {
		zap.L().Error("failed to list matches", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func (r *Repository) DeleteByTournament(ctx context.Context, tournamentID int) error {
	query := `DELETE FROM matches WHERE tournament_id = $1`
	if _, err := r.db.Exec(ctx, query, tournamentID); err != nil {
		zap.L().Error("failed to delete tournament matches", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountUnfinished(ctx context.Context, tournamentID int) (int, error) {
	query := `SELECT count(*) FROM matches WHERE tournament_id = $1 AND status <> 'Finished'`
	var count int
	if err := r.db.QueryRow(ctx, query, tournamentID).Scan(&count); err != nil {
		zap.L().Error("failed to count unfinished matches", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) AddRankHistory(ctx context.Context, h *domain.RankHistory) error {
	query := `
        INSERT INTO rank_histories (member_id, old_rank, new_rank, reason, match_id)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := r.db.Exec(ctx, query, h.MemberID, h.OldRank, h.NewRank, h.Reason, h.MatchID); err != nil {
		zap.L().Error("failed to add rank history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListRankHistoryByMember(ctx context.Context, memberID int) ([]domain.RankHistory, error) {
	query := `
        SELECT id, member_id, old_rank, new_rank, changed_at, reason, match_id
        FROM rank_histories
        WHERE member_id = $1
        ORDER BY changed_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("failed to list rank history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.RankHistory
	for rows.Next() {
		var h domain.RankHistory
		if err := rows.Scan(&h.ID, &h.MemberID, &h.OldRank, &h.NewRank, &h.ChangedAt, &h.Reason, &h.MatchID); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
