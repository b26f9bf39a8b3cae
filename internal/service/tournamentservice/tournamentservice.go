package tournamentservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

type TournamentRepo interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	FindByID(ctx context.Context, id int) (*domain.Tournament, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Tournament, error)
	List(ctx context.Context, status domain.TournamentStatus) ([]domain.Tournament, error)
	UpdateStatus(ctx context.Context, id int, status domain.TournamentStatus) error
	CountParticipants(ctx context.Context, tournamentID int) (int, error)
	HasParticipant(ctx context.Context, tournamentID, memberID int) (bool, error)
	AddParticipant(ctx context.Context, p *domain.TournamentParticipant) (*domain.TournamentParticipant, error)
	ListParticipants(ctx context.Context, tournamentID int) ([]domain.TournamentParticipant, error)
}

type MatchRepo interface {
	Create(ctx context.Context, m *domain.Match) (*domain.Match, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Match, error)
	Update(ctx context.Context, m *domain.Match) error
	ListByTournament(ctx context.Context, tournamentID int) ([]domain.Match, error)
	DeleteByTournament(ctx context.Context, tournamentID int) error
	CountUnfinished(ctx context.Context, tournamentID int) (int, error)
	AddRankHistory(ctx context.Context, h *domain.RankHistory) error
}

type MemberRepo interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Member, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Member, error)
	UpdateRank(ctx context.Context, id int, rank float64) error
}

type Wallet interface {
	Apply(ctx context.Context, memberID int, amount decimal.Decimal, txType domain.TransactionType, description, relatedID string) (*domain.WalletTransaction, error)
}

type Notifier interface {
	NotifyMember(ctx context.Context, memberID int, message string, severity domain.Severity, title, link string)
	Broadcast(ctx context.Context, event string, payload any)
}

var (
	ErrNotFound              = errors.New("tournament not found")
	ErrMatchNotFound         = errors.New("match not found")
	ErrMemberNotFound        = errors.New("member not found")
	ErrRegistrationClosed    = errors.New("tournament registration is closed")
	ErrFull                  = errors.New("tournament is full")
	ErrAlreadyJoined         = errors.New("already joined this tournament")
	ErrNotEnoughParticipants = errors.New("not enough participants")
	ErrInvalidState          = errors.New("tournament is not in the required status")
)

// Detail is the full tournament view: the participants and the schedule.
type Detail struct {
	Tournament   domain.Tournament
	Participants []domain.TournamentParticipant
	Matches      []domain.Match
}

type Service struct {
	tournamentRepo TournamentRepo
	matchRepo      MatchRepo
	memberRepo     MemberRepo
	wallet         Wallet
	notifier       Notifier
	txManager      pg.TXManager

	rankDelta float64

	// rnd is not safe for concurrent use; rndMu serializes draws across
	// tournaments.
	rndMu sync.Mutex
	rnd   *rand.Rand
}

func New(tournamentRepo TournamentRepo, matchRepo MatchRepo, memberRepo MemberRepo, wallet Wallet, notifier Notifier, txManager pg.TXManager, rankDelta float64) *Service {
	return &Service{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		memberRepo:     memberRepo,
		wallet:         wallet,
		notifier:       notifier,
		txManager:      txManager,
		rankDelta:      rankDelta,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	t.Status = domain.TournamentOpen
	return s.tournamentRepo.Create(ctx, t)
}

func (s *Service) List(ctx context.Context, status domain.TournamentStatus) ([]domain.Tournament, error) {
	return s.tournamentRepo.List(ctx, status)
}

func (s *Service) Get(ctx context.Context, id int) (*Detail, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		return nil, ErrNotFound
	}

	participants, err := s.tournamentRepo.ListParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Tournament: *tournament, Participants: participants, Matches: matches}, nil
}

// Join registers a member, charging the entry fee and inserting the
// participant row atomically. Duplicate joins and full tournaments are
// rejected before any money moves.
func (s *Service) Join(ctx context.Context, userID string, tournamentID int, teamName string) error {
	member, err := s.memberRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		tournament, err := s.tournamentRepo.GetForUpdate(ctx, tournamentID)
		if err != nil {
			return err
		}
		if tournament == nil {
			return ErrNotFound
		}
		if tournament.Status != domain.TournamentOpen && tournament.Status != domain.TournamentRegistering {
			return ErrRegistrationClosed
		}

		if max := tournament.Settings.MaxParticipants; max != nil {
			count, err := s.tournamentRepo.CountParticipants(ctx, tournamentID)
			if err != nil {
				return err
			}
			if count >= *max {
				return ErrFull
			}
		}

		joined, err := s.tournamentRepo.HasParticipant(ctx, tournamentID, member.ID)
		if err != nil {
			return err
		}
		if joined {
			return ErrAlreadyJoined
		}

		if tournament.EntryFee.IsPositive() {
			_, err = s.wallet.Apply(ctx, member.ID, tournament.EntryFee.Neg(), domain.TxPayment,
				fmt.Sprintf("Entry fee for %s", tournament.Name), strconv.Itoa(tournament.ID))
			if err != nil {
				return err
			}
		}

		_, err = s.tournamentRepo.AddParticipant(ctx, &domain.TournamentParticipant{
			TournamentID: tournamentID,
			MemberID:     member.ID,
			TeamName:     teamName,
			FeeSettled:   true,
		})
		return err
	})
	if err != nil {
		return err
	}

	s.notifier.NotifyMember(ctx, member.ID, "Tournament registration confirmed.",
		domain.SeveritySuccess, "Tournament joined", "/tournaments")
	return nil
}

func knockoutRoundName(participantCount int) string {
	switch participantCount {
	case 2:
		return "Final"
	case 4:
		return "Semi Final"
	case 8:
		return "Quarter Final"
	case 16:
		return "Round of 16"
	case 32:
		return "Round of 32"
	default:
		return "Round 1"
	}
}

// buildMatches turns a shuffled participant list into the round-1 schedule
// for the tournament's format.
func buildMatches(t *domain.Tournament, participants []domain.TournamentParticipant) []domain.Match {
	var matches []domain.Match

	newMatch := func(round string, p1, p2 int) domain.Match {
		a, b := p1, p2
		return domain.Match{
			TournamentID: &t.ID,
			RoundName:    round,
			ScheduledAt:  t.StartDate,
			Team1Player1: &a,
			Team2Player1: &b,
			WinningSide:  domain.SideNone,
			Status:       domain.MatchScheduled,
		}
	}

	switch t.Format {
	case domain.FormatRoundRobin, domain.FormatHybrid:
		numGroups := 1
		if t.Settings.NumGroups != nil {
			numGroups = *t.Settings.NumGroups
		}
		if numGroups < 1 {
			numGroups = 1
		}
		if numGroups > len(participants) {
			numGroups = len(participants)
		}

		groups := make([][]domain.TournamentParticipant, numGroups)
		for i, p := range participants {
			groups[i%numGroups] = append(groups[i%numGroups], p)
		}

		for g, group := range groups {
			round := "Round Robin"
			if numGroups > 1 {
				round = fmt.Sprintf("Group %c", rune('A'+g))
			}
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					matches = append(matches, newMatch(round, group[i].MemberID, group[j].MemberID))
				}
			}
		}

	case domain.FormatKnockout:
		round := knockoutRoundName(len(participants))
		// Sequential pairing; a trailing unpaired participant sits out round 1.
		for i := 0; i+1 < len(participants); i += 2 {
			matches = append(matches, newMatch(round, participants[i].MemberID, participants[i+1].MemberID))
		}
	}

	return matches
}

// GenerateSchedule draws the round-1 bracket. Re-running replaces any
// previously generated matches with a fresh random draw.
func (s *Service) GenerateSchedule(ctx context.Context, tournamentID int) (int, error) {
	var matchCount int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tournament, err := s.tournamentRepo.GetForUpdate(ctx, tournamentID)
		if err != nil {
			return err
		}
		if tournament == nil {
			return ErrNotFound
		}
		// Status only moves forward; a running or finished draw is final.
		switch tournament.Status {
		case domain.TournamentOpen, domain.TournamentRegistering, domain.TournamentDrawCompleted:
		default:
			return ErrInvalidState
		}

		participants, err := s.tournamentRepo.ListParticipants(ctx, tournamentID)
		if err != nil {
			return err
		}
		if len(participants) < 2 {
			return ErrNotEnoughParticipants
		}

		if err := s.matchRepo.DeleteByTournament(ctx, tournamentID); err != nil {
			return err
		}

		s.rndMu.Lock()
		s.rnd.Shuffle(len(participants), func(i, j int) {
			participants[i], participants[j] = participants[j], participants[i]
		})
		s.rndMu.Unlock()

		matches := buildMatches(tournament, participants)
		for i := range matches {
			if _, err := s.matchRepo.Create(ctx, &matches[i]); err != nil {
				return err
			}
		}
		matchCount = len(matches)

		return s.tournamentRepo.UpdateStatus(ctx, tournamentID, domain.TournamentDrawCompleted)
	})
	if err != nil {
		return 0, err
	}

	s.notifier.Broadcast(ctx, "match.score", map[string]any{
		"tournament_id": tournamentID,
		"match_count":   matchCount,
	})
	return matchCount, nil
}

func (s *Service) applyRankChange(ctx context.Context, memberID int, delta float64, matchID int, reason string) error {
	member, err := s.memberRepo.GetForUpdate(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return nil
	}

	oldRank := member.RankLevel
	newRank := math.Max(0, oldRank+delta)
	if err := s.memberRepo.UpdateRank(ctx, memberID, newRank); err != nil {
		return err
	}

	return s.matchRepo.AddRankHistory(ctx, &domain.RankHistory{
		MemberID: memberID,
		OldRank:  oldRank,
		NewRank:  newRank,
		Reason:   reason,
		MatchID:  &matchID,
	})
}

// prizeShare is the per-winner cut: the pool divided by the winner count,
// truncated to 2 decimal places. Any remainder stays undistributed.
func prizeShare(pool decimal.Decimal, winners int) decimal.Decimal {
	return pool.Div(decimal.NewFromInt(int64(winners))).RoundDown(2)
}

func (s *Service) distributePrize(ctx context.Context, tournament *domain.Tournament, winnerIDs []int) error {
	if !tournament.PrizePool.IsPositive() || len(winnerIDs) == 0 {
		return nil
	}

	share := prizeShare(tournament.PrizePool, len(winnerIDs))
	for _, winnerID := range winnerIDs {
		_, err := s.wallet.Apply(ctx, winnerID, share, domain.TxReward,
			fmt.Sprintf("Prize for tournament %s", tournament.Name), strconv.Itoa(tournament.ID))
		if err != nil {
			return err
		}
	}
	return nil
}

// RecordResult finalizes a match: scores, rank adjustments for ranked play,
// tournament progression, and the prize payout when the final concludes. The
// whole settlement is one atomic unit.
func (s *Service) RecordResult(ctx context.Context, matchID, score1, score2 int, details string, winningSide domain.WinningSide) (*domain.Match, error) {
	var (
		match        *domain.Match
		prizeWinners []int
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		match, err = s.matchRepo.GetForUpdate(ctx, matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return ErrMatchNotFound
		}

		match.Score1 = score1
		match.Score2 = score2
		match.Details = details
		match.WinningSide = winningSide
		match.Status = domain.MatchFinished
		if err := s.matchRepo.Update(ctx, match); err != nil {
			return err
		}

		if match.IsRanked && winningSide != domain.SideNone {
			winners, losers := match.Team1(), match.Team2()
			if winningSide == domain.SideTeam2 {
				winners, losers = losers, winners
			}
			for _, id := range winners {
				if err := s.applyRankChange(ctx, id, s.rankDelta, match.ID, "Match Win"); err != nil {
					return err
				}
			}
			for _, id := range losers {
				if err := s.applyRankChange(ctx, id, -s.rankDelta, match.ID, "Match Loss"); err != nil {
					return err
				}
			}
		}

		if match.TournamentID == nil {
			return nil
		}

		tournament, err := s.tournamentRepo.GetForUpdate(ctx, *match.TournamentID)
		if err != nil {
			return err
		}
		if tournament == nil {
			return nil
		}

		if tournament.Status == domain.TournamentDrawCompleted {
			tournament.Status = domain.TournamentOngoing
			if err := s.tournamentRepo.UpdateStatus(ctx, tournament.ID, tournament.Status); err != nil {
				return err
			}
		}

		isFinal := strings.Contains(strings.ToLower(match.RoundName), "final")
		if isFinal && tournament.Status != domain.TournamentFinished && winningSide != domain.SideNone {
			winners := match.Team1()
			if winningSide == domain.SideTeam2 {
				winners = match.Team2()
			}
			if err := s.distributePrize(ctx, tournament, winners); err != nil {
				return err
			}
			prizeWinners = winners
			tournament.Status = domain.TournamentFinished
			return s.tournamentRepo.UpdateStatus(ctx, tournament.ID, tournament.Status)
		}

		if tournament.Status != domain.TournamentFinished {
			remaining, err := s.matchRepo.CountUnfinished(ctx, tournament.ID)
			if err != nil {
				return err
			}
			if remaining == 0 {
				return s.tournamentRepo.UpdateStatus(ctx, tournament.ID, domain.TournamentFinished)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Broadcast(ctx, "match.score", map[string]any{
		"match_id":     match.ID,
		"round_name":   match.RoundName,
		"score1":       match.Score1,
		"score2":       match.Score2,
		"winning_side": match.WinningSide,
	})

	var g errgroup.Group
	for _, playerID := range match.Players() {
		playerID := playerID
		g.Go(func() error {
			s.notifier.NotifyMember(ctx, playerID,
				fmt.Sprintf("Match result recorded: %d-%d", match.Score1, match.Score2),
				domain.SeverityInfo, "Match result", "/tournaments")
			return nil
		})
	}
	for _, winnerID := range prizeWinners {
		winnerID := winnerID
		g.Go(func() error {
			s.notifier.NotifyMember(ctx, winnerID, "Congratulations, tournament prize awarded!",
				domain.SeveritySuccess, "Tournament prize", "/wallet")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to notify match participants", zap.Error(err))
	}

	return match, nil
}
