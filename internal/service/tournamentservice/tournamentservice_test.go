package tournamentservice

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockTournamentRepo, *MockMatchRepo, *MockMemberRepo, *MockWallet, *MockNotifier, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	tournamentRepo := NewMockTournamentRepo(ctrl)
	matchRepo := NewMockMatchRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(tournamentRepo, matchRepo, memberRepo, wallet, notifier, txManager, 0.1)
	defer ctrl.Finish()
	return service, tournamentRepo, matchRepo, memberRepo, wallet, notifier, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func allowNotify(notifier *MockNotifier) {
	notifier.EXPECT().Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	notifier.EXPECT().NotifyMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func intPtr(v int) *int { return &v }

func TestKnockoutRoundName(t *testing.T) {
	tests := []struct {
		participants int
		expected     string
	}{
		{participants: 2, expected: "Final"},
		{participants: 4, expected: "Semi Final"},
		{participants: 8, expected: "Quarter Final"},
		{participants: 16, expected: "Round of 16"},
		{participants: 32, expected: "Round of 32"},
		{participants: 5, expected: "Round 1"},
		{participants: 12, expected: "Round 1"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, knockoutRoundName(tt.participants))
		})
	}
}

func TestPrizeShare(t *testing.T) {
	tests := []struct {
		name     string
		pool     int64
		winners  int
		expected string
	}{
		{name: "Single winner takes the pool", pool: 100, winners: 1, expected: "100"},
		{name: "Even split", pool: 100, winners: 4, expected: "25"},
		{name: "Uneven split truncates", pool: 100, winners: 3, expected: "33.33"},
		{name: "Large pool", pool: 1_000_000, winners: 2, expected: "500000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prizeShare(decimal.NewFromInt(tt.pool), tt.winners)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}

func participantList(memberIDs ...int) []domain.TournamentParticipant {
	out := make([]domain.TournamentParticipant, 0, len(memberIDs))
	for _, id := range memberIDs {
		out = append(out, domain.TournamentParticipant{MemberID: id})
	}
	return out
}

func TestBuildMatches(t *testing.T) {
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Knockout pairs sequentially, odd player sits out", func(t *testing.T) {
		tournament := &domain.Tournament{ID: 1, Format: domain.FormatKnockout, StartDate: start}
		matches := buildMatches(tournament, participantList(10, 20, 30, 40, 50))

		assert.Len(t, matches, 2)
		for _, m := range matches {
			assert.Equal(t, "Round 1", m.RoundName)
			assert.Equal(t, domain.MatchScheduled, m.Status)
			assert.Equal(t, domain.SideNone, m.WinningSide)
		}
		assert.Equal(t, 10, *matches[0].Team1Player1)
		assert.Equal(t, 20, *matches[0].Team2Player1)
		assert.Equal(t, 30, *matches[1].Team1Player1)
		assert.Equal(t, 40, *matches[1].Team2Player1)
	})

	t.Run("Four-player knockout starts at the semi final", func(t *testing.T) {
		tournament := &domain.Tournament{ID: 1, Format: domain.FormatKnockout, StartDate: start}
		matches := buildMatches(tournament, participantList(1, 2, 3, 4))

		assert.Len(t, matches, 2)
		assert.Equal(t, "Semi Final", matches[0].RoundName)
	})

	t.Run("Round robin plays everyone against everyone", func(t *testing.T) {
		tournament := &domain.Tournament{ID: 1, Format: domain.FormatRoundRobin, StartDate: start}
		matches := buildMatches(tournament, participantList(1, 2, 3, 4))

		assert.Len(t, matches, 6)
		for _, m := range matches {
			assert.Equal(t, "Round Robin", m.RoundName)
		}
	})

	t.Run("Groups partition the field round-robin style", func(t *testing.T) {
		tournament := &domain.Tournament{
			ID:        1,
			Format:    domain.FormatRoundRobin,
			StartDate: start,
			Settings:  domain.TournamentSettings{NumGroups: intPtr(2)},
		}
		matches := buildMatches(tournament, participantList(1, 2, 3, 4, 5))

		// Group A gets three players (3 pairings), group B two (1 pairing).
		assert.Len(t, matches, 4)
		var groupA, groupB int
		for _, m := range matches {
			switch m.RoundName {
			case "Group A":
				groupA++
			case "Group B":
				groupB++
			}
		}
		assert.Equal(t, 3, groupA)
		assert.Equal(t, 1, groupB)
	})

	t.Run("Group count is clamped to the field size", func(t *testing.T) {
		tournament := &domain.Tournament{
			ID:        1,
			Format:    domain.FormatHybrid,
			StartDate: start,
			Settings:  domain.TournamentSettings{NumGroups: intPtr(10)},
		}
		matches := buildMatches(tournament, participantList(1, 2))

		assert.Len(t, matches, 1)
	})
}

func TestJoin(t *testing.T) {
	service, tournamentRepo, _, memberRepo, wallet, notifier, txManager := NewMock(t)

	member := &domain.Member{ID: 1, UserID: "user-1"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Entry fee is charged and the participant added",
			prepareMock: func() {
				allowNotify(notifier)
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(member, nil)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:       4,
					Name:     "Summer Open",
					Status:   domain.TournamentOpen,
					EntryFee: decimal.NewFromInt(200_000),
				}, nil)
				tournamentRepo.EXPECT().HasParticipant(gomock.Any(), 4, 1).Return(false, nil)
				wallet.EXPECT().Apply(gomock.Any(), 1, gomock.Any(), domain.TxPayment, gomock.Any(), "4").DoAndReturn(
					func(_ context.Context, _ int, amount decimal.Decimal, _ domain.TransactionType, _, _ string) (*domain.WalletTransaction, error) {
						assert.True(t, amount.Equal(decimal.NewFromInt(-200_000)))
						return &domain.WalletTransaction{ID: 50}, nil
					},
				)
				tournamentRepo.EXPECT().AddParticipant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.TournamentParticipant) (*domain.TournamentParticipant, error) {
						assert.True(t, p.FeeSettled)
						assert.Equal(t, 1, p.MemberID)
						return p, nil
					},
				)
			},
		},
		{
			name: "Free tournament moves no money",
			prepareMock: func() {
				allowNotify(notifier)
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(member, nil)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:     4,
					Status: domain.TournamentRegistering,
				}, nil)
				tournamentRepo.EXPECT().HasParticipant(gomock.Any(), 4, 1).Return(false, nil)
				tournamentRepo.EXPECT().AddParticipant(gomock.Any(), gomock.Any()).Return(&domain.TournamentParticipant{}, nil)
			},
		},
		{
			name: "Duplicate join is rejected before charging",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(member, nil)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:       4,
					Status:   domain.TournamentOpen,
					EntryFee: decimal.NewFromInt(200_000),
				}, nil)
				tournamentRepo.EXPECT().HasParticipant(gomock.Any(), 4, 1).Return(true, nil)
			},
			expectedError: ErrAlreadyJoined,
		},
		{
			name: "Full tournament",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(member, nil)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:       4,
					Status:   domain.TournamentOpen,
					Settings: domain.TournamentSettings{MaxParticipants: intPtr(8)},
				}, nil)
				tournamentRepo.EXPECT().CountParticipants(gomock.Any(), 4).Return(8, nil)
			},
			expectedError: ErrFull,
		},
		{
			name: "Registration closed once the draw runs",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(member, nil)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:     4,
					Status: domain.TournamentOngoing,
				}, nil)
			},
			expectedError: ErrRegistrationClosed,
		},
		{
			name: "Unknown tournament",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(member, nil)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name: "Unknown member",
			prepareMock: func() {
				memberRepo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Join(context.Background(), "user-1", 4, "")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateSchedule(t *testing.T) {
	service, tournamentRepo, matchRepo, _, _, notifier, txManager := NewMock(t)
	service.rnd = rand.New(rand.NewSource(1))

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name: "Knockout draw over five entrants",
			prepareMock: func() {
				allowNotify(notifier)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:     4,
					Format: domain.FormatKnockout,
					Status: domain.TournamentRegistering,
				}, nil)
				tournamentRepo.EXPECT().ListParticipants(gomock.Any(), 4).Return(participantList(1, 2, 3, 4, 5), nil)
				matchRepo.EXPECT().DeleteByTournament(gomock.Any(), 4).Return(nil)
				matchRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *domain.Match) (*domain.Match, error) {
						assert.Equal(t, "Round 1", m.RoundName)
						assert.Equal(t, domain.MatchScheduled, m.Status)
						return m, nil
					},
				).Times(2)
				tournamentRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.TournamentDrawCompleted).Return(nil)
			},
			expectedCount: 2,
		},
		{
			name: "Re-draw replaces the previous schedule",
			prepareMock: func() {
				allowNotify(notifier)
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:     4,
					Format: domain.FormatRoundRobin,
					Status: domain.TournamentDrawCompleted,
				}, nil)
				tournamentRepo.EXPECT().ListParticipants(gomock.Any(), 4).Return(participantList(1, 2, 3), nil)
				matchRepo.EXPECT().DeleteByTournament(gomock.Any(), 4).Return(nil)
				matchRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *domain.Match) (*domain.Match, error) {
						assert.Equal(t, "Round Robin", m.RoundName)
						return m, nil
					},
				).Times(3)
				tournamentRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.TournamentDrawCompleted).Return(nil)
			},
			expectedCount: 3,
		},
		{
			name: "Not enough participants",
			prepareMock: func() {
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:     4,
					Status: domain.TournamentOpen,
				}, nil)
				tournamentRepo.EXPECT().ListParticipants(gomock.Any(), 4).Return(participantList(1), nil)
			},
			expectedError: ErrNotEnoughParticipants,
		},
		{
			name: "Running tournaments keep their draw",
			prepareMock: func() {
				passthroughTx(txManager)
				tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
					ID:     4,
					Status: domain.TournamentOngoing,
				}, nil)
			},
			expectedError: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			count, err := service.GenerateSchedule(context.Background(), 4)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, count)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}
		})
	}
}

// The row lock only serializes draws for the same tournament; draws for
// different tournaments share the service's rand source and must not race
// on it. Run under -race.
func TestGenerateScheduleConcurrentDraws(t *testing.T) {
	service, tournamentRepo, matchRepo, _, _, notifier, txManager := NewMock(t)
	service.rnd = rand.New(rand.NewSource(7))

	allowNotify(notifier)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int) (*domain.Tournament, error) {
			return &domain.Tournament{
				ID:     id,
				Format: domain.FormatKnockout,
				Status: domain.TournamentRegistering,
			}, nil
		},
	).AnyTimes()
	tournamentRepo.EXPECT().ListParticipants(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int) ([]domain.TournamentParticipant, error) {
			return participantList(1, 2, 3, 4, 5, 6, 7, 8), nil
		},
	).AnyTimes()
	matchRepo.EXPECT().DeleteByTournament(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	matchRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Match) (*domain.Match, error) {
			return m, nil
		},
	).AnyTimes()
	tournamentRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.TournamentDrawCompleted).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for id := 1; id <= 4; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			count, err := service.GenerateSchedule(context.Background(), id)
			assert.NoError(t, err)
			assert.Equal(t, 4, count)
		}(id)
	}
	wg.Wait()
}

func TestRecordResult(t *testing.T) {
	t.Run("Ranked friendly adjusts both players and clamps at zero", func(t *testing.T) {
		service, _, matchRepo, memberRepo, _, notifier, txManager := NewMock(t)
		allowNotify(notifier)
		passthroughTx(txManager)

		matchRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(&domain.Match{
			ID:           5,
			Team1Player1: intPtr(1),
			Team2Player1: intPtr(2),
			IsRanked:     true,
			Status:       domain.MatchInProgress,
		}, nil)
		matchRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *domain.Match) error {
				assert.Equal(t, domain.MatchFinished, m.Status)
				assert.Equal(t, 21, m.Score1)
				return nil
			},
		)

		// Winner climbs by the delta.
		memberRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Member{ID: 1, RankLevel: 1.0}, nil)
		memberRepo.EXPECT().UpdateRank(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, rank float64) error {
				assert.InDelta(t, 1.1, rank, 1e-9)
				return nil
			},
		)
		// Loser near the floor clamps to zero instead of going negative.
		memberRepo.EXPECT().GetForUpdate(gomock.Any(), 2).Return(&domain.Member{ID: 2, RankLevel: 0.05}, nil)
		memberRepo.EXPECT().UpdateRank(gomock.Any(), 2, float64(0)).Return(nil)

		matchRepo.EXPECT().AddRankHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h *domain.RankHistory) error {
				assert.Equal(t, "Match Win", h.Reason)
				return nil
			},
		)
		matchRepo.EXPECT().AddRankHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h *domain.RankHistory) error {
				assert.Equal(t, "Match Loss", h.Reason)
				assert.InDelta(t, 0.05, h.OldRank, 1e-9)
				assert.Zero(t, h.NewRank)
				return nil
			},
		)

		match, err := service.RecordResult(context.Background(), 5, 21, 15, "", domain.SideTeam1)
		assert.NoError(t, err)
		assert.NotNil(t, match)
		assert.Equal(t, domain.MatchFinished, match.Status)
	})

	t.Run("First result moves the tournament to Ongoing", func(t *testing.T) {
		service, tournamentRepo, matchRepo, _, _, notifier, txManager := NewMock(t)
		allowNotify(notifier)
		passthroughTx(txManager)

		matchRepo.EXPECT().GetForUpdate(gomock.Any(), 6).Return(&domain.Match{
			ID:           6,
			TournamentID: intPtr(4),
			RoundName:    "Round Robin",
			Team1Player1: intPtr(1),
			Team2Player1: intPtr(2),
		}, nil)
		matchRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
			ID:     4,
			Status: domain.TournamentDrawCompleted,
		}, nil)
		tournamentRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.TournamentOngoing).Return(nil)
		matchRepo.EXPECT().CountUnfinished(gomock.Any(), 4).Return(3, nil)

		_, err := service.RecordResult(context.Background(), 6, 11, 9, "", domain.SideTeam1)
		assert.NoError(t, err)
	})

	t.Run("Final pays the prize and finishes the tournament", func(t *testing.T) {
		service, tournamentRepo, matchRepo, _, wallet, notifier, txManager := NewMock(t)
		allowNotify(notifier)
		passthroughTx(txManager)

		matchRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(&domain.Match{
			ID:           7,
			TournamentID: intPtr(4),
			RoundName:    "Final",
			Team1Player1: intPtr(1),
			Team2Player1: intPtr(2),
		}, nil)
		matchRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
			ID:        4,
			Name:      "Summer Open",
			Status:    domain.TournamentOngoing,
			PrizePool: decimal.NewFromInt(1_000_000),
		}, nil)
		// Side two won; the whole pool goes to player 2.
		wallet.EXPECT().Apply(gomock.Any(), 2, gomock.Any(), domain.TxReward, gomock.Any(), "4").DoAndReturn(
			func(_ context.Context, _ int, amount decimal.Decimal, _ domain.TransactionType, _, _ string) (*domain.WalletTransaction, error) {
				assert.True(t, amount.Equal(decimal.NewFromInt(1_000_000)))
				return &domain.WalletTransaction{ID: 60}, nil
			},
		)
		tournamentRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.TournamentFinished).Return(nil)

		_, err := service.RecordResult(context.Background(), 7, 14, 21, "", domain.SideTeam2)
		assert.NoError(t, err)
	})

	t.Run("Last group match finishes the tournament without a payout", func(t *testing.T) {
		service, tournamentRepo, matchRepo, _, _, notifier, txManager := NewMock(t)
		allowNotify(notifier)
		passthroughTx(txManager)

		matchRepo.EXPECT().GetForUpdate(gomock.Any(), 8).Return(&domain.Match{
			ID:           8,
			TournamentID: intPtr(4),
			RoundName:    "Round Robin",
			Team1Player1: intPtr(1),
			Team2Player1: intPtr(2),
		}, nil)
		matchRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		tournamentRepo.EXPECT().GetForUpdate(gomock.Any(), 4).Return(&domain.Tournament{
			ID:     4,
			Status: domain.TournamentOngoing,
		}, nil)
		matchRepo.EXPECT().CountUnfinished(gomock.Any(), 4).Return(0, nil)
		tournamentRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.TournamentFinished).Return(nil)

		_, err := service.RecordResult(context.Background(), 8, 15, 13, "", domain.SideTeam1)
		assert.NoError(t, err)
	})

	t.Run("Unknown match", func(t *testing.T) {
		service, _, matchRepo, _, _, _, txManager := NewMock(t)
		passthroughTx(txManager)

		matchRepo.EXPECT().GetForUpdate(gomock.Any(), 99).Return(nil, nil)

		match, err := service.RecordResult(context.Background(), 99, 0, 0, "", domain.SideNone)
		assert.ErrorIs(t, err, ErrMatchNotFound)
		assert.Nil(t, match)
	})
}
