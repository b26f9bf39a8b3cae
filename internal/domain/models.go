package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string    `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

type Tier string

const (
	TierStandard Tier = "Standard"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierDiamond  Tier = "Diamond"
)

type Member struct {
	ID            int             `db:"id"`
	UserID        string          `db:"user_id"`
	FullName      string          `db:"full_name"`
	JoinDate      time.Time       `db:"join_date"`
	RankLevel     float64         `db:"rank_level"`
	IsActive      bool            `db:"is_active"`
	WalletBalance decimal.Decimal `db:"wallet_balance"`
	Tier          Tier            `db:"tier"`
	TotalSpent    decimal.Decimal `db:"total_spent"`
	AvatarURL     string          `db:"avatar_url"`
}

type Court struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	PricePerHour decimal.Decimal `db:"price_per_hour"`
	IsActive     bool            `db:"is_active"`
}

type BookingStatus string

const (
	BookingHolding   BookingStatus = "Holding"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

type Booking struct {
	ID              int             `db:"id"`
	CourtID         int             `db:"court_id"`
	MemberID        int             `db:"member_id"`
	StartTime       time.Time       `db:"start_time"`
	EndTime         time.Time       `db:"end_time"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	TransactionID   *int            `db:"transaction_id"`
	Status          BookingStatus   `db:"status"`
	HoldUntil       *time.Time      `db:"hold_until"`
	IsRecurring     bool            `db:"is_recurring"`
	RecurrenceRule  string          `db:"recurrence_rule"`
	ParentBookingID *int            `db:"parent_booking_id"`
}

type TransactionType string

const (
	TxDeposit TransactionType = "Deposit"
	TxPayment TransactionType = "Payment"
	TxRefund  TransactionType = "Refund"
	TxReward  TransactionType = "Reward"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "Pending"
	TxCompleted TransactionStatus = "Completed"
)

type WalletTransaction struct {
	ID          int               `db:"id"`
	MemberID    int               `db:"member_id"`
	Amount      decimal.Decimal   `db:"amount"`
	Type        TransactionType   `db:"type"`
	Status      TransactionStatus `db:"status"`
	RelatedID   string            `db:"related_id"`
	Description string            `db:"description"`
	CreatedAt   time.Time         `db:"created_at"`
}

type TournamentFormat string

const (
	FormatRoundRobin TournamentFormat = "RoundRobin"
	FormatKnockout   TournamentFormat = "Knockout"
	FormatHybrid     TournamentFormat = "Hybrid"
)

type TournamentStatus string

const (
	TournamentOpen          TournamentStatus = "Open"
	TournamentRegistering   TournamentStatus = "Registering"
	TournamentDrawCompleted TournamentStatus = "DrawCompleted"
	TournamentOngoing       TournamentStatus = "Ongoing"
	TournamentFinished      TournamentStatus = "Finished"
)

// TournamentSettings is the typed form of the tournament settings blob.
// Absent fields mean "no participant cap" / "single group".
type TournamentSettings struct {
	MaxParticipants *int `json:"max_participants,omitempty"`
	NumGroups       *int `json:"num_groups,omitempty"`
}

type Tournament struct {
	ID        int                `db:"id"`
	Name      string             `db:"name"`
	StartDate time.Time          `db:"start_date"`
	EndDate   time.Time          `db:"end_date"`
	Format    TournamentFormat   `db:"format"`
	EntryFee  decimal.Decimal    `db:"entry_fee"`
	PrizePool decimal.Decimal    `db:"prize_pool"`
	Status    TournamentStatus   `db:"status"`
	Settings  TournamentSettings `db:"settings"`
}

type TournamentParticipant struct {
	ID           int    `db:"id"`
	TournamentID int    `db:"tournament_id"`
	MemberID     int    `db:"member_id"`
	TeamName     string `db:"team_name"`
	FeeSettled   bool   `db:"fee_settled"`
}

type MatchStatus string

const (
	MatchScheduled  MatchStatus = "Scheduled"
	MatchInProgress MatchStatus = "InProgress"
	MatchFinished   MatchStatus = "Finished"
)

type WinningSide string

const (
	SideNone  WinningSide = "None"
	SideTeam1 WinningSide = "Team1"
	SideTeam2 WinningSide = "Team2"
)

type Match struct {
	ID           int         `db:"id"`
	TournamentID *int        `db:"tournament_id"`
	RoundName    string      `db:"round_name"`
	ScheduledAt  time.Time   `db:"scheduled_at"`
	Team1Player1 *int        `db:"team1_player1_id"`
	Team1Player2 *int        `db:"team1_player2_id"`
	Team2Player1 *int        `db:"team2_player1_id"`
	Team2Player2 *int        `db:"team2_player2_id"`
	Score1       int         `db:"score1"`
	Score2       int         `db:"score2"`
	Details      string      `db:"details"`
	WinningSide  WinningSide `db:"winning_side"`
	IsRanked     bool        `db:"is_ranked"`
	Status       MatchStatus `db:"status"`
}

// Team1 returns the present member ids on side one.
func (m *Match) Team1() []int {
	return presentIDs(m.Team1Player1, m.Team1Player2)
}

// Team2 returns the present member ids on side two.
func (m *Match) Team2() []int {
	return presentIDs(m.Team2Player1, m.Team2Player2)
}

// Players returns every distinct member id taking part in the match.
func (m *Match) Players() []int {
	seen := map[int]bool{}
	var out []int
	for _, id := range presentIDs(m.Team1Player1, m.Team1Player2, m.Team2Player1, m.Team2Player2) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func presentIDs(ids ...*int) []int {
	var out []int
	for _, id := range ids {
		if id != nil {
			out = append(out, *id)
		}
	}
	return out
}

type RankHistory struct {
	ID        int       `db:"id"`
	MemberID  int       `db:"member_id"`
	OldRank   float64   `db:"old_rank"`
	NewRank   float64   `db:"new_rank"`
	ChangedAt time.Time `db:"changed_at"`
	Reason    string    `db:"reason"`
	MatchID   *int      `db:"match_id"`
}

type Severity string

const (
	SeverityInfo    Severity = "Info"
	SeveritySuccess Severity = "Success"
	SeverityWarning Severity = "Warning"
)

type Notification struct {
	ID        int       `db:"id"`
	MemberID  int       `db:"member_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Severity  Severity  `db:"severity"`
	Link      string    `db:"link"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}
