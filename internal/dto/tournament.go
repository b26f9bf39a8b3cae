package dto

import "time"

type CreateTournamentRequestDTO struct {
	Name            string    `json:"name" example:"Autumn Open"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Format          string    `json:"format" example:"Knockout"`
	EntryFee        string    `json:"entry_fee" example:"100000"`
	PrizePool       string    `json:"prize_pool" example:"1000000"`
	MaxParticipants *int      `json:"max_participants,omitempty" example:"32"`
	NumGroups       *int      `json:"num_groups,omitempty" example:"2"`
}

type TournamentResponseDTO struct {
	ID        int       `json:"id" example:"3"`
	Name      string    `json:"name" example:"Autumn Open"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Format    string    `json:"format" example:"Knockout"`
	EntryFee  string    `json:"entry_fee" example:"100000"`
	PrizePool string    `json:"prize_pool" example:"1000000"`
	Status    string    `json:"status" example:"Open"`
}

type JoinTournamentRequestDTO struct {
	TeamName string `json:"team_name,omitempty" example:"Smashers"`
}

type GenerateScheduleResponseDTO struct {
	Message    string `json:"message"`
	MatchCount int    `json:"match_count" example:"8"`
}

type ParticipantDTO struct {
	MemberID int    `json:"member_id" example:"11"`
	TeamName string `json:"team_name,omitempty"`
}

type MatchResponseDTO struct {
	ID          int       `json:"id" example:"21"`
	RoundName   string    `json:"round_name" example:"Semi Final"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Team1       []int     `json:"team1"`
	Team2       []int     `json:"team2"`
	Score1      int       `json:"score1" example:"21"`
	Score2      int       `json:"score2" example:"15"`
	WinningSide string    `json:"winning_side" example:"Team1"`
	Status      string    `json:"status" example:"Finished"`
}

type TournamentDetailResponseDTO struct {
	Tournament   TournamentResponseDTO `json:"tournament"`
	Participants []ParticipantDTO      `json:"participants"`
	Matches      []MatchResponseDTO    `json:"matches"`
}

type RecordResultRequestDTO struct {
	Score1      int    `json:"score1" example:"21"`
	Score2      int    `json:"score2" example:"15"`
	Details     string `json:"details,omitempty" example:"21-15, 18-21, 21-12"`
	WinningSide string `json:"winning_side" example:"Team1"`
}
