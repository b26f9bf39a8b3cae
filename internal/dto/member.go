package dto

import "time"

type ProfileResponseDTO struct {
	MemberID      int     `json:"member_id" example:"11"`
	FullName      string  `json:"full_name" example:"Jane Doe"`
	RankLevel     float64 `json:"rank_level" example:"2.5"`
	Tier          string  `json:"tier" example:"Gold"`
	WalletBalance string  `json:"wallet_balance" example:"1500000"`
	TotalSpent    string  `json:"total_spent" example:"5200000"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
}

type UpdateAvatarRequestDTO struct {
	AvatarURL string `json:"avatar_url" example:"https://cdn.example.com/a/11.png"`
}

type RankHistoryResponseDTO struct {
	OldRank   float64   `json:"old_rank" example:"2.4"`
	NewRank   float64   `json:"new_rank" example:"2.5"`
	Reason    string    `json:"reason" example:"Match Win"`
	ChangedAt time.Time `json:"changed_at"`
}

type NotificationResponseDTO struct {
	ID        int       `json:"id" example:"5"`
	Title     string    `json:"title" example:"Booking confirmed"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity" example:"Success"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
