package dto

import "time"

type DepositRequestDTO struct {
	Amount      string `json:"amount" example:"500000"`
	Description string `json:"description" example:"Bank transfer ref 1234"`
}

type TransactionResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	Amount      string    `json:"amount" example:"500000"`
	Type        string    `json:"type" example:"Deposit"`
	Status      string    `json:"status" example:"Pending"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ApproveDepositResponseDTO struct {
	Transaction TransactionResponseDTO `json:"transaction"`
	NewBalance  string                 `json:"new_balance" example:"1500000"`
}
