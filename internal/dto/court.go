package dto

type CourtRequestDTO struct {
	Name         string `json:"name" example:"Court 1"`
	PricePerHour string `json:"price_per_hour" example:"50000"`
	IsActive     bool   `json:"is_active" example:"true"`
}

type CourtResponseDTO struct {
	ID           int    `json:"id" example:"1"`
	Name         string `json:"name" example:"Court 1"`
	PricePerHour string `json:"price_per_hour" example:"50000"`
	IsActive     bool   `json:"is_active" example:"true"`
}
