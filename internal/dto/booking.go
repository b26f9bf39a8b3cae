package dto

import "time"

type HoldRequestDTO struct {
	CourtID     int       `json:"court_id" example:"1"`
	StartTime   time.Time `json:"start_time" example:"2026-09-05T18:00:00Z"`
	EndTime     time.Time `json:"end_time" example:"2026-09-05T20:00:00Z"`
	HoldMinutes int       `json:"hold_minutes,omitempty" example:"5"`
}

type CreateBookingRequestDTO struct {
	CourtID   int       `json:"court_id" example:"1"`
	StartTime time.Time `json:"start_time" example:"2026-09-05T18:00:00Z"`
	EndTime   time.Time `json:"end_time" example:"2026-09-05T20:00:00Z"`
}

type RecurringBookingRequestDTO struct {
	CourtID    int       `json:"court_id" example:"1"`
	StartTime  time.Time `json:"start_time" example:"2026-09-05T18:00:00Z"`
	EndTime    time.Time `json:"end_time" example:"2026-09-05T20:00:00Z"`
	DaysOfWeek []int     `json:"days_of_week" example:"1,3,5"`
	RecurUntil time.Time `json:"recur_until" example:"2026-10-05T00:00:00Z"`
	Frequency  string    `json:"frequency" example:"Weekly"`
}

type BookingResponseDTO struct {
	ID         int        `json:"id" example:"42"`
	CourtID    int        `json:"court_id" example:"1"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    time.Time  `json:"end_time"`
	TotalPrice string     `json:"total_price" example:"100000"`
	Status     string     `json:"status" example:"Confirmed"`
	HoldUntil  *time.Time `json:"hold_until,omitempty"`
}

type RecurringBookingResponseDTO struct {
	Bookings   []BookingResponseDTO `json:"bookings"`
	TotalPrice string               `json:"total_price" example:"800000"`
}

type CancelBookingResponseDTO struct {
	Message string `json:"message"`
	Refund  string `json:"refund" example:"100000"`
}

type CalendarEntryDTO struct {
	ID         int       `json:"id" example:"42"`
	CourtID    int       `json:"court_id" example:"1"`
	CourtName  string    `json:"court_name" example:"Court 1"`
	MemberName string    `json:"member_name" example:"Jane Doe"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status" example:"Confirmed"`
}
