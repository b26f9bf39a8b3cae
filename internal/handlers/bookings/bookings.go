package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/dto"
	bookingrepo "github.com/courtclub/backend/internal/repo/booking-repo"
	"github.com/courtclub/backend/internal/service/bookingservice"
	"github.com/courtclub/backend/internal/service/walletservice"
	"github.com/courtclub/backend/pkg/auth"
	"github.com/courtclub/backend/pkg/utils"
)

type Service interface {
	Calendar(ctx context.Context, from, to time.Time) ([]bookingrepo.CalendarEntry, error)
	MyBookings(ctx context.Context, userID string) ([]domain.Booking, error)
	Hold(ctx context.Context, userID string, courtID int, start, end time.Time, holdMinutes int) (*domain.Booking, error)
	Confirm(ctx context.Context, userID string, bookingID int) (*domain.Booking, error)
	Release(ctx context.Context, userID string, bookingID int) error
	Create(ctx context.Context, userID string, courtID int, start, end time.Time) (*domain.Booking, error)
	CreateRecurring(ctx context.Context, userID string, courtID int, start, end time.Time, daysOfWeek []time.Weekday, recurUntil time.Time, frequency string) ([]domain.Booking, decimal.Decimal, error)
	Cancel(ctx context.Context, userID string, bookingID int) (decimal.Decimal, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

func toBookingDTO(b *domain.Booking) dto.BookingResponseDTO {
	return dto.BookingResponseDTO{
		ID:         b.ID,
		CourtID:    b.CourtID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice.String(),
		Status:     string(b.Status),
		HoldUntil:  b.HoldUntil,
	}
}

func respondBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrMemberNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bookingservice.ErrVipOnly):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bookingservice.ErrSlotConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrHoldExpired):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrInvalidInterval),
		errors.Is(err, bookingservice.ErrCourtUnavailable),
		errors.Is(err, bookingservice.ErrTooLate),
		errors.Is(err, bookingservice.ErrNoValidDates):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Calendar godoc
//
//	@Summary		Public booking calendar
//	@Description	List confirmed bookings and live holds in a time range
//	@Tags			Bookings
//	@Produce		json
//	@Param			from	query		string	false	"Range start (RFC3339), default now"
//	@Param			to		query		string	false	"Range end (RFC3339), default from+7d"
//	@Success		200		{array}		dto.CalendarEntryDTO
//	@Failure		400		{object}	utils.Response	"Invalid time range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/calendar [get]
func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid from parameter")
			return
		}
		from = parsed
	}
	to := from.Add(7 * 24 * time.Hour)
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid to parameter")
			return
		}
		to = parsed
	}

	entries, err := h.bookingService.Calendar(r.Context(), from, to)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CalendarEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.CalendarEntryDTO{
			ID:         e.ID,
			CourtID:    e.CourtID,
			CourtName:  e.CourtName,
			MemberName: e.MemberName,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			Status:     string(e.Status),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MyBookings godoc
//
//	@Summary		List own bookings
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BookingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [get]
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	bookings, err := h.bookingService.MyBookings(r.Context(), userID)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	response := make([]dto.BookingResponseDTO, len(bookings))
	for i := range bookings {
		response[i] = toBookingDTO(&bookings[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Hold godoc
//
//	@Summary		Place a short hold on a slot
//	@Description	Reserve a court slot without paying; the hold expires unless confirmed in time
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.HoldRequestDTO	true	"Hold request payload"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Slot already taken"
//	@Failure		422		{object}	utils.Response	"Invalid interval or court"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/hold [post]
func (h *BookingHandler) Hold(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.HoldRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.Hold(r.Context(), userID, req.CourtID, req.StartTime, req.EndTime, req.HoldMinutes)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTO(booking))
}

// Confirm godoc
//
//	@Summary		Confirm a held slot
//	@Description	Pay for a held slot from the wallet and confirm the booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		402	{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		403	{object}	utils.Response	"Not the hold owner"
//	@Failure		409	{object}	utils.Response	"Hold expired or wrong state"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/confirm/{id} [post]
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := h.bookingService.Confirm(r.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTO(booking))
}

// Release godoc
//
//	@Summary		Release a held slot
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Not the hold owner"
//	@Failure		409	{object}	utils.Response	"Not a live hold"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/hold/{id} [delete]
func (h *BookingHandler) Release(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	if err := h.bookingService.Release(r.Context(), userID, bookingID); err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Hold released"})
}

// Create godoc
//
//	@Summary		Book and pay in one step
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request payload"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		409		{object}	utils.Response	"Slot already taken"
//	@Failure		422		{object}	utils.Response	"Invalid interval or court"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.Create(r.Context(), userID, req.CourtID, req.StartTime, req.EndTime)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTO(booking))
}

// CreateRecurring godoc
//
//	@Summary		Book a recurring series
//	@Description	Book the same slot on selected weekdays up to an end date. VIP members only; the whole series is booked and paid as one unit.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecurringBookingRequestDTO	true	"Recurring booking payload"
//	@Success		200		{object}	dto.RecurringBookingResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		403		{object}	utils.Response	"VIP members only"
//	@Failure		409		{object}	utils.Response	"A slot in the series is taken"
//	@Failure		422		{object}	utils.Response	"Invalid series parameters"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/recurring [post]
func (h *BookingHandler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.RecurringBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	days := make([]time.Weekday, len(req.DaysOfWeek))
	for i, d := range req.DaysOfWeek {
		if d < 0 || d > 6 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid day of week")
			return
		}
		days[i] = time.Weekday(d)
	}

	bookings, total, err := h.bookingService.CreateRecurring(r.Context(), userID,
		req.CourtID, req.StartTime, req.EndTime, days, req.RecurUntil, req.Frequency)
	if err != nil {
		respondBookingError(w, err)
		return
	}

	response := dto.RecurringBookingResponseDTO{
		Bookings:   make([]dto.BookingResponseDTO, len(bookings)),
		TotalPrice: total.String(),
	}
	for i := range bookings {
		response.Bookings[i] = toBookingDTO(&bookings[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Cancel godoc
//
//	@Summary		Cancel a confirmed booking
//	@Description	Cancel a booking; a full refund applies only when more than 24 hours remain before start
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.CancelBookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the booking owner"
//	@Failure		409	{object}	utils.Response	"Wrong state"
//	@Failure		422	{object}	utils.Response	"Booking already started"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/cancel/{id} [post]
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	refund, err := h.bookingService.Cancel(r.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CancelBookingResponseDTO{
		Message: "Booking cancelled",
		Refund:  refund.String(),
	})
}
