package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	bookingrepo "github.com/courtclub/backend/internal/repo/booking-repo"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListBlocking(ctx context.Context, courtID int, now time.Time) ([]domain.Booking, error)
	Calendar(ctx context.Context, from, to, now time.Time) ([]bookingrepo.CalendarEntry, error)
	FindByMember(ctx context.Context, memberID int) ([]domain.Booking, error)
}

type CourtRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Court, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Court, error)
}

type MemberRepo interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Member, error)
}

type Wallet interface {
	Apply(ctx context.Context, memberID int, amount decimal.Decimal, txType domain.TransactionType, description, relatedID string) (*domain.WalletTransaction, error)
	LinkTransaction(ctx context.Context, transactionID, relatedID int) error
}

type TierCalc interface {
	IsVip(tier domain.Tier) bool
}

type Notifier interface {
	NotifyMember(ctx context.Context, memberID int, message string, severity domain.Severity, title, link string)
	Broadcast(ctx context.Context, event string, payload any)
}

var (
	ErrInvalidInterval  = errors.New("end time must be after start time and start must not be in the past")
	ErrCourtUnavailable = errors.New("court not available")
	ErrSlotConflict     = errors.New("slot is already booked or held")
	ErrNotFound         = errors.New("booking not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrForbidden        = errors.New("booking does not belong to member")
	ErrInvalidState     = errors.New("booking is not in the required status")
	ErrHoldExpired      = errors.New("hold expired")
	ErrTooLate          = errors.New("cannot cancel past bookings")
	ErrVipOnly          = errors.New("recurring bookings are for VIP members only")
	ErrNoValidDates     = errors.New("no valid dates found in range")
)

const defaultHoldMinutes = 5

type Service struct {
	bookingRepo BookingRepo
	courtRepo   CourtRepo
	memberRepo  MemberRepo
	wallet      Wallet
	tiers       TierCalc
	notifier    Notifier
	txManager   pg.TXManager
}

func New(bookingRepo BookingRepo, courtRepo CourtRepo, memberRepo MemberRepo, wallet Wallet, tiers TierCalc, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		memberRepo:  memberRepo,
		wallet:      wallet,
		tiers:       tiers,
		notifier:    notifier,
		txManager:   txManager,
	}
}

// overlaps reports whether [start, end) intersects the booking's interval.
func overlaps(start, end time.Time, b domain.Booking) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

func slotPrice(start, end time.Time, pricePerHour decimal.Decimal) decimal.Decimal {
	hours := decimal.NewFromFloat(end.Sub(start).Hours())
	return pricePerHour.Mul(hours).Round(2)
}

func (s *Service) member(ctx context.Context, userID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// checkSlotFree runs the conflict predicate against every booking that can
// still block the court. Must be called with the court row locked so the
// check and the subsequent insert are one atomic unit.
func (s *Service) checkSlotFree(ctx context.Context, courtID int, start, end, now time.Time) error {
	blocking, err := s.bookingRepo.ListBlocking(ctx, courtID, now)
	if err != nil {
		return err
	}
	for _, b := range blocking {
		if overlaps(start, end, b) {
			return ErrSlotConflict
		}
	}
	return nil
}

func (s *Service) Calendar(ctx context.Context, from, to time.Time) ([]bookingrepo.CalendarEntry, error) {
	return s.bookingRepo.Calendar(ctx, from, to, time.Now())
}

func (s *Service) MyBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	member, err := s.member(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.FindByMember(ctx, member.ID)
}

// Hold blocks a court slot for a few minutes without charging. The slot stays
// reserved until the hold is confirmed, released, or reaped after expiry.
func (s *Service) Hold(ctx context.Context, userID string, courtID int, start, end time.Time, holdMinutes int) (*domain.Booking, error) {
	member, err := s.member(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !start.Before(end) || start.Before(now) {
		return nil, ErrInvalidInterval
	}
	if holdMinutes < 1 {
		holdMinutes = defaultHoldMinutes
	}

	var created *domain.Booking
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		court, err := s.courtRepo.GetForUpdate(ctx, courtID)
		if err != nil {
			return err
		}
		if court == nil || !court.IsActive {
			return ErrCourtUnavailable
		}
		if err := s.checkSlotFree(ctx, courtID, start, end, now); err != nil {
			return err
		}

		holdUntil := now.Add(time.Duration(holdMinutes) * time.Minute)
		created, err = s.bookingRepo.Create(ctx, &domain.Booking{
			CourtID:    courtID,
			MemberID:   member.ID,
			StartTime:  start,
			EndTime:    end,
			TotalPrice: slotPrice(start, end, court.PricePerHour),
			Status:     domain.BookingHolding,
			HoldUntil:  &holdUntil,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Broadcast(ctx, "calendar.updated", map[string]any{"court_id": courtID})
	return created, nil
}

// Confirm charges the member for a held slot and flips it to Confirmed. The
// debit, the transaction link and the status change commit together; any
// failure rolls all of them back. A confirm racing the hold reaper resolves
// on the booking row lock: whichever commits first wins.
func (s *Service) Confirm(ctx context.Context, userID string, bookingID int) (*domain.Booking, error) {
	member, err := s.member(ctx, userID)
	if err != nil {
		return nil, err
	}

	var confirmed *domain.Booking
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrNotFound
		}
		if booking.MemberID != member.ID {
			return ErrForbidden
		}
		if booking.Status != domain.BookingHolding {
			return ErrInvalidState
		}
		if booking.HoldUntil != nil && booking.HoldUntil.Before(time.Now()) {
			return ErrHoldExpired
		}

		if !booking.TotalPrice.IsPositive() {
			court, err := s.courtRepo.FindByID(ctx, booking.CourtID)
			if err != nil {
				return err
			}
			if court != nil {
				booking.TotalPrice = slotPrice(booking.StartTime, booking.EndTime, court.PricePerHour)
			}
		}

		tx, err := s.wallet.Apply(ctx, member.ID, booking.TotalPrice.Neg(), domain.TxPayment,
			fmt.Sprintf("Payment for booking %d (%s)", booking.ID, booking.StartTime.Format("01/02 15:04")),
			strconv.Itoa(booking.ID))
		if err != nil {
			return err
		}

		booking.TransactionID = &tx.ID
		booking.Status = domain.BookingConfirmed
		booking.HoldUntil = nil
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return err
		}
		confirmed = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyMember(ctx, member.ID,
		fmt.Sprintf("Booking confirmed for %s", confirmed.StartTime.Format("02/01 15:04")),
		domain.SeveritySuccess, "Booking confirmed", "/booking")
	s.notifier.Broadcast(ctx, "calendar.updated", map[string]any{"court_id": confirmed.CourtID})
	return confirmed, nil
}

// Release cancels a hold without charging.
func (s *Service) Release(ctx context.Context, userID string, bookingID int) error {
	member, err := s.member(ctx, userID)
	if err != nil {
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrNotFound
		}
		if booking.MemberID != member.ID {
			return ErrForbidden
		}
		if booking.Status != domain.BookingHolding {
			return ErrInvalidState
		}

		booking.Status = domain.BookingCancelled
		booking.HoldUntil = nil
		return s.bookingRepo.Update(ctx, booking)
	})
	if err != nil {
		return err
	}

	s.notifier.Broadcast(ctx, "calendar.updated", nil)
	return nil
}

// Create books and charges in a single step, skipping the hold phase.
func (s *Service) Create(ctx context.Context, userID string, courtID int, start, end time.Time) (*domain.Booking, error) {
	member, err := s.member(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !start.Before(end) || start.Before(now) {
		return nil, ErrInvalidInterval
	}

	var created *domain.Booking
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		court, err := s.courtRepo.GetForUpdate(ctx, courtID)
		if err != nil {
			return err
		}
		if court == nil || !court.IsActive {
			return ErrCourtUnavailable
		}
		if err := s.checkSlotFree(ctx, courtID, start, end, now); err != nil {
			return err
		}

		price := slotPrice(start, end, court.PricePerHour)
		tx, err := s.wallet.Apply(ctx, member.ID, price.Neg(), domain.TxPayment,
			fmt.Sprintf("Payment for booking %s (%s)", court.Name, start.Format("01/02 15:04")), "")
		if err != nil {
			return err
		}

		created, err = s.bookingRepo.Create(ctx, &domain.Booking{
			CourtID:       courtID,
			MemberID:      member.ID,
			StartTime:     start,
			EndTime:       end,
			TotalPrice:    price,
			TransactionID: &tx.ID,
			Status:        domain.BookingConfirmed,
		})
		if err != nil {
			return err
		}
		return s.wallet.LinkTransaction(ctx, tx.ID, created.ID)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyMember(ctx, member.ID,
		fmt.Sprintf("Booking confirmed for %s", created.StartTime.Format("02/01 15:04")),
		domain.SeveritySuccess, "Booking confirmed", "/booking")
	s.notifier.Broadcast(ctx, "calendar.updated", map[string]any{"court_id": courtID})
	return created, nil
}

// dateOf is t's calendar date at midnight in loc.
func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// expandDates walks one day at a time from start's date to until's date
// inclusive, keeping the dates whose weekday is wanted. The returned times
// keep start's time of day. Dates are compared in start's location, so a
// series in a non-UTC zone ends on the local calendar day the caller named.
func expandDates(start time.Time, until time.Time, daysOfWeek []time.Weekday) []time.Time {
	wanted := map[time.Weekday]bool{}
	for _, d := range daysOfWeek {
		wanted[d] = true
	}

	var dates []time.Time
	loc := start.Location()
	untilDate := dateOf(until, loc)
	for current := start; !dateOf(current, loc).After(untilDate); current = current.AddDate(0, 0, 1) {
		if wanted[current.Weekday()] {
			dates = append(dates, current)
		}
	}
	return dates
}

// CreateRecurring books a weekly series in one charge. Every generated date
// is conflict-checked before anything is created: one conflicting date fails
// the whole request with no side effects.
func (s *Service) CreateRecurring(ctx context.Context, userID string, courtID int, start, end time.Time, daysOfWeek []time.Weekday, recurUntil time.Time, frequency string) ([]domain.Booking, decimal.Decimal, error) {
	member, err := s.member(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if !s.tiers.IsVip(member.Tier) {
		return nil, decimal.Zero, ErrVipOnly
	}

	now := time.Now()
	if !start.Before(end) || start.Before(now) {
		return nil, decimal.Zero, ErrInvalidInterval
	}

	dates := expandDates(start, recurUntil, daysOfWeek)
	if len(dates) == 0 {
		return nil, decimal.Zero, ErrNoValidDates
	}

	duration := end.Sub(start)
	var (
		series []domain.Booking
		total  decimal.Decimal
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		court, err := s.courtRepo.GetForUpdate(ctx, courtID)
		if err != nil {
			return err
		}
		if court == nil || !court.IsActive {
			return ErrCourtUnavailable
		}

		// All-or-nothing pre-validation across the whole series.
		for _, date := range dates {
			if err := s.checkSlotFree(ctx, courtID, date, date.Add(duration), now); err != nil {
				return err
			}
		}

		perSlot := slotPrice(start, end, court.PricePerHour)
		total = perSlot.Mul(decimal.NewFromInt(int64(len(dates))))

		tx, err := s.wallet.Apply(ctx, member.ID, total.Neg(), domain.TxPayment,
			fmt.Sprintf("Recurring booking %s (%d slots)", court.Name, len(dates)), "")
		if err != nil {
			return err
		}

		rule := frequency + ";" + joinWeekdays(daysOfWeek)
		var parentID *int
		for _, date := range dates {
			booking, err := s.bookingRepo.Create(ctx, &domain.Booking{
				CourtID:         courtID,
				MemberID:        member.ID,
				StartTime:       date,
				EndTime:         date.Add(duration),
				TotalPrice:      perSlot,
				TransactionID:   &tx.ID,
				Status:          domain.BookingConfirmed,
				IsRecurring:     true,
				RecurrenceRule:  rule,
				ParentBookingID: parentID,
			})
			if err != nil {
				return err
			}
			if parentID == nil {
				// The first booking anchors the series and references itself.
				parentID = &booking.ID
				booking.ParentBookingID = parentID
				if err := s.bookingRepo.Update(ctx, booking); err != nil {
					return err
				}
			}
			series = append(series, *booking)
		}

		return s.wallet.LinkTransaction(ctx, tx.ID, *parentID)
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	s.notifier.NotifyMember(ctx, member.ID,
		fmt.Sprintf("Recurring booking confirmed (%d slots)", len(series)),
		domain.SeveritySuccess, "Recurring booking confirmed", "/booking")
	s.notifier.Broadcast(ctx, "calendar.updated", map[string]any{"court_id": courtID})
	return series, total, nil
}

func joinWeekdays(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}

// Cancel flips a booking to Cancelled. More than 24 hours before start the
// full stored price is refunded; after that nothing is. The refund and the
// status change commit as one unit.
func (s *Service) Cancel(ctx context.Context, userID string, bookingID int) (decimal.Decimal, error) {
	member, err := s.member(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	refund := decimal.Zero
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrNotFound
		}
		if booking.MemberID != member.ID {
			return ErrForbidden
		}
		if booking.Status == domain.BookingCancelled {
			return ErrInvalidState
		}
		now := time.Now()
		if booking.StartTime.Before(now) {
			return ErrTooLate
		}

		if booking.StartTime.Sub(now) > 24*time.Hour {
			refund = booking.TotalPrice
		}

		booking.Status = domain.BookingCancelled
		booking.HoldUntil = nil
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return err
		}

		if refund.IsPositive() {
			_, err = s.wallet.Apply(ctx, member.ID, refund, domain.TxRefund,
				fmt.Sprintf("Refund for booking %d", booking.ID), strconv.Itoa(booking.ID))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	if refund.IsPositive() {
		s.notifier.NotifyMember(ctx, member.ID,
			fmt.Sprintf("Booking cancelled, refunded %s", refund.StringFixed(0)),
			domain.SeveritySuccess, "Booking cancelled", "/booking")
	} else {
		s.notifier.NotifyMember(ctx, member.ID, "Booking cancelled.",
			domain.SeverityInfo, "Booking cancelled", "/booking")
	}
	s.notifier.Broadcast(ctx, "calendar.updated", nil)

	zap.L().Info("booking cancelled",
		zap.Int("booking_id", bookingID),
		zap.String("refund", refund.String()))
	return refund, nil
}
