package booking

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"aeronaa/internal/domain"
)

type Service struct {
	bookings BookingRepository
	vendors  VendorReader
	events   EventSink
}

func NewService(bookings BookingRepository, vendors VendorReader, events EventSink) *Service {
	return &Service{
		bookings: bookings,
		vendors:  vendors,
		events:   events,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, ErrValidation
	}
	if req.Amount < 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, ErrValidation
	}
	if req.VendorID != nil {
		if _, err := s.vendors.GetByID(ctx, *req.VendorID); err != nil {
			return nil, ErrValidation
		}
	}

	b := &domain.Booking{
		ReferenceCode: uuid.NewString(),
		VendorID:      req.VendorID,
		UserID:        req.UserID,
		Amount:        math.Round(req.Amount*100) / 100,
		PaymentType:   normalizePaymentType(req.PaymentType),
		PaymentStatus: domain.PaymentUnpaid,
		CheckInDate:   req.CheckInDate.UTC(),
		CheckOutDate:  req.CheckOutDate.UTC(),
		IsActive:      true,
		Notes:         strings.TrimSpace(req.Notes),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrDuplicateReference
		}
		return nil, err
	}

	if s.events != nil {
		s.events.BookingCreated(b)
	}

	return b, nil
}

// Ingest normalizes a provider batch and stores each record. Records that
// collide on reference code are skipped rather than failing the batch.
func (s *Service) Ingest(ctx context.Context, raw []UpstreamBooking) (stored, skipped int, err error) {
	for _, b := range NormalizeBookings(raw) {
		b := b
		if b.ReferenceCode == "" {
			b.ReferenceCode = uuid.NewString()
		}
		if cerr := s.bookings.Create(ctx, &b); cerr != nil {
			if pgErr, ok := cerr.(*pgconn.PgError); ok && pgErr.Code == "23505" {
				skipped++
				continue
			}
			return stored, skipped, cerr
		}
		stored++
	}
	return stored, skipped, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	limit, offset = clampPage(limit, offset)
	return s.bookings.List(ctx, limit, offset)
}

func (s *Service) ListMine(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error) {
	limit, offset = clampPage(limit, offset)
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

// CancelBooking deactivates a booking with a mandatory reason. Cancelled
// bookings stop counting towards every settlement total.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID int64, actorRole, reason string) (*domain.Booking, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}
	if actorRole != string(domain.RoleAdmin) && b.UserID != actorID {
		return nil, ErrForbidden
	}
	if !b.IsActive {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, strings.TrimSpace(reason)); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.BookingCancelled(b, reason)
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// UpdatePaymentStatus transitions a booking's payment status. Unpaid moves
// to paid, paid moves to refunded; every other transition is rejected.
func (s *Service) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}

	switch {
	case b.PaymentStatus == domain.PaymentUnpaid && status == domain.PaymentPaid:
	case b.PaymentStatus == domain.PaymentPaid && status == domain.PaymentRefunded:
	default:
		return nil, ErrInvalidStatusTransition
	}

	return s.bookings.UpdatePaymentStatus(ctx, bookingID, status)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
