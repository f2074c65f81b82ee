package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"aeronaa/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	ReferenceCode      string     `gorm:"column:reference_code;uniqueIndex"`
	VendorID           *int64     `gorm:"column:vendor_id;index"`
	UserID             int64      `gorm:"column:user_id;index"`
	Amount             float64    `gorm:"column:amount"`
	PaymentType        string     `gorm:"column:payment_type"`
	PaymentStatus      string     `gorm:"column:payment_status"`
	CheckInDate        time.Time  `gorm:"column:check_in_date;index"`
	CheckOutDate       time.Time  `gorm:"column:check_out_date"`
	IsActive           bool       `gorm:"column:is_active"`
	Notes              *string    `gorm:"column:notes"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		ReferenceCode:      m.ReferenceCode,
		VendorID:           m.VendorID,
		UserID:             m.UserID,
		Amount:             m.Amount,
		PaymentType:        domain.PaymentType(m.PaymentType),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		CheckInDate:        m.CheckInDate,
		CheckOutDate:       m.CheckOutDate,
		IsActive:           m.IsActive,
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		ReferenceCode:      b.ReferenceCode,
		VendorID:           b.VendorID,
		UserID:             b.UserID,
		Amount:             b.Amount,
		PaymentType:        string(b.PaymentType),
		PaymentStatus:      string(b.PaymentStatus),
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		IsActive:           b.IsActive,
		Notes:              notes,
		CancellationReason: reason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, ref string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("reference_code = ?", ref).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	return toDomainBookings(models), total, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	return toDomainBookings(models), total, nil
}

func (r *BookingRepository) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("check_in_date DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

// ListAll loads every booking, cancelled ones included; the aggregator
// filters those itself so cancellation exclusion lives in one place.
func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Order("check_in_date DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":           false,
			"cancellation_reason": reason,
			"cancelled_at":        now,
			"updated_at":          now,
		}).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	if err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": string(status),
			"updated_at":     time.Now().UTC(),
		}).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func toDomainBookings(models []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
