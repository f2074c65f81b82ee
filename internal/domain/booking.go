package domain

import "time"

type PaymentType string

const (
	PaymentOnline     PaymentType = "online"
	PaymentPayAtHotel PaymentType = "payathotel"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            int64         `json:"id"`
	ReferenceCode string        `json:"reference_code"`
	VendorID      *int64        `json:"vendor_id,omitempty"`
	UserID        int64         `json:"user_id" validate:"required"`
	Amount        float64       `json:"amount" validate:"gte=0"`
	PaymentType   PaymentType   `json:"payment_type"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CheckInDate   time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time     `json:"check_out_date" validate:"required"`
	IsActive      bool          `json:"is_active"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty" gorm:"type:text"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vendor *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

// PlatformBooking reports whether the booking came through an aggregated
// search provider rather than a registered vendor.
func (b *Booking) PlatformBooking() bool {
	return b.VendorID == nil
}
