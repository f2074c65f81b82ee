package booking

import "time"

type CreateBookingRequest struct {
	VendorID     *int64    `json:"vendor_id"`
	UserID       int64     `json:"-"`
	Amount       float64   `json:"amount" binding:"gte=0"`
	PaymentType  string    `json:"payment_type"`
	CheckInDate  time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate time.Time `json:"check_out_date" binding:"required"`
	Notes        string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid refunded"`
}

type IngestRequest struct {
	Bookings []UpstreamBooking `json:"bookings" binding:"required"`
}

type ListResponse struct {
	Bookings interface{} `json:"bookings"`
	Total    int64       `json:"total"`
	Limit    int         `json:"limit"`
	Offset   int         `json:"offset"`
}
