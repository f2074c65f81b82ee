package domain

import "time"

type VendorStatus string

const (
	VendorPending  VendorStatus = "pending"
	VendorVerified VendorStatus = "verified"
	VendorRejected VendorStatus = "rejected"
	VendorBlocked  VendorStatus = "blocked"
)

// Vendor is a hotel (or other property) owner whose bookings the platform
// collects payments for and settles against.
type Vendor struct {
	ID             int64        `json:"id"`
	OwnerID        int64        `json:"owner_id"`
	Name           string       `json:"name" validate:"required"`
	City           string       `json:"city,omitempty"`
	Country        string       `json:"country,omitempty"`
	ContactPerson  string       `json:"contact_person,omitempty"`
	Status         VendorStatus `json:"status"`
	RejectedReason string       `json:"rejected_reason,omitempty"`
	VerifiedAt     *time.Time   `json:"verified_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
