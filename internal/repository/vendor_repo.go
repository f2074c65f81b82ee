package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"aeronaa/internal/domain"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

type vendorModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	OwnerID        int64      `gorm:"column:owner_id;index"`
	Name           string     `gorm:"column:name"`
	City           string     `gorm:"column:city"`
	Country        string     `gorm:"column:country"`
	ContactPerson  string     `gorm:"column:contact_person"`
	Status         string     `gorm:"column:status"`
	RejectedReason *string    `gorm:"column:rejected_reason"`
	VerifiedAt     *time.Time `gorm:"column:verified_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (vendorModel) TableName() string { return "vendors" }

func toDomainVendor(m vendorModel) *domain.Vendor {
	var reason string
	if m.RejectedReason != nil {
		reason = *m.RejectedReason
	}

	return &domain.Vendor{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Name:           m.Name,
		City:           m.City,
		Country:        m.Country,
		ContactPerson:  m.ContactPerson,
		Status:         domain.VendorStatus(m.Status),
		RejectedReason: reason,
		VerifiedAt:     m.VerifiedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toVendorModel(v *domain.Vendor) vendorModel {
	var reason *string
	if v.RejectedReason != "" {
		r := v.RejectedReason
		reason = &r
	}

	return vendorModel{
		ID:             v.ID,
		OwnerID:        v.OwnerID,
		Name:           v.Name,
		City:           v.City,
		Country:        v.Country,
		ContactPerson:  v.ContactPerson,
		Status:         string(v.Status),
		RejectedReason: reason,
		VerifiedAt:     v.VerifiedAt,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	m := toVendorModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVendor(m)
	return nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	var m vendorModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVendor(m), nil
}

func (r *VendorRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Vendor, error) {
	var m vendorModel
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVendor(m), nil
}

func (r *VendorRepository) List(ctx context.Context, limit, offset int) ([]domain.Vendor, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&vendorModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []vendorModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Vendor, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainVendor(m))
	}
	return out, total, nil
}

func (r *VendorRepository) UpdateStatus(ctx context.Context, id int64, status domain.VendorStatus, reason string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	if status == domain.VendorVerified {
		updates["verified_at"] = time.Now().UTC()
	}
	if reason != "" {
		updates["rejected_reason"] = reason
	}
	return r.db.WithContext(ctx).Model(&vendorModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}
