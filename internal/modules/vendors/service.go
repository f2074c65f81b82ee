package vendors

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"aeronaa/internal/domain"
)

var (
	ErrValidation    = errors.New("invalid vendor data")
	ErrNotFound      = errors.New("vendor not found")
	ErrAlreadyExists = errors.New("vendor already registered for this account")
)

type VendorRepository interface {
	Create(ctx context.Context, v *domain.Vendor) error
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Vendor, error)
	List(ctx context.Context, limit, offset int) ([]domain.Vendor, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VendorStatus, reason string) error
}

type Service struct {
	vendors VendorRepository
}

func NewService(vendors VendorRepository) *Service {
	return &Service{vendors: vendors}
}

// Register creates the vendor profile for a vendor-role account. One vendor
// per owner.
func (s *Service) Register(ctx context.Context, ownerID int64, req RegisterVendorRequest) (*domain.Vendor, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	if _, err := s.vendors.GetByOwnerID(ctx, ownerID); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v := &domain.Vendor{
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(req.Name),
		City:          strings.TrimSpace(req.City),
		Country:       strings.TrimSpace(req.Country),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Status:        domain.VendorPending,
	}
	if err := s.vendors.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	v, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Vendor, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.vendors.List(ctx, limit, offset)
}

// Verify marks a pending vendor as verified.
func (s *Service) Verify(ctx context.Context, vendorID int64) (*domain.Vendor, error) {
	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		return nil, ErrNotFound
	}
	if err := s.vendors.UpdateStatus(ctx, vendorID, domain.VendorVerified, ""); err != nil {
		return nil, err
	}
	return s.vendors.GetByID(ctx, vendorID)
}

// Reject marks a vendor as rejected. A reason is mandatory so the vendor
// knows what to fix.
func (s *Service) Reject(ctx context.Context, vendorID int64, reason string) (*domain.Vendor, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}
	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		return nil, ErrNotFound
	}
	if err := s.vendors.UpdateStatus(ctx, vendorID, domain.VendorRejected, strings.TrimSpace(reason)); err != nil {
		return nil, err
	}
	return s.vendors.GetByID(ctx, vendorID)
}
