package vendors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aeronaa/internal/domain"
)

type fakeVendorRepo struct {
	byID    map[int64]*domain.Vendor
	byOwner map[int64]*domain.Vendor
	nextID  int64
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{
		byID:    make(map[int64]*domain.Vendor),
		byOwner: make(map[int64]*domain.Vendor),
		nextID:  1,
	}
}

func (f *fakeVendorRepo) Create(ctx context.Context, v *domain.Vendor) error {
	v.ID = f.nextID
	f.nextID++
	stored := *v
	f.byID[v.ID] = &stored
	f.byOwner[v.OwnerID] = &stored
	return nil
}

func (f *fakeVendorRepo) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *v
	return &out, nil
}

func (f *fakeVendorRepo) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Vendor, error) {
	v, ok := f.byOwner[ownerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *v
	return &out, nil
}

func (f *fakeVendorRepo) List(ctx context.Context, limit, offset int) ([]domain.Vendor, int64, error) {
	return nil, 0, nil
}

func (f *fakeVendorRepo) UpdateStatus(ctx context.Context, id int64, status domain.VendorStatus, reason string) error {
	v, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Status = status
	v.RejectedReason = reason
	return nil
}

func TestRegister_StartsPending(t *testing.T) {
	svc := NewService(newFakeVendorRepo())

	v, err := svc.Register(context.Background(), 10, RegisterVendorRequest{Name: "Makkah Towers"})
	require.NoError(t, err)

	assert.Equal(t, domain.VendorPending, v.Status)
	assert.Equal(t, int64(10), v.OwnerID)
}

func TestRegister_OneVendorPerOwner(t *testing.T) {
	svc := NewService(newFakeVendorRepo())

	_, err := svc.Register(context.Background(), 10, RegisterVendorRequest{Name: "First"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 10, RegisterVendorRequest{Name: "Second"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRegister_RequiresName(t *testing.T) {
	svc := NewService(newFakeVendorRepo())

	_, err := svc.Register(context.Background(), 10, RegisterVendorRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerify(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), 10, RegisterVendorRequest{Name: "Hotel"})
	require.NoError(t, err)

	v, err := svc.Verify(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VendorVerified, v.Status)
}

func TestVerify_UnknownVendor(t *testing.T) {
	svc := NewService(newFakeVendorRepo())

	_, err := svc.Verify(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReject_RequiresReason(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), 10, RegisterVendorRequest{Name: "Hotel"})
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), created.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	v, err := svc.Reject(context.Background(), created.ID, "incomplete documents")
	require.NoError(t, err)
	assert.Equal(t, domain.VendorRejected, v.Status)
	assert.Equal(t, "incomplete documents", v.RejectedReason)
}
