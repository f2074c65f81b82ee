package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aeronaa/internal/domain"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	stored := *u
	f.byEmail[u.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeTokenIssuer{})

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Amir@Example.com",
		Password: "secret-password",
		Name:     "Amir",
	}, domain.RoleClient)
	require.NoError(t, err)

	assert.Equal(t, "amir@example.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must not leak out of the service")

	stored := repo.byEmail["amir@example.com"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret-password", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), fakeTokenIssuer{})

	req := RegisterRequest{Email: "a@b.com", Password: "secret-password", Name: "A"}
	_, err := svc.Register(context.Background(), req, domain.RoleClient)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req, domain.RoleClient)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), fakeTokenIssuer{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "short",
		Name:     "A",
	}, domain.RoleClient)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeTokenIssuer{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "secret-password",
		Name:     "A",
	}, domain.RoleVendor)
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "A@b.com", Password: "secret-password"})
	require.NoError(t, err)

	assert.Equal(t, "token", result.AccessToken)
	assert.Equal(t, domain.RoleVendor, result.User.Role)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), fakeTokenIssuer{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "secret-password",
		Name:     "A",
	}, domain.RoleClient)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), fakeTokenIssuer{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@b.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
