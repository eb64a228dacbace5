package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staybook/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockJWT struct{ mock.Mock }

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "guest@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(users, new(mockJWT))

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "  Guest@Example.com ",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "guest@example.com", user.Email)
	assert.Equal(t, domain.RoleGuest, user.Role)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("ExistsByEmail", mock.Anything, "guest@example.com").Return(true, nil)
	service := NewService(users, new(mockJWT))

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "guest@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	assert.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID: 7, Email: "guest@example.com", PasswordHash: string(hash), Role: domain.RoleGuest,
	}, nil)
	jwt := new(mockJWT)
	jwt.On("GenerateToken", int64(7), "guest").Return("token-abc", nil)
	service := NewService(users, jwt)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "guest@example.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	service := NewService(users, new(mockJWT))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	assert.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID: 7, Email: "guest@example.com", PasswordHash: string(hash),
	}, nil)
	service := NewService(users, new(mockJWT))

	_, _, err = service.Login(context.Background(), LoginRequest{
		Email:    "guest@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser_StripsHash(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Email: "guest@example.com", PasswordHash: "hash", Role: domain.RoleOwner,
	}, nil)
	service := NewService(users, new(mockJWT))

	user, err := service.CurrentUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, domain.RoleOwner, user.Role)
}
