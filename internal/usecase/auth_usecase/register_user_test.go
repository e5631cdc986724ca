package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	"app/internal/repository"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepositoryMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// 時刻を固定するClock
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// ハッシュ化を固定文字列で置き換える
type hasherStub struct {
	err error
}

func (h hasherStub) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plain, nil
}

func TestRegisterUser_Success(t *testing.T) {
	userRepo := new(UserRepositoryMock)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	u := NewRegisterUserUsecase(userRepo, hasherStub{}, fixedClock{now: now})

	userRepo.On("FindByEmail", mock.Anything, "staff@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
		return user.Email == "staff@example.com" &&
			user.PasswordHash == "hashed:verylongpassword" &&
			user.Role == model.RoleStaff &&
			user.IsActive &&
			user.CreatedAt.Equal(now)
	})).Return(nil)

	out, err := u.Execute(context.Background(), RegisterUserInput{
		Email:    " staff@example.com ",
		Password: "verylongpassword",
	})

	assert.NoError(t, err)
	assert.Equal(t, "staff@example.com", out.User.Email)
	assert.Equal(t, model.RoleStaff, out.User.Role)
	userRepo.AssertExpectations(t)
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	u := NewRegisterUserUsecase(new(UserRepositoryMock), hasherStub{}, fixedClock{now: time.Now()})

	_, err := u.Execute(context.Background(), RegisterUserInput{
		Email:    "not-an-email",
		Password: "verylongpassword",
	})

	assert.ErrorIs(t, err, ErrInvalidEmailFormat)
}

func TestRegisterUser_PasswordTooShort(t *testing.T) {
	u := NewRegisterUserUsecase(new(UserRepositoryMock), hasherStub{}, fixedClock{now: time.Now()})

	_, err := u.Execute(context.Background(), RegisterUserInput{
		Email:    "staff@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterUser_EmailAlreadyExists(t *testing.T) {
	userRepo := new(UserRepositoryMock)
	u := NewRegisterUserUsecase(userRepo, hasherStub{}, fixedClock{now: time.Now()})

	userRepo.On("FindByEmail", mock.Anything, "staff@example.com").
		Return(&model.User{ID: 1, Email: "staff@example.com"}, nil)

	_, err := u.Execute(context.Background(), RegisterUserInput{
		Email:    "staff@example.com",
		Password: "verylongpassword",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUser_RepoErrorPropagates(t *testing.T) {
	userRepo := new(UserRepositoryMock)
	u := NewRegisterUserUsecase(userRepo, hasherStub{}, fixedClock{now: time.Now()})

	dbErr := errors.New("connection refused")
	userRepo.On("FindByEmail", mock.Anything, "staff@example.com").Return(nil, dbErr)

	_, err := u.Execute(context.Background(), RegisterUserInput{
		Email:    "staff@example.com",
		Password: "verylongpassword",
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)
	verifier := NewBcryptPasswordVerifier()

	hashed, err := hasher.Hash("verylongpassword")

	assert.NoError(t, err)
	assert.NotEqual(t, "verylongpassword", hashed)
	assert.True(t, verifier.Verify("verylongpassword", hashed))
	assert.False(t, verifier.Verify("wrongpassword", hashed))
}
