package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	"app/internal/repository"
)

// 平文とハッシュの単純比較で照合を置き換える
type verifierStub struct{}

func (verifierStub) Verify(plain string, hashed string) bool {
	return "hashed:"+plain == hashed
}

// 固定トークンを返すIssuer
type issuerStub struct {
	ttl time.Duration
}

func (i issuerStub) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return "token-for-user", now.Add(i.ttl), nil
}

func activeUser() *model.User {
	return &model.User{
		ID:           7,
		Email:        "staff@example.com",
		PasswordHash: "hashed:verylongpassword",
		Role:         model.RoleStaff,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(UserRepositoryMock)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	u := NewLoginUsecase(userRepo, verifierStub{}, issuerStub{ttl: 15 * time.Minute}, fixedClock{now: now})

	userRepo.On("FindByEmail", mock.Anything, "staff@example.com").Return(activeUser(), nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
		//最終ログイン時刻が更新される
		return user.LastLoginAt != nil && user.LastLoginAt.Equal(now)
	})).Return(nil)

	out, err := u.Execute(context.Background(), LoginInput{
		Email:    "staff@example.com",
		Password: "verylongpassword",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.User.ID)
	//ハッシュはレスポンスに載せない
	assert.Equal(t, "", out.User.PasswordHash)
	assert.Equal(t, "token-for-user", out.Token.AccessToken)
	assert.Equal(t, int(15*time.Minute/time.Second), out.Token.ExpiresIn)
	userRepo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(UserRepositoryMock)
	u := NewLoginUsecase(userRepo, verifierStub{}, issuerStub{ttl: time.Minute}, fixedClock{now: time.Now()})

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := u.Execute(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(UserRepositoryMock)
	u := NewLoginUsecase(userRepo, verifierStub{}, issuerStub{ttl: time.Minute}, fixedClock{now: time.Now()})

	userRepo.On("FindByEmail", mock.Anything, "staff@example.com").Return(activeUser(), nil)

	_, err := u.Execute(context.Background(), LoginInput{
		Email:    "staff@example.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := new(UserRepositoryMock)
	u := NewLoginUsecase(userRepo, verifierStub{}, issuerStub{ttl: time.Minute}, fixedClock{now: time.Now()})

	user := activeUser()
	user.IsActive = false
	userRepo.On("FindByEmail", mock.Anything, "staff@example.com").Return(user, nil)

	_, err := u.Execute(context.Background(), LoginInput{
		Email:    "staff@example.com",
		Password: "verylongpassword",
	})

	assert.ErrorIs(t, err, ErrUserInactive)
}
