package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	repomocks "github.com/fsdevblog/groph-market/internal/domain/mocks"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/internal/service/tokens"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *repomocks.MockUserRepository
	mockPsswd    *mocks.MockPasswordHasher
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockUserRepo = repomocks.NewMockUserRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	// Любой вызов Do прозрачно выполняет переданную функцию с mockTX.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	// Инициализация сервиса.
	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestLogin() {
	savedUserUsername := "test"
	// аргументы вызовов для кейсов ниже.
	argsOk := LoginUserArgs{
		Username: savedUserUsername,
		Password: "<PASSWORD>",
	}
	argsWrongUsername := LoginUserArgs{
		Username: "wrong",
		Password: "<PASSWORD>",
	}
	argsWrongPass := LoginUserArgs{
		Username: savedUserUsername,
		Password: "wrong pass",
	}

	validHashPassword := "hash ok"

	savedUser := domain.User{
		ID:                1,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Username:          savedUserUsername,
		EncryptedPassword: validHashPassword,
		Balance:           decimal.NewFromInt(100),
	}

	// Мок для сравнения пароля.
	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongUsername.Password, validHashPassword).Times(0)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	// Мок репозитория.
	s.mockUserRepo.EXPECT().
		FindByUsername(gomock.Any(), savedUserUsername).
		Return(&savedUser, nil).Times(2)

	s.mockUserRepo.EXPECT().
		FindByUsername(gomock.Any(), argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		{name: "wrong username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(user)
				s.Equal(savedUser.ID, user.ID)
				s.NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(token.Claims.(*tokens.UserClaims).ID, savedUser.ID) //nolint:errcheck
			}
		})
	}
}

func (s *UserServiceTestSuite) TestChangePassword() {
	var savedUserID int64 = 1
	var missingUserID int64 = 42

	oldHash := "old hash"
	newHash := "new hash"

	savedUser := domain.User{
		ID:                savedUserID,
		Username:          "test",
		EncryptedPassword: oldHash,
	}

	argsOk := ChangePasswordArgs{
		UserID:      savedUserID,
		OldPassword: "old password",
		NewPassword: "new password",
	}
	argsMissingUser := ChangePasswordArgs{
		UserID:      missingUserID,
		OldPassword: "old password",
		NewPassword: "new password",
	}
	argsWrongOldPass := ChangePasswordArgs{
		UserID:      savedUserID,
		OldPassword: "wrong old password",
		NewPassword: "new password",
	}

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), savedUserID).
		Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), missingUserID).
		Return(nil, domain.ErrRecordNotFound)

	s.mockPsswd.EXPECT().ComparePassword(argsOk.OldPassword, oldHash).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongOldPass.OldPassword, oldHash).Return(false)
	s.mockPsswd.EXPECT().HashPassword(argsOk.NewPassword).Return(newHash, nil)

	// Новый хеш должен сохраниться только в успешном кейсе.
	s.mockUserRepo.EXPECT().UpdatePassword(gomock.Any(), savedUserID, newHash).Return(nil).Times(1)

	cases := []struct {
		name    string
		args    ChangePasswordArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		{name: "missing user", args: argsMissingUser, wantErr: domain.ErrRecordNotFound},
		{name: "wrong old password", args: argsWrongOldPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.userService.ChangePassword(s.T().Context(), t.args)
			if t.wantErr == nil {
				s.Require().NoError(err)
			} else {
				s.Require().ErrorIs(err, t.wantErr)
			}
		})
	}
}
