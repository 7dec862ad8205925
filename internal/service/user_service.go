package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service/tokens"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       domain.UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[domain.UserRepository](u, uow.RepositoryName(domain.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login аутентифицирует юзера по паре логин/пароль. Возвращает 3 значения: юзер, jwt токен и ошибку.
// Для несуществующего юзернейма вернется domain.ErrRecordNotFound, для неверного пароля -
// domain.ErrPasswordMissMatch. Разделение ошибок существует только для внутренней логики,
// транспортный слой обязан отдавать на обе один и тот же ответ.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("logging in user: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

type ChangePasswordArgs struct {
	UserID      int64
	OldPassword string
	NewPassword string
}

// ChangePassword меняет пароль юзера. Чтение юзера и запись нового хеша выполняются в одной транзакции.
// Возвращает domain.ErrRecordNotFound если юзер не найден и domain.ErrPasswordMissMatch если
// старый пароль не подошел. Плейнтекст пароля никогда не сохраняется и не логируется.
func (s *UserService) ChangePassword(ctx context.Context, args ChangePasswordArgs) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[domain.UserRepository](tx, uow.RepositoryName(domain.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		user, findErr := userRepo.FindByID(c, args.UserID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !s.psswd.ComparePassword(args.OldPassword, user.EncryptedPassword) {
			return domain.ErrPasswordMissMatch //nolint:wrapcheck
		}

		hash, hashErr := s.psswd.HashPassword(args.NewPassword)
		if hashErr != nil {
			return hashErr //nolint:wrapcheck
		}

		return userRepo.UpdatePassword(c, user.ID, hash) //nolint:wrapcheck
	})

	if txErr != nil {
		return fmt.Errorf("changing password: %w", txErr)
	}
	return nil
}
