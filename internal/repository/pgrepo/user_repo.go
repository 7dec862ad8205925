package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/shopspring/decimal"
)

const userColumns = "id, created_at, updated_at, username, encrypted_password, balance"

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID ищет юзера по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// FindByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

// FindByIDForUpdate читает юзера с блокировкой строки до конца транзакции. Конкурентные покупки
// одного и того же юзера сериализуются именно на этом локе.
func (r *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 FOR UPDATE", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d for update", id)
	}
	return user, nil
}

func (r *UserRepository) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE users SET balance = $1, updated_at = now() WHERE id = $2", balance, id)
	if err != nil {
		return convertErr(err, "updating balance for user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating balance for user %d", id)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, encryptedPassword string) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE users SET encrypted_password = $1, updated_at = now() WHERE id = $2", encryptedPassword, id)
	if err != nil {
		return convertErr(err, "updating password for user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating password for user %d", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.EncryptedPassword,
		&user.Balance,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
