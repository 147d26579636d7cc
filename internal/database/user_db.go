package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marialebedeva/finance-api/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser регистрирует нового пользователя
func RegisterUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	query := `
		INSERT INTO users (email, password, name) VALUES ($1, $2, $3) RETURNING id`
	err = pool.QueryRow(ctx, query, user.Email, hashedPassword, user.Name).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении пользователя: %w", err)
	}
	return nil
}

var ErrInvalidCredentials = errors.New("неверный email или пароль")

func AuthenticateUser(ctx context.Context, pool *pgxpool.Pool, email, password string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, password, name FROM users WHERE email = $1`
	err := pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.Password, &user.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return &user, nil
}
