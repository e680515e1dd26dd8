package repository

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/httpapi/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert or update trips a unique index
// (username or email already taken).
var ErrDuplicate = errors.New("duplicate value")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateWithWallet(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName, email string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	EmailsByIDs(ctx context.Context, ids []string) ([]string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithWallet inserts the user together with its zero-balance wallet.
// Registration must never produce a user without a ledger row, so both go
// in one transaction.
func (r *userRepository) CreateWithWallet(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		wallet := &models.Wallet{UserID: user.ID, Balance: 0}
		return tx.Create(wallet).Error
	})
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id, firstName, lastName, email string) error {
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
	}).Error
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// EmailsByIDs resolves user ids to their email addresses, dropping ids
// that match nothing.
func (r *userRepository) EmailsByIDs(ctx context.Context, ids []string) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id IN ?", ids).
		Order("username").
		Pluck("email", &emails).Error; err != nil {
		return nil, fmt.Errorf("resolve recipient emails: %w", err)
	}
	return emails, nil
}

// isUniqueViolation detects a postgres unique-constraint failure
// (SQLSTATE 23505) behind gorm's error wrapping.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
