package repository

import (
	"context"
	"fmt"

	"bookstore/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.Wallet, error)
	// TopUp applies the amount atomically under a row lock; the bound
	// checks live on the wallet model.
	TopUp(ctx context.Context, userID string, amount int64) (*models.Wallet, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetByUser(ctx context.Context, userID string) (*models.Wallet, error) {
	var w models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *walletRepository) TopUp(ctx context.Context, userID string, amount int64) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return err
		}
		if err := wallet.TopUp(amount); err != nil {
			return err
		}
		return tx.Save(&wallet).Error
	})
	if err != nil {
		return nil, fmt.Errorf("top up wallet: %w", err)
	}
	return &wallet, nil
}
