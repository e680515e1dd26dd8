package service

import (
	"context"

	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/repository"
)

type WalletService interface {
	Balance(ctx context.Context, userID string) (*models.Wallet, error)
	// TopUp adds amount to the user's balance. The wallet enforces the
	// bounds: models.ErrInvalidAmount for negatives,
	// models.ErrAmountTooLarge past the 32-bit ceiling.
	TopUp(ctx context.Context, userID string, amount int64) (*models.Wallet, error)
}

type walletService struct {
	walletRepo repository.WalletRepository
}

func NewWalletService(walletRepo repository.WalletRepository) WalletService {
	return &walletService{walletRepo: walletRepo}
}

func (s *walletService) Balance(ctx context.Context, userID string) (*models.Wallet, error) {
	return s.walletRepo.GetByUser(ctx, userID)
}

func (s *walletService) TopUp(ctx context.Context, userID string, amount int64) (*models.Wallet, error) {
	return s.walletRepo.TopUp(ctx, userID, amount)
}
