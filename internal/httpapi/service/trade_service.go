package service

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/repository"
)

var ErrNotOwner = errors.New("record belongs to another user")

type TradeService interface {
	Purchase(ctx context.Context, userID string, bookID int64) (*models.Buy, error)
	RentBook(ctx context.Context, userID string, bookID int64) (*models.Rent, error)
	ReturnBook(ctx context.Context, userID string, rentID int64) error
	DeleteBuy(ctx context.Context, userID, role string, buyID int64) error
	DeleteRent(ctx context.Context, userID, role string, rentID int64) error
	Profile(ctx context.Context, userID string) ([]models.Buy, []models.Rent, *models.Wallet, error)
}

type tradeService struct {
	tradeRepo  repository.TradeRepository
	walletRepo repository.WalletRepository
	now        func() time.Time
}

func NewTradeService(tradeRepo repository.TradeRepository, walletRepo repository.WalletRepository) TradeService {
	return &tradeService{
		tradeRepo:  tradeRepo,
		walletRepo: walletRepo,
		now:        time.Now,
	}
}

// Purchase runs the whole buy as one repository transaction: funds and
// stock are checked with the rows locked, and nothing is written when
// either check fails. models.ErrInsufficientFunds and
// models.ErrOutOfStock come back unchanged for the handler to map.
func (s *tradeService) Purchase(ctx context.Context, userID string, bookID int64) (*models.Buy, error) {
	return s.tradeRepo.Purchase(ctx, userID, bookID)
}

// RentBook opens a loan due in two weeks. Rentals are free; the only
// requirement is a copy in stock.
func (s *tradeService) RentBook(ctx context.Context, userID string, bookID int64) (*models.Rent, error) {
	return s.tradeRepo.Rent(ctx, userID, bookID, s.now())
}

// ReturnBook closes the caller's own loan. Staff cannot return on behalf
// of a client; they delete the record instead.
func (s *tradeService) ReturnBook(ctx context.Context, userID string, rentID int64) error {
	rent, err := s.tradeRepo.FindRent(ctx, rentID)
	if err != nil {
		return err
	}
	if !rent.OwnedBy(userID) {
		return ErrNotOwner
	}
	return s.tradeRepo.Return(ctx, rentID)
}

// DeleteBuy removes a purchase record. Allowed for the owner and for
// admins; inventory and balance are untouched.
func (s *tradeService) DeleteBuy(ctx context.Context, userID, role string, buyID int64) error {
	buy, err := s.tradeRepo.FindBuy(ctx, buyID)
	if err != nil {
		return err
	}
	if !buy.OwnedBy(userID) && role != models.RoleAdmin {
		return ErrNotOwner
	}
	return s.tradeRepo.DeleteBuy(ctx, buyID)
}

// DeleteRent removes a loan record without returning the copy.
func (s *tradeService) DeleteRent(ctx context.Context, userID, role string, rentID int64) error {
	rent, err := s.tradeRepo.FindRent(ctx, rentID)
	if err != nil {
		return err
	}
	if !rent.OwnedBy(userID) && role != models.RoleAdmin {
		return ErrNotOwner
	}
	return s.tradeRepo.DeleteRent(ctx, rentID)
}

// Profile gathers the user's purchases, active loans and balance.
func (s *tradeService) Profile(ctx context.Context, userID string) ([]models.Buy, []models.Rent, *models.Wallet, error) {
	buys, err := s.tradeRepo.ListBuysByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	rents, err := s.tradeRepo.ListRentsByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	wallet, err := s.walletRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	return buys, rents, wallet, nil
}
