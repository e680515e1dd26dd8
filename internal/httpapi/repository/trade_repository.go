package repository

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TradeRepository holds the multi-step trade mutations. Every operation
// that touches inventory together with other rows runs as one
// transaction with the affected rows locked FOR UPDATE, so a purchase
// either applies completely (count-1, balance-price, Buy row) or not at
// all, and two buyers cannot both take the last copy.
type TradeRepository interface {
	Purchase(ctx context.Context, userID string, bookID int64) (*models.Buy, error)
	Rent(ctx context.Context, userID string, bookID int64, today time.Time) (*models.Rent, error)
	Return(ctx context.Context, rentID int64) error

	FindBuy(ctx context.Context, id int64) (*models.Buy, error)
	FindRent(ctx context.Context, id int64) (*models.Rent, error)
	DeleteBuy(ctx context.Context, id int64) error
	DeleteRent(ctx context.Context, id int64) error

	ListBuysByUser(ctx context.Context, userID string) ([]models.Buy, error)
	ListRentsByUser(ctx context.Context, userID string) ([]models.Rent, error)
	ListActiveRents(ctx context.Context) ([]models.Rent, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Purchase(ctx context.Context, userID string, bookID int64) (*models.Buy, error) {
	var buy *models.Buy
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, bookID).Error; err != nil {
			return err
		}
		var wallet models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return err
		}
		if err := models.ApplyPurchase(&book, &wallet); err != nil {
			return err
		}
		if err := tx.Save(&book).Error; err != nil {
			return err
		}
		if err := tx.Save(&wallet).Error; err != nil {
			return err
		}
		buy = &models.Buy{UserID: &userID, BookID: &bookID}
		return tx.Create(buy).Error
	})
	if err != nil {
		return nil, err
	}
	return buy, nil
}

func (r *tradeRepository) Rent(ctx context.Context, userID string, bookID int64, today time.Time) (*models.Rent, error) {
	var rent *models.Rent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, bookID).Error; err != nil {
			return err
		}
		if err := book.TakeCopy(); err != nil {
			return err
		}
		if err := tx.Save(&book).Error; err != nil {
			return err
		}
		rent = models.NewRent(userID, bookID, today)
		return tx.Create(rent).Error
	})
	if err != nil {
		return nil, err
	}
	return rent, nil
}

// Return closes a loan: the copy goes back into inventory and the Rent
// row is deleted. A rent whose book was since removed from the catalog
// still gets deleted; there is no inventory to restore then.
func (r *tradeRepository) Return(ctx context.Context, rentID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rent models.Rent
		if err := tx.First(&rent, rentID).Error; err != nil {
			return err
		}
		if rent.BookID != nil {
			var book models.Book
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&book, *rent.BookID).Error; err != nil {
				return err
			}
			book.ReturnCopy()
			if err := tx.Save(&book).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&rent).Error
	})
}

func (r *tradeRepository) FindBuy(ctx context.Context, id int64) (*models.Buy, error) {
	var buy models.Buy
	if err := r.db.WithContext(ctx).First(&buy, id).Error; err != nil {
		return nil, err
	}
	return &buy, nil
}

func (r *tradeRepository) FindRent(ctx context.Context, id int64) (*models.Rent, error) {
	var rent models.Rent
	if err := r.db.WithContext(ctx).First(&rent, id).Error; err != nil {
		return nil, err
	}
	return &rent, nil
}

func (r *tradeRepository) DeleteBuy(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Buy{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete buy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRent removes the record without touching inventory; this is the
// bookkeeping deletion, not a return.
func (r *tradeRepository) DeleteRent(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Rent{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete rent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tradeRepository) ListBuysByUser(ctx context.Context, userID string) ([]models.Buy, error) {
	var buys []models.Buy
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&buys).Error; err != nil {
		return nil, fmt.Errorf("list buys: %w", err)
	}
	return buys, nil
}

func (r *tradeRepository) ListRentsByUser(ctx context.Context, userID string) ([]models.Rent, error) {
	var rents []models.Rent
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("date_return").
		Find(&rents).Error; err != nil {
		return nil, fmt.Errorf("list rents: %w", err)
	}
	return rents, nil
}

// ListActiveRents returns every live loan with user and book preloaded,
// for the duty report. Rents whose user was deleted are skipped; nobody
// is left to chase them.
func (r *tradeRepository) ListActiveRents(ctx context.Context) ([]models.Rent, error) {
	var rents []models.Rent
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Book").
		Where("user_id IS NOT NULL").
		Order("date_return").
		Find(&rents).Error; err != nil {
		return nil, fmt.Errorf("list active rents: %w", err)
	}
	return rents, nil
}
