package models

import (
	"errors"
	"math"
)

// MaxBalance is the ceiling for a wallet balance and for a single top-up,
// matching the 32-bit signed column bound.
const MaxBalance = math.MaxInt32

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid value")
	ErrAmountTooLarge    = errors.New("number too large")
)

// Wallet is the per-user balance ledger. One wallet per user, created at
// registration with a zero balance.
type Wallet struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  string `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Balance int64  `json:"balance" gorm:"not null;default:0;check:balance >= 0 AND balance <= 2147483647"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// CanAfford reports whether the balance covers price.
func (w *Wallet) CanAfford(price int64) bool {
	return w.Balance >= price
}

// Debit takes amount off the balance. The balance never goes negative;
// callers must have checked affordability, this is the hard guard.
func (w *Wallet) Debit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if w.Balance < amount {
		return ErrInsufficientFunds
	}
	w.Balance -= amount
	return nil
}

// TopUp adds amount to the balance. Negative amounts are rejected with
// ErrInvalidAmount, amounts that would push the balance past MaxBalance
// with ErrAmountTooLarge. Zero is a valid top-up.
func (w *Wallet) TopUp(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if amount > MaxBalance || w.Balance+amount > MaxBalance {
		return ErrAmountTooLarge
	}
	w.Balance += amount
	return nil
}

func (Wallet) TableName() string {
	return "wallets"
}
