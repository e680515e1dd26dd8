package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPurchase_Success(t *testing.T) {
	book := &Book{Title: "Dead Souls", Price: 100, Count: 10}
	wallet := &Wallet{Balance: 150}

	err := ApplyPurchase(book, wallet)

	assert.NoError(t, err)
	assert.Equal(t, int64(50), wallet.Balance)
	assert.Equal(t, int64(9), book.Count)
}

func TestApplyPurchase_InsufficientFunds(t *testing.T) {
	book := &Book{Price: 100, Count: 10}
	wallet := &Wallet{Balance: 50}

	err := ApplyPurchase(book, wallet)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	// a rejected purchase must not touch either record
	assert.Equal(t, int64(50), wallet.Balance)
	assert.Equal(t, int64(10), book.Count)
}

func TestApplyPurchase_SecondAttemptAfterSpending(t *testing.T) {
	book := &Book{Price: 100, Count: 10}
	wallet := &Wallet{Balance: 150}

	assert.NoError(t, ApplyPurchase(book, wallet))
	err := ApplyPurchase(book, wallet)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(50), wallet.Balance)
	assert.Equal(t, int64(9), book.Count)
}

func TestApplyPurchase_OutOfStock(t *testing.T) {
	book := &Book{Price: 10, Count: 0}
	wallet := &Wallet{Balance: 1000}

	err := ApplyPurchase(book, wallet)

	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, int64(1000), wallet.Balance)
}

func TestApplyPurchase_ExactBalance(t *testing.T) {
	book := &Book{Price: 100, Count: 1}
	wallet := &Wallet{Balance: 100}

	err := ApplyPurchase(book, wallet)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Balance)
	assert.Equal(t, int64(0), book.Count)
}

func TestApplyPurchase_FreeBook(t *testing.T) {
	book := &Book{Price: 0, Count: 1}
	wallet := &Wallet{Balance: 0}

	err := ApplyPurchase(book, wallet)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Balance)
}
