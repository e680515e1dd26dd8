package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletTopUp_Valid(t *testing.T) {
	w := &Wallet{Balance: 100}

	assert.NoError(t, w.TopUp(50))
	assert.Equal(t, int64(150), w.Balance)
}

func TestWalletTopUp_Zero(t *testing.T) {
	w := &Wallet{Balance: 100}

	assert.NoError(t, w.TopUp(0))
	assert.Equal(t, int64(100), w.Balance)
}

func TestWalletTopUp_Negative(t *testing.T) {
	w := &Wallet{Balance: 100}

	err := w.TopUp(-1)

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, int64(100), w.Balance)
}

func TestWalletTopUp_OverCeiling(t *testing.T) {
	w := &Wallet{Balance: 0}

	err := w.TopUp(MaxBalance + 1)

	assert.ErrorIs(t, err, ErrAmountTooLarge)
	assert.Equal(t, int64(0), w.Balance)
}

func TestWalletTopUp_BalancePlusAmountOverCeiling(t *testing.T) {
	w := &Wallet{Balance: MaxBalance - 10}

	err := w.TopUp(11)

	assert.ErrorIs(t, err, ErrAmountTooLarge)
	assert.Equal(t, int64(MaxBalance-10), w.Balance)
}

func TestWalletTopUp_ExactlyToCeiling(t *testing.T) {
	w := &Wallet{Balance: MaxBalance - 10}

	assert.NoError(t, w.TopUp(10))
	assert.Equal(t, int64(MaxBalance), w.Balance)
}

func TestWalletDebit_NeverNegative(t *testing.T) {
	w := &Wallet{Balance: 30}

	err := w.Debit(31)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(30), w.Balance)
}

func TestWalletCanAfford(t *testing.T) {
	w := &Wallet{Balance: 100}

	assert.True(t, w.CanAfford(100))
	assert.True(t, w.CanAfford(0))
	assert.False(t, w.CanAfford(101))
}
