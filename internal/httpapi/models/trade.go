package models

// ApplyPurchase performs the in-memory half of a purchase: one copy out of
// inventory, the price off the wallet. All checks run before any mutation,
// so a rejected purchase leaves both records untouched.
func ApplyPurchase(book *Book, wallet *Wallet) error {
	if book.Count <= 0 {
		return ErrOutOfStock
	}
	if !wallet.CanAfford(book.Price) {
		return ErrInsufficientFunds
	}
	if err := book.TakeCopy(); err != nil {
		return err
	}
	return wallet.Debit(book.Price)
}
