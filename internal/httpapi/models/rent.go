package models

import "time"

// RentPeriodDays is the loan period; the return date is fixed at creation.
const RentPeriodDays = 14

// Rent is an active loan. It exists from rental until return, when it is
// deleted and the copy goes back into inventory.
type Rent struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     *string   `json:"user_id,omitempty" gorm:"type:uuid;index"`
	BookID     *int64    `json:"book_id,omitempty" gorm:"index"`
	DateStart  time.Time `json:"date_start" gorm:"not null"`
	DateReturn time.Time `json:"date_return" gorm:"not null"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Book *Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:SET NULL"`
}

// NewRent opens a loan starting today with the return date two weeks out.
func NewRent(userID string, bookID int64, today time.Time) *Rent {
	start := today.Truncate(24 * time.Hour)
	return &Rent{
		UserID:     &userID,
		BookID:     &bookID,
		DateStart:  start,
		DateReturn: start.AddDate(0, 0, RentPeriodDays),
	}
}

// DaysRemaining is date_return minus today in whole days. Overdue loans
// yield a negative number; callers must not clamp it.
func (r *Rent) DaysRemaining(today time.Time) int {
	return int(r.DateReturn.Sub(today.Truncate(24*time.Hour)).Hours() / 24)
}

// OwnedBy reports whether the loan still references the given user.
func (r *Rent) OwnedBy(userID string) bool {
	return r.UserID != nil && *r.UserID == userID
}

func (Rent) TableName() string {
	return "rents"
}
