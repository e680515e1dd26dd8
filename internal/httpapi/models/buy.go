package models

import "time"

// Buy marks a completed purchase. Deleting the user or the book nullifies
// the reference instead of cascading, so the record survives as history.
type Buy struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    *string   `json:"user_id,omitempty" gorm:"type:uuid;index"`
	BookID    *int64    `json:"book_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Book *Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:SET NULL"`
}

// OwnedBy reports whether the buy record still references the given user.
func (b *Buy) OwnedBy(userID string) bool {
	return b.UserID != nil && *b.UserID == userID
}

func (Buy) TableName() string {
	return "buys"
}
