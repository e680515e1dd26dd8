package models

import "errors"

var ErrOutOfStock = errors.New("no copies left in stock")

type Book struct {
	ID       int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string   `json:"title" gorm:"size:100;not null;index"`
	ImageURL *string  `json:"image_url,omitempty"`
	Summary  *string  `json:"summary,omitempty" gorm:"size:500"`
	AuthorID *int64   `json:"author_id,omitempty"`
	Language Language `json:"language" gorm:"size:50;not null"`
	Genre    Genre    `json:"genre" gorm:"size:50;not null"`
	Price    int64    `json:"price" gorm:"not null;default:50;check:price >= 0"`
	Count    int64    `json:"count" gorm:"not null;default:10;check:count >= 0"`

	// association; author deletion nullifies AuthorID rather than
	// cascading into the catalog
	Author *Author `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}

// TakeCopy removes one copy from inventory.
func (b *Book) TakeCopy() error {
	if b.Count <= 0 {
		return ErrOutOfStock
	}
	b.Count--
	return nil
}

// ReturnCopy puts one copy back.
func (b *Book) ReturnCopy() {
	b.Count++
}

func (Book) TableName() string {
	return "books"
}
