package models

import (
	"errors"
	"time"
)

var ErrDeathBeforeBirth = errors.New("date of death precedes date of birth")

type Author struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Surname     string     `json:"surname" gorm:"size:50;not null;index"`
	Name        string     `json:"name" gorm:"size:50;not null"`
	Patronymic  *string    `json:"patronymic,omitempty" gorm:"size:50"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Country     string     `json:"country" gorm:"size:50"`
}

// Validate checks the lifetime ordering. Both dates are optional; the
// ordering only applies when both are present.
func (a *Author) Validate() error {
	if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
		return ErrDeathBeforeBirth
	}
	return nil
}

// DisplayName renders "Surname N." or "Surname N.P." when a patronymic
// is recorded.
func (a *Author) DisplayName() string {
	if a.Name == "" {
		return a.Surname
	}
	name := a.Surname + " " + string([]rune(a.Name)[0]) + "."
	if a.Patronymic != nil && *a.Patronymic != "" {
		name += string([]rune(*a.Patronymic)[0]) + "."
	}
	return name
}

func (Author) TableName() string {
	return "authors"
}
