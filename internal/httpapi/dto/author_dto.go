package dto

import (
	"time"

	"bookstore/internal/httpapi/models"
)

// CreateAuthorDTO used for POST /api/authors. Dates arrive as "2006-01-02".
type CreateAuthorDTO struct {
	Surname     string  `json:"surname" binding:"required,max=50"`
	Name        string  `json:"name" binding:"required,max=50"`
	Patronymic  *string `json:"patronymic,omitempty" binding:"omitempty,max=50"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	DateOfDeath *string `json:"date_of_death,omitempty"`
	Country     string  `json:"country" binding:"omitempty,max=50"`
}

// AuthorResponse DTO for responses
type AuthorResponse struct {
	ID          int64   `json:"id"`
	Surname     string  `json:"surname"`
	Name        string  `json:"name"`
	Patronymic  *string `json:"patronymic,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	DateOfDeath *string `json:"date_of_death,omitempty"`
	Country     string  `json:"country"`
	Display     string  `json:"display"`
}

const dateLayout = "2006-01-02"

// ToModel parses the date fields; a malformed date is a per-field
// validation error reported by the caller.
func (d CreateAuthorDTO) ToModel() (models.Author, map[string]string) {
	a := models.Author{
		Surname:    d.Surname,
		Name:       d.Name,
		Patronymic: d.Patronymic,
		Country:    d.Country,
	}
	fieldErrs := map[string]string{}
	if d.DateOfBirth != nil && *d.DateOfBirth != "" {
		t, err := time.Parse(dateLayout, *d.DateOfBirth)
		if err != nil {
			fieldErrs["date_of_birth"] = MsgInvalidDate
		} else {
			a.DateOfBirth = &t
		}
	}
	if d.DateOfDeath != nil && *d.DateOfDeath != "" {
		t, err := time.Parse(dateLayout, *d.DateOfDeath)
		if err != nil {
			fieldErrs["date_of_death"] = MsgInvalidDate
		} else {
			a.DateOfDeath = &t
		}
	}
	if len(fieldErrs) > 0 {
		return a, fieldErrs
	}
	return a, nil
}

func FromAuthorToResponse(a models.Author) AuthorResponse {
	resp := AuthorResponse{
		ID:         a.ID,
		Surname:    a.Surname,
		Name:       a.Name,
		Patronymic: a.Patronymic,
		Country:    a.Country,
		Display:    a.DisplayName(),
	}
	if a.DateOfBirth != nil {
		s := a.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &s
	}
	if a.DateOfDeath != nil {
		s := a.DateOfDeath.Format(dateLayout)
		resp.DateOfDeath = &s
	}
	return resp
}
