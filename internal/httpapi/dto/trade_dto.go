package dto

import (
	"time"

	"bookstore/internal/httpapi/models"
)

// BuyResponse is one purchase record on the profile page.
type BuyResponse struct {
	ID        int64     `json:"id"`
	BookID    *int64    `json:"book_id,omitempty"`
	BookTitle string    `json:"book_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RentResponse is one active loan, with the signed days-remaining counter.
// DaysRemaining goes negative once the loan is overdue.
type RentResponse struct {
	ID            int64  `json:"id"`
	BookID        *int64 `json:"book_id,omitempty"`
	BookTitle     string `json:"book_title,omitempty"`
	DateStart     string `json:"date_start"`
	DateReturn    string `json:"date_return"`
	DaysRemaining int    `json:"days_remaining"`
}

// ProfileResponse bundles everything the profile page shows.
type ProfileResponse struct {
	UserID    string         `json:"user_id"`
	Username  string         `json:"username"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Email     string         `json:"email"`
	Balance   int64          `json:"balance"`
	Buys      []BuyResponse  `json:"buys"`
	Rents     []RentResponse `json:"rents"`
}

// DutyResponse maps username -> that user's active loans.
type DutyResponse struct {
	Users map[string][]RentResponse `json:"users"`
}

func FromBuyToResponse(b models.Buy) BuyResponse {
	resp := BuyResponse{
		ID:        b.ID,
		BookID:    b.BookID,
		CreatedAt: b.CreatedAt,
	}
	if b.Book != nil {
		resp.BookTitle = b.Book.Title
	}
	return resp
}

func FromRentToResponse(r models.Rent, today time.Time) RentResponse {
	resp := RentResponse{
		ID:            r.ID,
		BookID:        r.BookID,
		DateStart:     r.DateStart.Format(dateLayout),
		DateReturn:    r.DateReturn.Format(dateLayout),
		DaysRemaining: r.DaysRemaining(today),
	}
	if r.Book != nil {
		resp.BookTitle = r.Book.Title
	}
	return resp
}
