package service

import (
	"context"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/repository"
)

// DutyService builds the staff report of who currently holds which books.
type DutyService interface {
	Report(ctx context.Context) (map[string][]dto.RentResponse, error)
}

type dutyService struct {
	tradeRepo repository.TradeRepository
	now       func() time.Time
}

func NewDutyService(tradeRepo repository.TradeRepository) DutyService {
	return &dutyService{tradeRepo: tradeRepo, now: time.Now}
}

// Report groups every active loan by its user. Each entry carries the
// signed days-remaining counter; overdue loans show a negative number.
func (s *dutyService) Report(ctx context.Context) (map[string][]dto.RentResponse, error) {
	rents, err := s.tradeRepo.ListActiveRents(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	report := make(map[string][]dto.RentResponse)
	for _, rent := range rents {
		if rent.User == nil {
			continue
		}
		username := rent.User.Username
		report[username] = append(report[username], dto.FromRentToResponse(rent, today))
	}
	return report, nil
}
