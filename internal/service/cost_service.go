package service

import (
	"context"

	"github.com/alexanderramin/itinera/internal/app"
	"github.com/alexanderramin/itinera/internal/planner"
	"github.com/alexanderramin/itinera/internal/repository"
)

type costService struct {
	trips repository.TripRepo
}

// NewCostService prices trips. Quotes, breakdowns and bills are derived on
// every call and never stored.
func NewCostService(trips repository.TripRepo) app.CostUseCase {
	return &costService{trips: trips}
}

func (s *costService) Costs(ctx context.Context, tripID string) (planner.CostBreakdown, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return planner.CostBreakdown{}, err
	}
	return planner.ComputeCosts(*t.Itineraries.CurrentVariant(), t.ChosenTravel), nil
}

func (s *costService) Bill(ctx context.Context, tripID string) (planner.Bill, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return planner.Bill{}, err
	}
	return planner.ComputeBill(*t.Itineraries.CurrentVariant(), t.ChosenTravel), nil
}

func (s *costService) Quote(ctx context.Context, tripID string, day int) (*app.DayQuote, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	dp, err := t.Itineraries.CurrentVariant().Day(day)
	if err != nil {
		return nil, err
	}
	return &app.DayQuote{TripID: t.ID, Day: day, Quote: planner.QuoteDay(*dp)}, nil
}
