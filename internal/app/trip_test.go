package app

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() TripRequest {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	req := NewTripRequest("Goa", start, start.AddDate(0, 0, 2), 9000, 3)
	req.Themes = []string{"heritage", "leisure"}
	req.Modes = []domain.TravelMode{domain.ModeTrain}
	return req
}

func TestValidateTripRequest_Valid(t *testing.T) {
	assert.NoError(t, ValidateTripRequest(NewRequestValidator(), validRequest()))
}

func TestValidateTripRequest_SameDayTripIsValid(t *testing.T) {
	req := validRequest()
	req.EndDate = req.StartDate
	assert.NoError(t, ValidateTripRequest(NewRequestValidator(), req))
}

func TestValidateTripRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TripRequest)
		wantMsg string
	}{
		{"missing destination", func(r *TripRequest) { r.Destination = "" }, "destination is required"},
		{"end before start", func(r *TripRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }, "end_date must not be before start_date"},
		{"zero budget", func(r *TripRequest) { r.Budget = 0 }, "budget must be >"},
		{"mood too high", func(r *TripRequest) { r.Mood = 11 }, "mood must be <= 10"},
		{"no travellers", func(r *TripRequest) { r.PartySize = 0 }, "party_size must be >= 1"},
		{"unknown mode", func(r *TripRequest) { r.Modes = []domain.TravelMode{"boat"} }, "must be one of"},
		{"empty theme", func(r *TripRequest) { r.Themes = []string{""} }, "is required"},
		{"inverted hours", func(r *TripRequest) { r.StartHour, r.EndHour = 18, 9 }, "end_hour must be after start_hour"},
		{"zero variants", func(r *TripRequest) { r.Variants = 0 }, "variants must be >= 1"},
		{"unknown sequence", func(r *TripRequest) { r.Sequence = "zigzag" }, "sequence must be one of"},
	}
	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := ValidateTripRequest(v, req)
			require.Error(t, err)
			assert.True(t, IsPlanError(err, PlanErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateTripRequest_ReportsEveryField(t *testing.T) {
	req := validRequest()
	req.Destination = ""
	req.Budget = -1

	err := ValidateTripRequest(NewRequestValidator(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination")
	assert.Contains(t, err.Error(), "budget")
}

func TestIsPlanError(t *testing.T) {
	err := &PlanError{Code: PlanErrEmptyCatalog, Message: "no POIs for Goa"}
	wrapped := errors.Join(errors.New("context"), err)

	assert.True(t, IsPlanError(wrapped, PlanErrEmptyCatalog))
	assert.False(t, IsPlanError(wrapped, PlanErrUnknownDestination))
	assert.False(t, IsPlanError(errors.New("plain"), PlanErrEmptyCatalog))
	assert.Equal(t, "EMPTY_CATALOG: no POIs for Goa", err.Error())
}
