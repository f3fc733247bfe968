package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/itinera/internal/config"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValue(t *testing.T) {
	var d time.Time
	v := newDateValue(&d)
	assert.Equal(t, "", v.String())
	assert.Equal(t, "date", v.Type())

	require.NoError(t, v.Set("2025-03-01"))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-03-01", v.String())

	assert.Error(t, v.Set("01/03/2025"))
}

func TestHourValue(t *testing.T) {
	var h int
	v := newHourValue(9, &h)
	assert.Equal(t, 9, h)
	assert.Equal(t, "9", v.String())
	assert.Equal(t, "hour", v.Type())

	require.NoError(t, v.Set("21"))
	assert.Equal(t, 21, h)
	assert.Error(t, v.Set("24"))
	assert.Error(t, v.Set("nine"))
	assert.Equal(t, 21, h, "a rejected value leaves the hour unchanged")
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"heritage", "leisure", "family"}, splitCSV([]string{"Heritage, leisure", " ", "family"}))
	assert.Nil(t, splitCSV(nil))
}

func TestPositiveIndex(t *testing.T) {
	i, err := positiveIndex("3", "offer")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = positiveIndex("0", "offer")
	assert.Error(t, err)
	_, err = positiveIndex("two", "offer")
	assert.Error(t, err)
}

func TestPlanAnswers_Request(t *testing.T) {
	cfg := config.DefaultConfig()
	a := planAnswers{
		origin:      " Hyderabad ",
		destination: "Goa",
		start:       "2025-03-01",
		budget:      "4500",
		party:       "3",
		themes:      []string{"leisure"},
		mood:        "7",
		modes:       []string{"cab"},
		sequence:    string(domain.SequenceProximity),
	}
	req, err := a.request(cfg)
	require.NoError(t, err)

	assert.Equal(t, "Hyderabad", req.Origin)
	assert.Equal(t, req.StartDate, req.EndDate, "blank end date means a day trip")
	assert.Equal(t, 4500.0, req.Budget)
	assert.Equal(t, 3, req.PartySize)
	assert.Equal(t, 7.0, req.Mood)
	assert.Equal(t, cfg.Variants, req.Variants)
	assert.Equal(t, cfg.DayHours.StartHour, req.StartHour)
	assert.Equal(t, []domain.TravelMode{domain.ModeCab}, req.Modes)
	assert.Nil(t, req.Seed)

	a.budget = "lots"
	_, err = a.request(cfg)
	assert.Error(t, err)
}

func TestWizardValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.Error(t, validateRequiredDate(""))
	assert.NoError(t, validatePositiveNumber("10.5"))
	assert.Error(t, validatePositiveNumber("0"))
	assert.NoError(t, validateOptionalPositiveInt(""))
	assert.Error(t, validateOptionalPositiveInt("-1"))
	assert.NoError(t, validateMood("10"))
	assert.Error(t, validateMood("11"))
}
