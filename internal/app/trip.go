package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/go-playground/validator/v10"
)

// TripRequest carries the traveller's inputs for generating a trip.
type TripRequest struct {
	Origin      string              `json:"origin"`
	Destination string              `json:"destination" validate:"required"`
	StartDate   time.Time           `json:"start_date" validate:"required"`
	EndDate     time.Time           `json:"end_date" validate:"required,gtefield=StartDate"`
	Budget      float64             `json:"budget" validate:"gt=0"`
	PartySize   int                 `json:"party_size" validate:"gte=1,lte=50"`
	Themes      []string            `json:"themes" validate:"dive,required"`
	Mood        float64             `json:"mood" validate:"gte=0,lte=10"`
	Modes       []domain.TravelMode `json:"modes" validate:"dive,oneof=flight train bus cab"`
	StartHour   int                 `json:"start_hour" validate:"gte=0,lte=23"`
	EndHour     int                 `json:"end_hour" validate:"gtfield=StartHour,lte=23"`
	Variants    int                 `json:"variants" validate:"gte=1,lte=10"`
	Sequence    string              `json:"sequence" validate:"omitempty,oneof=identity proximity"`
	// Seed pins generation. Nil means derive one from the clock once.
	Seed *int64 `json:"seed,omitempty"`
}

// NewTripRequest returns a request with the default day window, one
// traveller, a neutral mood and cfgVariants variants.
func NewTripRequest(destination string, start, end time.Time, budget float64, cfgVariants int) TripRequest {
	return TripRequest{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		PartySize:   1,
		Mood:        5,
		StartHour:   domain.DefaultDayStartHour,
		EndHour:     domain.DefaultDayEndHour,
		Variants:    cfgVariants,
		Sequence:    string(domain.SequenceIdentity),
	}
}

type PlanErrorCode string

const (
	PlanErrInvalidRequest     PlanErrorCode = "INVALID_REQUEST"
	PlanErrEmptyCatalog       PlanErrorCode = "EMPTY_CATALOG"
	PlanErrUnknownDestination PlanErrorCode = "UNKNOWN_DESTINATION"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// IsPlanError reports whether err carries a PlanError with the given code.
func IsPlanError(err error, code PlanErrorCode) bool {
	var pe *PlanError
	return errors.As(err, &pe) && pe.Code == code
}

// NewRequestValidator returns a validator that names fields by their json tag.
func NewRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateTripRequest checks req and reports every failing field in one
// INVALID_REQUEST PlanError.
func ValidateTripRequest(v *validator.Validate, req TripRequest) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &PlanError{Code: PlanErrInvalidRequest, Message: err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return &PlanError{Code: PlanErrInvalidRequest, Message: strings.Join(msgs, "; ")}
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", field, jsonName(fe.Param()))
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", field, jsonName(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must be %s %s, got %v", field, comparison(fe.Tag()), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func comparison(tag string) string {
	switch tag {
	case "gt":
		return ">"
	case "gte":
		return ">="
	case "lt":
		return "<"
	default:
		return "<="
	}
}

// jsonName maps a struct field named in a cross-field tag to its json name.
func jsonName(field string) string {
	if f, ok := reflect.TypeOf(TripRequest{}).FieldByName(field); ok {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	}
	return field
}
