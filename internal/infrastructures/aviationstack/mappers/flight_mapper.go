package mappers

import (
	"strings"

	"github.com/khwalser/nextownair-site/internal/domain/models"
	"github.com/khwalser/nextownair-site/internal/infrastructures/aviationstack/dto"
)

// MapFlights normalizes raw status records. When expected carries a route,
// records whose observed (departure, arrival) codes do not match it exactly
// are dropped: the upstream filter query can return cross-contaminated
// results for the route.
func MapFlights(data []dto.Flight, expected models.Direction) []models.FlightOption {
	options := make([]models.FlightOption, 0, len(data))
	for _, flight := range data {
		option, ok := MapFlight(flight, expected)
		if !ok {
			continue
		}
		options = append(options, option)
	}
	return options
}

func MapFlight(flight dto.Flight, expected models.Direction) (models.FlightOption, bool) {
	matching := expected.From != "" && expected.To != ""

	flightNumber := flight.Flight.IATA
	if flightNumber == "" {
		flightNumber = flight.Flight.Number
	}

	origin := firstNonEmpty(flight.Departure.IATA, flight.Departure.Airport)
	destination := firstNonEmpty(flight.Arrival.IATA, flight.Arrival.Airport)
	if matching {
		origin = strings.ToUpper(origin)
		destination = strings.ToUpper(destination)
		if origin != strings.ToUpper(expected.From) || destination != strings.ToUpper(expected.To) {
			return models.FlightOption{}, false
		}
	}

	option := models.FlightOption{
		FlightNumber:  flightNumber,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: firstNonEmpty(flight.Departure.Scheduled, flight.Departure.Estimated),
		ArrivalTime:   firstNonEmpty(flight.Arrival.Scheduled, flight.Arrival.Estimated),
		Days:          []string{},
	}
	if matching {
		// Label carries the requested pair, not the observed one.
		option.Direction = expected.Label()
	}
	return option, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
