package mappers

import (
	"fmt"
	"strconv"

	"github.com/khwalser/nextownair-site/internal/domain/models"
	"github.com/khwalser/nextownair-site/internal/infrastructures/amadeus/dto"
)

const searchLinkHost = "https://www.kayak.com"

// MapOffers normalizes raw offers for one direction. Offers with no
// itineraries or no segments in the first itinerary are dropped.
func MapOffers(data []dto.Offer, direction models.Direction, departureDate string) []models.FlightOption {
	options := make([]models.FlightOption, 0, len(data))
	for _, offer := range data {
		option, ok := MapOffer(offer, direction, departureDate)
		if !ok {
			continue
		}
		options = append(options, option)
	}
	return options
}

// MapOffer takes the first segment of the first itinerary for departure info
// and the last segment of that itinerary for arrival info, so a multi-leg
// connection collapses to its outer endpoints.
func MapOffer(offer dto.Offer, direction models.Direction, departureDate string) (models.FlightOption, bool) {
	if len(offer.Itineraries) == 0 {
		return models.FlightOption{}, false
	}
	segments := offer.Itineraries[0].Segments
	if len(segments) == 0 {
		return models.FlightOption{}, false
	}

	first := segments[0]
	last := segments[len(segments)-1]

	flightNumber := first.CarrierCode
	if first.Number != "" {
		flightNumber = first.CarrierCode + first.Number
	}

	origin := first.Departure.IataCode
	if origin == "" {
		origin = direction.From
	}
	destination := last.Arrival.IataCode
	if destination == "" {
		destination = direction.To
	}

	var priceFrom *float64
	if offer.Price.Total != "" {
		if total, err := strconv.ParseFloat(offer.Price.Total, 64); err == nil {
			priceFrom = &total
		}
	}
	currency := offer.Price.Currency
	if currency == "" {
		currency = "USD"
	}

	return models.FlightOption{
		FlightNumber:  flightNumber,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: first.Departure.At,
		ArrivalTime:   last.Arrival.At,
		PriceFrom:     priceFrom,
		Currency:      currency,
		BookURL:       BuildSearchLink(origin, destination, departureDate),
		Days:          []string{},
	}, true
}

// BuildSearchLink derives the meta-search deep link for a route and date.
// Returns "" when any part is missing.
func BuildSearchLink(origin, destination, date string) string {
	if origin == "" || destination == "" || date == "" {
		return ""
	}
	return fmt.Sprintf("%s/flights/%s-%s/%s?sort=bestflight_a", searchLinkHost, origin, destination, date)
}
