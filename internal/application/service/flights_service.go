package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/khwalser/nextownair-site/internal/domain/models"
	"github.com/khwalser/nextownair-site/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type FlightsService struct {
	log    *zap.Logger
	source ports.OfferSource
}

func NewFlightsService(log *zap.Logger, source ports.OfferSource) *FlightsService {
	if log == nil {
		log = zap.NewNop()
	}

	return &FlightsService{
		log:    log,
		source: source,
	}
}

// SearchRoundTrip queries both directions of the route sequentially, merges
// the normalized records and sorts them by departure time. A failure on
// either direction fails the whole request; no partial results.
func (s *FlightsService) SearchRoundTrip(ctx context.Context, origin, destination, departureDate string) ([]models.FlightOption, error) {
	const op = "service.SearchRoundTrip"
	tracer := otel.Tracer("flight-proxy/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("flights.origin", origin),
		attribute.String("flights.destination", destination),
		attribute.String("flights.date", departureDate),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("date", departureDate),
	)

	directions := []models.Direction{
		{From: origin, To: destination},
		{From: destination, To: origin},
	}

	options := make([]models.FlightOption, 0, 20)
	for _, direction := range directions {
		found, err := s.source.Search(ctx, direction, departureDate)
		if err != nil {
			logger.Warn("direction fetch failed",
				zap.String("direction", direction.Label()),
				zap.Error(err),
			)
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "direction fetch failed")
			return nil, err
		}
		options = append(options, found...)
	}

	sortByDeparture(options)

	span.SetAttributes(attribute.Int("flights.options_count", len(options)))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("flight options merged", zap.Int("options", len(options)))
	return options, nil
}

// sortByDeparture orders ascending by departure time. Pairs where either side
// is empty or unparseable compare equal, so the stable sort leaves their
// relative order alone.
func sortByDeparture(options []models.FlightOption) {
	sort.SliceStable(options, func(i, j int) bool {
		ti, oki := parseDeparture(options[i].DepartureTime)
		tj, okj := parseDeparture(options[j].DepartureTime)
		if !oki || !okj {
			return false
		}
		return ti.Before(tj)
	})
}

func parseDeparture(value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
