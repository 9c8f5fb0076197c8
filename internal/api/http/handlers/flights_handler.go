package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/khwalser/nextownair-site/internal/domain/models"
	"go.uber.org/zap"
)

// FlightSearcher is the application-service surface the handler needs.
type FlightSearcher interface {
	SearchRoundTrip(ctx context.Context, origin, destination, departureDate string) ([]models.FlightOption, error)
}

type FlightsHandler struct {
	log                *zap.Logger
	service            FlightSearcher
	defaultOrigin      string
	defaultDestination string
}

func NewFlightsHandler(log *zap.Logger, service FlightSearcher, defaultOrigin, defaultDestination string) *FlightsHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return &FlightsHandler{
		log:                log,
		service:            service,
		defaultOrigin:      strings.ToUpper(defaultOrigin),
		defaultDestination: strings.ToUpper(defaultDestination),
	}
}

// GetFlights serves GET and the CORS pre-flight. Every failure past this
// point surfaces as one 500 shape; this is the only place errors become a
// wire response.
func (h *FlightsHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	origin := strings.ToUpper(strings.TrimSpace(q.Get("origin")))
	if origin == "" {
		origin = h.defaultOrigin
	}
	destination := strings.ToUpper(strings.TrimSpace(q.Get("destination")))
	if destination == "" {
		destination = h.defaultDestination
	}
	departureDate := strings.TrimSpace(q.Get("date"))
	if departureDate == "" {
		departureDate = time.Now().UTC().Format("2006-01-02")
	}

	options, err := h.service.SearchRoundTrip(r.Context(), origin, destination, departureDate)
	if err != nil {
		h.log.Error("flight search failed",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.String("date", departureDate),
			zap.Error(err),
		)
		writeFailure(w, http.StatusInternalServerError, "Failed to fetch live offers", err.Error())
		return
	}
	if options == nil {
		options = []models.FlightOption{}
	}

	writeJSON(w, http.StatusOK, options)
}
