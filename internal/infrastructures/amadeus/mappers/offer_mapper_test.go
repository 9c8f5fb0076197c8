package mappers

import (
	"testing"

	"github.com/khwalser/nextownair-site/internal/domain/models"
	"github.com/khwalser/nextownair-site/internal/infrastructures/amadeus/dto"
)

func TestMapOffer_MultiLegUsesOuterEndpoints(t *testing.T) {
	offer := dto.Offer{
		Itineraries: []dto.Itinerary{{
			Segments: []dto.Segment{
				{
					Departure:   dto.Endpoint{IataCode: "APN", At: "2024-06-01T08:00:00"},
					Arrival:     dto.Endpoint{IataCode: "ORD", At: "2024-06-01T09:10:00"},
					CarrierCode: "DL",
					Number:      "4820",
				},
				{
					Departure: dto.Endpoint{IataCode: "ORD", At: "2024-06-01T10:30:00"},
					Arrival:   dto.Endpoint{IataCode: "DTW", At: "2024-06-01T12:45:00"},
				},
			},
		}},
		Price: dto.Price{Total: "189.40", Currency: "USD"},
	}

	got, ok := MapOffer(offer, models.Direction{From: "APN", To: "DTW"}, "2024-06-01")
	if !ok {
		t.Fatal("expected offer to map")
	}
	if got.FlightNumber != "DL4820" {
		t.Fatalf("unexpected flight number: %q", got.FlightNumber)
	}
	if got.Origin != "APN" || got.Destination != "DTW" {
		t.Fatalf("unexpected route: %s-%s", got.Origin, got.Destination)
	}
	if got.DepartureTime != "2024-06-01T08:00:00" || got.ArrivalTime != "2024-06-01T12:45:00" {
		t.Fatalf("unexpected times: %q / %q", got.DepartureTime, got.ArrivalTime)
	}
	if got.PriceFrom == nil || *got.PriceFrom != 189.40 {
		t.Fatalf("unexpected price: %v", got.PriceFrom)
	}
	if got.BookURL != "https://www.kayak.com/flights/APN-DTW/2024-06-01?sort=bestflight_a" {
		t.Fatalf("unexpected book url: %q", got.BookURL)
	}
}

func TestMapOffer_CarrierOnlyFlightNumber(t *testing.T) {
	offer := dto.Offer{
		Itineraries: []dto.Itinerary{{
			Segments: []dto.Segment{{CarrierCode: "DL"}},
		}},
	}

	got, ok := MapOffer(offer, models.Direction{From: "APN", To: "DTW"}, "2024-06-01")
	if !ok {
		t.Fatal("expected offer to map")
	}
	if got.FlightNumber != "DL" {
		t.Fatalf("unexpected flight number: %q", got.FlightNumber)
	}
}

func TestMapOffer_FallsBackToRequestedDirection(t *testing.T) {
	offer := dto.Offer{
		Itineraries: []dto.Itinerary{{
			Segments: []dto.Segment{{CarrierCode: "DL", Number: "1"}},
		}},
	}

	got, ok := MapOffer(offer, models.Direction{From: "DTW", To: "APN"}, "2024-06-01")
	if !ok {
		t.Fatal("expected offer to map")
	}
	if got.Origin != "DTW" || got.Destination != "APN" {
		t.Fatalf("expected direction fallback, got %s-%s", got.Origin, got.Destination)
	}
	if got.BookURL != "https://www.kayak.com/flights/DTW-APN/2024-06-01?sort=bestflight_a" {
		t.Fatalf("unexpected book url: %q", got.BookURL)
	}
}

func TestMapOffer_DropsMalformedOffers(t *testing.T) {
	if _, ok := MapOffer(dto.Offer{}, models.Direction{From: "APN", To: "DTW"}, "2024-06-01"); ok {
		t.Fatal("offer with no itineraries should be dropped")
	}

	noSegments := dto.Offer{Itineraries: []dto.Itinerary{{}}}
	if _, ok := MapOffer(noSegments, models.Direction{From: "APN", To: "DTW"}, "2024-06-01"); ok {
		t.Fatal("offer with empty first itinerary should be dropped")
	}
}

func TestMapOffer_DefaultsCurrencyAndNilPrice(t *testing.T) {
	offer := dto.Offer{
		Itineraries: []dto.Itinerary{{
			Segments: []dto.Segment{{CarrierCode: "NK"}},
		}},
	}

	got, _ := MapOffer(offer, models.Direction{From: "APN", To: "DTW"}, "2024-06-01")
	if got.PriceFrom != nil {
		t.Fatalf("expected nil price, got %v", *got.PriceFrom)
	}
	if got.Currency != "USD" {
		t.Fatalf("expected USD default, got %q", got.Currency)
	}
	if got.Days == nil || len(got.Days) != 0 {
		t.Fatalf("expected empty days slice, got %v", got.Days)
	}
}

func TestMapOffers_SkipsOnlyMalformedEntries(t *testing.T) {
	data := []dto.Offer{
		{},
		{Itineraries: []dto.Itinerary{{Segments: []dto.Segment{{CarrierCode: "DL", Number: "7"}}}}},
		{Itineraries: []dto.Itinerary{{}}},
	}

	got := MapOffers(data, models.Direction{From: "APN", To: "DTW"}, "2024-06-01")
	if len(got) != 1 {
		t.Fatalf("expected 1 option, got %d", len(got))
	}
	if got[0].FlightNumber != "DL7" {
		t.Fatalf("unexpected option: %+v", got[0])
	}
}

func TestBuildSearchLink(t *testing.T) {
	want := "https://www.kayak.com/flights/APN-DTW/2024-06-01?sort=bestflight_a"
	if got := BuildSearchLink("APN", "DTW", "2024-06-01"); got != want {
		t.Fatalf("unexpected link: %q", got)
	}

	for _, args := range [][3]string{
		{"", "DTW", "2024-06-01"},
		{"APN", "", "2024-06-01"},
		{"APN", "DTW", ""},
	} {
		if got := BuildSearchLink(args[0], args[1], args[2]); got != "" {
			t.Fatalf("expected empty link for %v, got %q", args, got)
		}
	}
}
