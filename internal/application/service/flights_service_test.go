package service

import (
	"context"
	"errors"
	"testing"

	"github.com/khwalser/nextownair-site/internal/domain/models"
	"go.uber.org/zap"
)

type fakeSource struct {
	byDirection map[string][]models.FlightOption
	err         error
	failOn      string
	calls       []models.Direction
}

func (f *fakeSource) Search(ctx context.Context, direction models.Direction, departureDate string) ([]models.FlightOption, error) {
	f.calls = append(f.calls, direction)
	if f.err != nil && (f.failOn == "" || f.failOn == direction.Label()) {
		return nil, f.err
	}
	return f.byDirection[direction.Label()], nil
}

func TestSearchRoundTrip_QueriesBothDirectionsAndMerges(t *testing.T) {
	source := &fakeSource{byDirection: map[string][]models.FlightOption{
		"APN-DTW": {{FlightNumber: "DL1", DepartureTime: "2024-01-02T10:00"}},
		"DTW-APN": {{FlightNumber: "DL2", DepartureTime: "2024-01-01T09:00"}},
	}}
	svc := NewFlightsService(zap.NewNop(), source)

	got, err := svc.SearchRoundTrip(context.Background(), "APN", "DTW", "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(source.calls) != 2 {
		t.Fatalf("expected 2 directional fetches, got %d", len(source.calls))
	}
	if source.calls[0].Label() != "APN-DTW" || source.calls[1].Label() != "DTW-APN" {
		t.Fatalf("unexpected directions: %v", source.calls)
	}
	if len(got) != 2 {
		t.Fatalf("expected merged results, got %d", len(got))
	}
	if got[0].FlightNumber != "DL2" || got[1].FlightNumber != "DL1" {
		t.Fatalf("expected chronological order, got %v then %v", got[0].FlightNumber, got[1].FlightNumber)
	}
}

func TestSearchRoundTrip_FailureAbortsWholeRequest(t *testing.T) {
	wantErr := errors.New("boom")
	source := &fakeSource{
		byDirection: map[string][]models.FlightOption{
			"APN-DTW": {{FlightNumber: "DL1"}},
		},
		err:    wantErr,
		failOn: "DTW-APN",
	}
	svc := NewFlightsService(nil, source)

	got, err := svc.SearchRoundTrip(context.Background(), "APN", "DTW", "2024-01-01")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
	if got != nil {
		t.Fatalf("no partial results on failure, got %v", got)
	}
}

func TestSortByDeparture_EmptyTimesCompareEqual(t *testing.T) {
	options := []models.FlightOption{
		{FlightNumber: "B", DepartureTime: "2024-01-02T10:00"},
		{FlightNumber: "A", DepartureTime: "2024-01-01T09:00"},
		{FlightNumber: "X", DepartureTime: ""},
	}

	sortByDeparture(options)

	posA, posB := -1, -1
	for i, o := range options {
		switch o.FlightNumber {
		case "A":
			posA = i
		case "B":
			posB = i
		}
	}
	if posA > posB {
		t.Fatalf("timed records out of order: %+v", options)
	}
}

func TestSortByDeparture_StableForUnparseable(t *testing.T) {
	options := []models.FlightOption{
		{FlightNumber: "1", DepartureTime: "garbage"},
		{FlightNumber: "2", DepartureTime: ""},
		{FlightNumber: "3", DepartureTime: "also-garbage"},
	}

	sortByDeparture(options)

	for i, want := range []string{"1", "2", "3"} {
		if options[i].FlightNumber != want {
			t.Fatalf("stable sort reordered equal records: %+v", options)
		}
	}
}

func TestParseDeparture_Layouts(t *testing.T) {
	for _, value := range []string{
		"2024-06-01T08:00:00+00:00",
		"2024-06-01T08:00:00",
		"2024-06-01T08:00",
		"2024-06-01 08:00:00",
		"2024-06-01",
	} {
		if _, ok := parseDeparture(value); !ok {
			t.Fatalf("expected %q to parse", value)
		}
	}
	if _, ok := parseDeparture("tomorrow-ish"); ok {
		t.Fatal("expected unparseable value to report not-ok")
	}
}
