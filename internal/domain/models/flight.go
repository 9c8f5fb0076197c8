package models

// Direction is an ordered (departure, arrival) airport pair for one leg of a
// round-trip query.
type Direction struct {
	From string
	To   string
}

func (d Direction) Label() string {
	return d.From + "-" + d.To
}

// FlightOption is the normalized, upstream-agnostic flight entry returned to
// the client. Fields a given upstream variant does not populate stay empty.
type FlightOption struct {
	FlightNumber  string   `json:"flightNumber"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	PriceFrom     *float64 `json:"priceFrom,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	BookURL       string   `json:"bookUrl,omitempty"`
	Direction     string   `json:"direction,omitempty"`
	Days          []string `json:"days"`
}
