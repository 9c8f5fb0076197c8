package dto

// Flight-status payloads: nested flight/departure/arrival sub-objects may be
// absent entirely and decode to zero values.

type FlightsResponse struct {
	Data []Flight `json:"data"`
}

type Flight struct {
	FlightDate string     `json:"flight_date"`
	Flight     FlightInfo `json:"flight"`
	Departure  Endpoint   `json:"departure"`
	Arrival    Endpoint   `json:"arrival"`
	Airline    Airline    `json:"airline"`
}

type FlightInfo struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
}

type Endpoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
}

type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}
