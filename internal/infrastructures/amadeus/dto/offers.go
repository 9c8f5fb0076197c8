package dto

// Offer-search payloads are loosely typed: every field is optional upstream
// and defaults to its zero value here.

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type OffersResponse struct {
	Data []Offer `json:"data"`
}

type Offer struct {
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
}

type Endpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}
