package amadeus

// Wire shapes for the flight-offers search response. Only the fields the
// mapping layer reads are declared; everything else in the provider payload
// is ignored during decoding.

type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

type FlightOffer struct {
	Type        string      `json:"type"`
	ID          string      `json:"id"`
	Source      string      `json:"source"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

type Itinerary struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightPoint `json:"departure"`
	Arrival     FlightPoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Duration    string      `json:"duration"`
}

// FlightPoint keeps the provider's timestamp format as-is; At is an opaque
// string like "2025-04-25T10:00:00".
type FlightPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// Hotel search wire shapes. Optional fields are pointers so the mapper can
// tell "absent" from "zero" and apply its documented fallbacks.

type HotelSearchResponse struct {
	Data []HotelData `json:"data"`
}

type HotelData struct {
	Name       *string       `json:"name"`
	Address    *HotelAddress `json:"address"`
	RatePlan   *RatePlan     `json:"ratePlan"`
	StarRating *int          `json:"starRating"`
	Facilities []Facility    `json:"facilities"`
	Pictures   []Picture     `json:"pictures"`
}

type HotelAddress struct {
	Country *string `json:"country"`
	City    *string `json:"city"`
	Line    *string `json:"line"`
}

type RatePlan struct {
	Price *HotelPrice `json:"price"`
}

type HotelPrice struct {
	Total float64 `json:"total"`
}

type Facility struct {
	Name string `json:"name"`
}

type Picture struct {
	URI string `json:"uri"`
}
