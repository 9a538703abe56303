package search

// FlightInfo is one simplified leg of a round trip. Timestamps and duration
// keep the provider's string formats; Price carries the offer's total price
// display string, repeated on both legs rather than split between them.
type FlightInfo struct {
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Duration         string `json:"duration"`
	Price            string `json:"price"`
}

type RoundTripFlight struct {
	Outbound   FlightInfo `json:"outbound"`
	Inbound    FlightInfo `json:"inbound"`
	TotalPrice string     `json:"total_price"`
}

type Accommodation struct {
	Country               string   `json:"country"`
	City                  string   `json:"city"`
	Address               string   `json:"address"`
	AccommodationName     string   `json:"accommodation_name"`
	PricePerNight         float64  `json:"price_per_night"`
	StarRating            int      `json:"star_rating"`
	CheckInDate           string   `json:"check_in_date"`
	CheckOutDate          string   `json:"check_out_date"`
	Facilities            []string `json:"facilities"`
	AccommodationImageURL string   `json:"accommodation_image_url"`
	AvailableRoomsStatus  string   `json:"available_rooms_status"`
	LengthOfStay          int      `json:"length_of_stay"`
	RoomType              string   `json:"room_type"`
	RoomTypeDescription   string   `json:"room_type_description"`
}
