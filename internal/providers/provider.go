package providers

import (
	"context"

	"github.com/Husein100/TravelDataInternalAPI/internal/amadeus"
)

// HotelProvider returns provider-shaped hotel records for a city and stay.
// The search service maps whatever comes back into Accommodation values, so
// a live hotel API client can replace the fixture without touching the
// handler contract.
type HotelProvider interface {
	SearchHotels(ctx context.Context, city, checkInDate, checkOutDate string) (amadeus.HotelSearchResponse, error)
	Name() string
}
