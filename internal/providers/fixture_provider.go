package providers

import (
	"context"

	"github.com/Husein100/TravelDataInternalAPI/internal/amadeus"
)

// FixtureProvider serves a static two-hotel result set in the provider's
// wire shape. The requested city is ignored for filtering. It stands in for
// the real hotel API until that integration lands.
type FixtureProvider struct{}

func NewFixtureProvider() *FixtureProvider {
	return &FixtureProvider{}
}

func (p *FixtureProvider) Name() string { return "fixture" }

func (p *FixtureProvider) SearchHotels(ctx context.Context, city, checkInDate, checkOutDate string) (amadeus.HotelSearchResponse, error) {
	return amadeus.HotelSearchResponse{
		Data: []amadeus.HotelData{
			{
				Name: strPtr("Hotel XYZ"),
				Address: &amadeus.HotelAddress{
					Country: strPtr("USA"),
					City:    strPtr("New York"),
					Line:    strPtr("123 Example Street"),
				},
				RatePlan:   &amadeus.RatePlan{Price: &amadeus.HotelPrice{Total: 150}},
				StarRating: intPtr(4),
				Facilities: []amadeus.Facility{{Name: "Wi-Fi"}, {Name: "Pool"}},
				Pictures: []amadeus.Picture{
					{URI: "https://imgservice.casai.com/500x245/moonlight-hotel-bar-resto-ht-hinche-bc-11653999-0.jpg"},
				},
			},
			{
				Name: strPtr("Hotel ABC"),
				Address: &amadeus.HotelAddress{
					Country: strPtr("France"),
					City:    strPtr("Paris"),
					Line:    strPtr("456 Example Avenue"),
				},
				RatePlan:   &amadeus.RatePlan{Price: &amadeus.HotelPrice{Total: 200}},
				StarRating: intPtr(5),
				Facilities: []amadeus.Facility{{Name: "Gym"}, {Name: "Restaurant"}},
				Pictures: []amadeus.Picture{
					{URI: "https://content.skyscnr.com/available/1395248305/1395248305_WxH.jpg"},
				},
			},
		},
	}, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
