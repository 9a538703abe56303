package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/Husein100/TravelDataInternalAPI/internal/amadeus"
	"github.com/Husein100/TravelDataInternalAPI/internal/models"
	"github.com/Husein100/TravelDataInternalAPI/internal/obs"
	"github.com/Husein100/TravelDataInternalAPI/internal/providers"
)

const (
	unknownSentinel      = "Unknown"
	noNameSentinel       = "No name available"
	noAddressSentinel    = "No address provided"
	defaultImageURL      = "default-image-url.jpg"
	availableStatus      = "Available"
	standardRoomType     = "Standard"
	standardRoomTypeDesc = "Standard room"
)

// HotelService normalizes provider-shaped hotel records into Accommodation
// values. It never fails for an empty result set; the worst case is an
// empty slice.
type HotelService struct {
	provider providers.HotelProvider
	metrics  *obs.Metrics
	logger   *slog.Logger
}

func NewHotelService(p providers.HotelProvider, m *obs.Metrics, logger *slog.Logger) *HotelService {
	return &HotelService{provider: p, metrics: m, logger: logger}
}

func (s *HotelService) Search(ctx context.Context, req *models.HotelSearchRequest) ([]Accommodation, error) {
	s.metrics.IncSearches("hotel")
	s.logger.Info("starting hotel search", "city", req.City, "check_in", req.CheckInDate, "check_out", req.CheckOutDate)

	resp, err := s.provider.SearchHotels(ctx, req.City, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		s.metrics.IncUpstreamErrors("hotel_search")
		s.logger.Error("hotel provider failed", "provider", s.provider.Name(), "error", err)
		return nil, err
	}

	stay := lengthOfStay(req.CheckInDate, req.CheckOutDate)

	accommodations := make([]Accommodation, 0, len(resp.Data))
	for _, hotel := range resp.Data {
		accommodations = append(accommodations, mapHotel(hotel, req, stay))
	}
	return accommodations, nil
}

func mapHotel(hotel amadeus.HotelData, req *models.HotelSearchRequest, stay int) Accommodation {
	acc := Accommodation{
		Country:               unknownSentinel,
		City:                  unknownSentinel,
		Address:               noAddressSentinel,
		AccommodationName:     stringOr(hotel.Name, noNameSentinel),
		CheckInDate:           req.CheckInDate,
		CheckOutDate:          req.CheckOutDate,
		Facilities:            []string{},
		AccommodationImageURL: defaultImageURL,
		AvailableRoomsStatus:  availableStatus,
		LengthOfStay:          stay,
		RoomType:              standardRoomType,
		RoomTypeDescription:   standardRoomTypeDesc,
	}

	if hotel.Address != nil {
		acc.Country = stringOr(hotel.Address.Country, unknownSentinel)
		acc.City = stringOr(hotel.Address.City, unknownSentinel)
		acc.Address = stringOr(hotel.Address.Line, noAddressSentinel)
	}
	if hotel.RatePlan != nil && hotel.RatePlan.Price != nil {
		acc.PricePerNight = hotel.RatePlan.Price.Total
	}
	if hotel.StarRating != nil {
		acc.StarRating = *hotel.StarRating
	}
	for _, f := range hotel.Facilities {
		acc.Facilities = append(acc.Facilities, f.Name)
	}
	if len(hotel.Pictures) > 0 && hotel.Pictures[0].URI != "" {
		acc.AccommodationImageURL = hotel.Pictures[0].URI
	}
	return acc
}

// lengthOfStay is the whole-day difference between checkout and checkin.
// An inverted range yields a negative count; that is the caller's input
// echoed back, not an error.
func lengthOfStay(checkIn, checkOut string) int {
	in, errIn := time.Parse("2006-01-02", checkIn)
	out, errOut := time.Parse("2006-01-02", checkOut)
	if errIn != nil || errOut != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
