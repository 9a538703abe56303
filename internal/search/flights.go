package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Husein100/TravelDataInternalAPI/internal/amadeus"
	"github.com/Husein100/TravelDataInternalAPI/internal/models"
	"github.com/Husein100/TravelDataInternalAPI/internal/obs"
)

// OfferClient is what the flight service needs from the upstream client.
type OfferClient interface {
	Token(ctx context.Context) (string, error)
	FlightOffers(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error)
}

// FlightService runs the authenticated search-and-normalize flow: one token
// exchange, one offers call, one pass over the result set. An error return
// means the search failed outright (auth or upstream); zero matches come
// back as an empty slice with a nil error, and callers must not conflate
// the two.
type FlightService struct {
	client  OfferClient
	metrics *obs.Metrics
	logger  *slog.Logger
}

func NewFlightService(client OfferClient, m *obs.Metrics, logger *slog.Logger) *FlightService {
	return &FlightService{client: client, metrics: m, logger: logger}
}

func (s *FlightService) Search(ctx context.Context, req *models.FlightSearchRequest) ([]RoundTripFlight, error) {
	s.metrics.IncSearches("flight")

	token, err := s.client.Token(ctx)
	if err != nil {
		s.metrics.IncTokenFailures()
		s.logger.Error("token acquisition failed", "error", err)
		return nil, err
	}

	start := time.Now()
	resp, err := s.client.FlightOffers(ctx, token, amadeus.OffersQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		Children:      req.Children,
		Infants:       req.Infants,
	})
	s.metrics.ObserveUpstreamLatency("flight_offers", time.Since(start).Seconds())
	if err != nil {
		s.metrics.IncUpstreamErrors("flight_offers")
		s.logger.Error("flight offers search failed", "origin", req.Origin, "destination", req.Destination, "error", err)
		return nil, err
	}

	roundTrips := make([]RoundTripFlight, 0, len(resp.Data))
	for _, offer := range resp.Data {
		// An offer without both an outbound and an inbound itinerary is
		// not a round trip; one-way offers are dropped silently.
		if len(offer.Itineraries) < 2 {
			continue
		}
		outbound, inbound := offer.Itineraries[0], offer.Itineraries[1]
		// A leg with no segments has nothing to report; drop the offer
		// like any other non-round-trip.
		if len(outbound.Segments) == 0 || len(inbound.Segments) == 0 {
			continue
		}
		total := fmt.Sprintf("%s %s", offer.Price.Total, offer.Price.Currency)
		roundTrips = append(roundTrips, RoundTripFlight{
			Outbound:   mapLeg(outbound, total),
			Inbound:    mapLeg(inbound, total),
			TotalPrice: total,
		})
	}

	return roundTrips, nil
}

// mapLeg reduces an itinerary to its first segment. Connecting itineraries
// are not expanded: only the first hop's endpoints and duration are
// reported. Callers must have checked the itinerary has segments.
func mapLeg(it amadeus.Itinerary, totalPrice string) FlightInfo {
	seg := it.Segments[0]
	return FlightInfo{
		DepartureAirport: seg.Departure.IataCode,
		ArrivalAirport:   seg.Arrival.IataCode,
		DepartureTime:    seg.Departure.At,
		ArrivalTime:      seg.Arrival.At,
		Duration:         seg.Duration,
		Price:            totalPrice,
	}
}
