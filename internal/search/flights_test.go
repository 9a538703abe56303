package search_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Husein100/TravelDataInternalAPI/internal/amadeus"
	"github.com/Husein100/TravelDataInternalAPI/internal/models"
	"github.com/Husein100/TravelDataInternalAPI/internal/obs"
	"github.com/Husein100/TravelDataInternalAPI/internal/search"
	"github.com/prometheus/client_golang/prometheus"
)

type mockOfferClient struct {
	tokenFunc  func(ctx context.Context) (string, error)
	offersFunc func(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error)

	offersCalled bool
}

func (m *mockOfferClient) Token(ctx context.Context) (string, error) {
	if m.tokenFunc != nil {
		return m.tokenFunc(ctx)
	}
	return "tok", nil
}

func (m *mockOfferClient) FlightOffers(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error) {
	m.offersCalled = true
	if m.offersFunc != nil {
		return m.offersFunc(ctx, token, q)
	}
	return amadeus.FlightOffersResponse{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMetrics() *obs.Metrics {
	return obs.NewMetrics(prometheus.NewRegistry())
}

func roundTripOffer(total, currency string) amadeus.FlightOffer {
	return amadeus.FlightOffer{
		Type:   "flight-offer",
		ID:     "1",
		Source: "GDS",
		Itineraries: []amadeus.Itinerary{
			{Segments: []amadeus.Segment{{
				Departure:   amadeus.FlightPoint{IataCode: "CPH", At: "2025-04-25T10:00:00"},
				Arrival:     amadeus.FlightPoint{IataCode: "BER", At: "2025-04-25T12:00:00"},
				CarrierCode: "SK",
				Duration:    "PT2H",
			}}},
			{Segments: []amadeus.Segment{{
				Departure:   amadeus.FlightPoint{IataCode: "BER", At: "2025-05-02T14:00:00"},
				Arrival:     amadeus.FlightPoint{IataCode: "CPH", At: "2025-05-02T16:00:00"},
				CarrierCode: "SK",
				Duration:    "PT2H",
			}}},
		},
		Price: amadeus.Price{Currency: currency, Total: total},
	}
}

func flightRequest() *models.FlightSearchRequest {
	return &models.FlightSearchRequest{
		Origin:        "CPH",
		Destination:   "BER",
		DepartureDate: "2025-04-25",
		ReturnDate:    "2025-05-02",
		Adults:        1,
	}
}

func TestFlightService_Search_RoundTripScenario(t *testing.T) {
	client := &mockOfferClient{
		offersFunc: func(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error) {
			if token != "tok" {
				t.Errorf("expected acquired token to be passed through, got %q", token)
			}
			if q.Origin != "CPH" || q.Destination != "BER" {
				t.Errorf("unexpected query %+v", q)
			}
			return amadeus.FlightOffersResponse{Data: []amadeus.FlightOffer{roundTripOffer("199.50", "EUR")}}, nil
		},
	}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	results, err := svc.Search(context.Background(), flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 round trip, got %d", len(results))
	}

	rt := results[0]
	if rt.TotalPrice != "199.50 EUR" {
		t.Errorf("expected total price %q, got %q", "199.50 EUR", rt.TotalPrice)
	}
	if rt.Outbound.DepartureAirport != "CPH" || rt.Outbound.ArrivalAirport != "BER" {
		t.Errorf("unexpected outbound leg: %+v", rt.Outbound)
	}
	if rt.Inbound.DepartureAirport != "BER" || rt.Inbound.ArrivalAirport != "CPH" {
		t.Errorf("unexpected inbound leg: %+v", rt.Inbound)
	}
	if rt.Outbound.Duration != "PT2H" {
		t.Errorf("expected provider duration preserved, got %q", rt.Outbound.Duration)
	}
	if rt.Outbound.Price != "199.50 EUR" || rt.Inbound.Price != "199.50 EUR" {
		t.Errorf("expected total price repeated on both legs: %+v", rt)
	}
}

func TestFlightService_Search_ConnectingLegReportsFirstSegmentOnly(t *testing.T) {
	offer := roundTripOffer("500.00", "EUR")
	// outbound via FRA: the leg must report the CPH->FRA hop, not the
	// connection or the full CPH->BER journey
	offer.Itineraries[0] = amadeus.Itinerary{Segments: []amadeus.Segment{
		{
			Departure:   amadeus.FlightPoint{IataCode: "CPH", At: "2025-04-25T08:00:00"},
			Arrival:     amadeus.FlightPoint{IataCode: "FRA", At: "2025-04-25T09:30:00"},
			CarrierCode: "LH",
			Duration:    "PT1H30M",
		},
		{
			Departure:   amadeus.FlightPoint{IataCode: "FRA", At: "2025-04-25T11:00:00"},
			Arrival:     amadeus.FlightPoint{IataCode: "BER", At: "2025-04-25T12:00:00"},
			CarrierCode: "LH",
			Duration:    "PT1H",
		},
	}}

	client := &mockOfferClient{
		offersFunc: func(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error) {
			return amadeus.FlightOffersResponse{Data: []amadeus.FlightOffer{offer}}, nil
		},
	}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	results, err := svc.Search(context.Background(), flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 round trip, got %d", len(results))
	}

	out := results[0].Outbound
	if out.DepartureAirport != "CPH" || out.ArrivalAirport != "FRA" {
		t.Errorf("expected first segment endpoints CPH->FRA, got %s->%s", out.DepartureAirport, out.ArrivalAirport)
	}
	if out.DepartureTime != "2025-04-25T08:00:00" || out.ArrivalTime != "2025-04-25T09:30:00" {
		t.Errorf("expected first segment times, got %q -> %q", out.DepartureTime, out.ArrivalTime)
	}
	if out.Duration != "PT1H30M" {
		t.Errorf("expected first segment duration PT1H30M, got %q", out.Duration)
	}
}

func TestFlightService_Search_DropsOffersWithSegmentlessLeg(t *testing.T) {
	broken := roundTripOffer("250.00", "EUR")
	broken.Itineraries[0] = amadeus.Itinerary{}

	client := &mockOfferClient{
		offersFunc: func(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error) {
			return amadeus.FlightOffersResponse{Data: []amadeus.FlightOffer{
				broken,
				roundTripOffer("640.00", "EUR"),
			}}, nil
		},
	}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	results, err := svc.Search(context.Background(), flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected segmentless offer to be dropped, got %d results", len(results))
	}
	if results[0].TotalPrice != "640.00 EUR" {
		t.Errorf("expected surviving offer at 640.00 EUR, got %q", results[0].TotalPrice)
	}
}

func TestFlightService_Search_DropsOneWayOffers(t *testing.T) {
	oneWay := roundTripOffer("100.00", "EUR")
	oneWay.Itineraries = oneWay.Itineraries[:1]

	client := &mockOfferClient{
		offersFunc: func(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error) {
			return amadeus.FlightOffersResponse{Data: []amadeus.FlightOffer{
				oneWay,
				roundTripOffer("640.00", "EUR"),
			}}, nil
		},
	}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	results, err := svc.Search(context.Background(), flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one-way offer to be dropped, got %d results", len(results))
	}
	if results[0].TotalPrice != "640.00 EUR" {
		t.Errorf("expected surviving offer at 640.00 EUR, got %q", results[0].TotalPrice)
	}
}

func TestFlightService_Search_UsesFirstTwoItineraries(t *testing.T) {
	offer := roundTripOffer("300.00", "DKK")
	// a third itinerary must be ignored, not mapped
	offer.Itineraries = append(offer.Itineraries, amadeus.Itinerary{
		Segments: []amadeus.Segment{{
			Departure: amadeus.FlightPoint{IataCode: "OSL"},
			Arrival:   amadeus.FlightPoint{IataCode: "ARN"},
		}},
	})

	client := &mockOfferClient{
		offersFunc: func(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error) {
			return amadeus.FlightOffersResponse{Data: []amadeus.FlightOffer{offer}}, nil
		},
	}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	results, err := svc.Search(context.Background(), flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 round trip, got %d", len(results))
	}
	if results[0].Outbound.DepartureAirport != "CPH" || results[0].Inbound.DepartureAirport != "BER" {
		t.Errorf("expected first two itineraries mapped in order: %+v", results[0])
	}
}

func TestFlightService_Search_TokenFailure(t *testing.T) {
	client := &mockOfferClient{
		tokenFunc: func(ctx context.Context) (string, error) {
			return "", amadeus.ErrAuthFailed
		},
	}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	results, err := svc.Search(context.Background(), flightRequest())
	if !errors.Is(err, amadeus.ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
	if results != nil {
		t.Fatalf("expected no partial results on auth failure, got %+v", results)
	}
	if client.offersCalled {
		t.Fatal("offers endpoint must not be called without a token")
	}
}

func TestFlightService_Search_UpstreamFailure(t *testing.T) {
	client := &mockOfferClient{
		offersFunc: func(ctx context.Context, token string, q amadeus.OffersQuery) (amadeus.FlightOffersResponse, error) {
			return amadeus.FlightOffersResponse{}, amadeus.ErrUpstream
		},
	}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	_, err := svc.Search(context.Background(), flightRequest())
	if !errors.Is(err, amadeus.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFlightService_Search_EmptyResultIsNotAnError(t *testing.T) {
	client := &mockOfferClient{}

	svc := search.NewFlightService(client, testMetrics(), testLogger())

	results, err := svc.Search(context.Background(), flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", results)
	}
}
