package http

import (
	"context"
	"net/http"

	"github.com/Husein100/TravelDataInternalAPI/internal/models"
	"github.com/Husein100/TravelDataInternalAPI/internal/search"
	"github.com/google/uuid"
)

type FlightSearcher interface {
	Search(ctx context.Context, req *models.FlightSearchRequest) ([]search.RoundTripFlight, error)
}

type HotelSearcher interface {
	Search(ctx context.Context, req *models.HotelSearchRequest) ([]search.Accommodation, error)
}

type Handler struct {
	flights FlightSearcher
	hotels  HotelSearcher
}

func NewHandler(flights FlightSearcher, hotels HotelSearcher) *Handler {
	return &Handler{flights: flights, hotels: hotels}
}

// SearchFlights handles GET /api/flights/search. Auth/upstream failures and
// genuinely empty result sets both surface as 404; the services keep them
// distinct internally.
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestID(r)

	q := r.URL.Query()
	req, err := models.NewFlightSearchRequest(
		q.Get("origin"),
		q.Get("destination"),
		q.Get("date"),
		q.Get("returnDate"),
		q.Get("adults"),
		q.Get("children"),
		q.Get("infants"),
	)
	if err != nil {
		BadRequest(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	if err := req.Validate(); err != nil {
		BadRequest(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	results, err := h.flights.Search(ctx, req)
	if err != nil || len(results) == 0 {
		NotFound(w, "no flights found", map[string]string{"request_id": reqID})
		return
	}

	WriteJSON(w, http.StatusOK, results)
}

// SearchHotels handles GET /api/hotels/search.
func (h *Handler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestID(r)

	q := r.URL.Query()
	req, err := models.NewHotelSearchRequest(
		q.Get("city"),
		q.Get("checkInDate"),
		q.Get("checkOutDate"),
	)
	if err != nil {
		BadRequest(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	if err := req.Validate(); err != nil {
		BadRequest(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}

	results, err := h.hotels.Search(ctx, req)
	if err != nil {
		InternalError(w, err.Error(), map[string]string{"request_id": reqID})
		return
	}
	if len(results) == 0 {
		NotFound(w, "no hotels found", map[string]string{"request_id": reqID})
		return
	}

	WriteJSON(w, http.StatusOK, results)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// chi's middleware.RequestID sets X-Request-Id header
func requestID(r *http.Request) string {
	reqID := r.Header.Get("X-Request-Id")
	if reqID == "" {
		reqID = uuid.New().String()
	}
	return reqID
}
