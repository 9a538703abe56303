package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Husein100/TravelDataInternalAPI/internal/config"
)

var (
	// ErrAuthFailed means the token endpoint rejected the credentials or
	// returned a body without an access token.
	ErrAuthFailed = errors.New("amadeus: authentication failed")
	// ErrUpstream means the search endpoint returned a non-success status
	// or an undecodable body.
	ErrUpstream = errors.New("amadeus: upstream request failed")
)

// OffersQuery carries the flight-offers search parameters. ReturnDate may be
// empty for a one-way query; the provider omits the parameter in that case.
type OffersQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
}

// Client talks to the travel-data provider. The bearer token is attached to
// each outbound request instead of being set on a shared header, so
// concurrent searches cannot leak credentials across requests.
type Client struct {
	httpClient *http.Client
	cfg        config.Amadeus
	logger     *slog.Logger
}

func NewClient(cfg config.Amadeus, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		logger:     logger,
	}
}

// Token exchanges the configured credentials for a short-lived bearer token.
// Tokens are not cached; every flight search acquires a fresh one.
func (c *Client) Token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("token request rejected", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	token, ok := payload["access_token"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("%w: response missing access_token", ErrAuthFailed)
	}
	return token, nil
}

// FlightOffers issues one authenticated GET against the flight-offers
// endpoint. Non-stop offers only, capped at 20 results.
func (c *Client) FlightOffers(ctx context.Context, token string, q OffersQuery) (FlightOffersResponse, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children", strconv.Itoa(q.Children))
	params.Set("infants", strconv.Itoa(q.Infants))
	params.Set("nonStop", "true")
	params.Set("max", "20")

	requestURL := c.cfg.FlightOffersURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return FlightOffersResponse{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FlightOffersResponse{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("flight offers request failed", "status", resp.StatusCode, "body", string(body))
		return FlightOffersResponse{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out FlightOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return FlightOffersResponse{}, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return out, nil
}
