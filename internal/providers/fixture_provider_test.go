package providers_test

import (
	"context"
	"testing"

	"github.com/Husein100/TravelDataInternalAPI/internal/providers"
)

func TestFixtureProvider_SearchHotels(t *testing.T) {
	p := providers.NewFixtureProvider()

	// the fixture ignores the requested city
	for _, city := range []string{"paris", "new york", "copenhagen"} {
		resp, err := p.SearchHotels(context.Background(), city, "2025-04-25", "2025-05-02")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", city, err)
		}
		if len(resp.Data) != 2 {
			t.Fatalf("expected 2 fixture hotels for %q, got %d", city, len(resp.Data))
		}
	}

	resp, _ := p.SearchHotels(context.Background(), "paris", "2025-04-25", "2025-05-02")
	first, second := resp.Data[0], resp.Data[1]
	if first.Name == nil || *first.Name != "Hotel XYZ" {
		t.Errorf("unexpected first hotel: %+v", first)
	}
	if second.Address == nil || second.Address.Country == nil || *second.Address.Country != "France" {
		t.Errorf("expected second hotel in France: %+v", second.Address)
	}
	if second.StarRating == nil || *second.StarRating != 5 {
		t.Errorf("expected 5-star second hotel")
	}
	if len(first.Facilities) != 2 || first.Facilities[0].Name != "Wi-Fi" {
		t.Errorf("unexpected facilities: %+v", first.Facilities)
	}
}
