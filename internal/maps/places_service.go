// README: Google Places lookups for pickup and destination suggestions.
package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Place is a simplified location suggestion for the booking form.
type Place struct {
	Name    string
	Address string
	PlaceID string
}

const maxSuggestions = 5

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Autocomplete suggests addresses matching the free-text input. city biases
// the search but never restricts it; outstation trips leave the city.
func (s *PlacesService) Autocomplete(ctx context.Context, input, city string) ([]Place, error) {
	query := strings.TrimSpace(input)
	if query == "" {
		return nil, nil
	}
	if city != "" {
		query = fmt.Sprintf("%s near %s", query, city)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Language: "en",
		Region:   "IN",
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, r := range resp.Results {
		results = append(results, Place{
			Name:    r.Name,
			Address: r.FormattedAddress,
			PlaceID: r.PlaceID,
		})
		if len(results) >= maxSuggestions {
			break
		}
	}
	return results, nil
}
