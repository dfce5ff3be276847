// README: Location autocomplete for the booking form.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivehire/internal/maps"
)

// PlaceSearcher is the slice of the places service the handler needs.
type PlaceSearcher interface {
	Autocomplete(ctx context.Context, input, city string) ([]maps.Place, error)
}

type PlacesHandler struct {
	places PlaceSearcher
	city   string
}

func NewPlacesHandler(places PlaceSearcher, city string) *PlacesHandler {
	return &PlacesHandler{places: places, city: city}
}

func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	input := c.Query("q")
	if input == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}
	results, err := h.places.Autocomplete(c.Request.Context(), input, h.city)
	if err != nil {
		writeError(c, http.StatusBadGateway, "places lookup failed")
		return
	}
	out := make([]gin.H, 0, len(results))
	for _, p := range results {
		out = append(out, gin.H{"name": p.Name, "address": p.Address, "place_id": p.PlaceID})
	}
	writeJSON(c, http.StatusOK, gin.H{"places": out})
}
