// README: Driver trip handlers: available list, claim, start, complete.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivehire/internal/http/middleware"
	"drivehire/internal/modules/booking"
	"drivehire/internal/modules/profile"
	"drivehire/internal/types"
)

// DriverDirectory resolves a driver's display name for claims.
type DriverDirectory interface {
	Get(ctx context.Context, id types.ID) (*profile.Profile, error)
}

type DriverHandler struct {
	booking *booking.Service
	drivers DriverDirectory
}

func NewDriverHandler(bookingSvc *booking.Service, drivers DriverDirectory) *DriverHandler {
	return &DriverHandler{booking: bookingSvc, drivers: drivers}
}

// ListAvailable returns the open pool plus the caller's own active trips.
func (h *DriverHandler) ListAvailable(c *gin.Context) {
	list, err := h.booking.ListForDriver(c.Request.Context(), types.ID(middleware.CallerUID(c)))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, bookingResponse(&list[i]))
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *DriverHandler) Claim(c *gin.Context) {
	driverID := types.ID(middleware.CallerUID(c))

	var driverName string
	if p, err := h.drivers.Get(c.Request.Context(), driverID); err == nil {
		driverName = p.Name
	}

	err := h.booking.Claim(c.Request.Context(), booking.ClaimCommand{
		BookingID:  types.ID(c.Param("id")),
		DriverID:   driverID,
		DriverName: driverName,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusAssigned})
}

func (h *DriverHandler) Start(c *gin.Context) {
	err := h.booking.Start(c.Request.Context(), booking.StartCommand{
		BookingID: types.ID(c.Param("id")),
		DriverID:  types.ID(middleware.CallerUID(c)),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusInProgress})
}

func (h *DriverHandler) Complete(c *gin.Context) {
	err := h.booking.Complete(c.Request.Context(), booking.CompleteCommand{
		BookingID: types.ID(c.Param("id")),
		DriverID:  types.ID(middleware.CallerUID(c)),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusCompleted})
}
