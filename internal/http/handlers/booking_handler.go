// README: Customer booking handlers: create, get, list, cancel.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"drivehire/internal/http/middleware"
	"drivehire/internal/modules/booking"
	"drivehire/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
	drafts  *booking.DraftStore
}

func NewBookingHandler(svc *booking.Service, drafts *booking.DraftStore) *BookingHandler {
	return &BookingHandler{booking: svc, drafts: drafts}
}

type createBookingReq struct {
	CustomerName   string `json:"customer_name"`
	CustomerPhone  string `json:"customer_phone"`
	ServiceType    string `json:"service_type"`
	TripType       string `json:"trip_type"`
	PickupLocation string `json:"pickup_location"`
	Destination    string `json:"destination"`
	PickupDate     string `json:"pickup_date"`
	PickupTime     string `json:"pickup_time"`
	Duration       string `json:"duration"`
	VehicleType    string `json:"vehicle_type"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.booking.Create(c.Request.Context(), booking.CreateCommand{
		CustomerID:     types.ID(middleware.CallerUID(c)),
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		ServiceType:    booking.ServiceType(req.ServiceType),
		TripType:       booking.TripType(req.TripType),
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		PickupDate:     req.PickupDate,
		PickupTime:     req.PickupTime,
		Duration:       req.Duration,
		VehicleType:    req.VehicleType,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, bookingResponse(b))
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.booking.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	// Customers only see their own bookings.
	if string(b.CustomerID) != middleware.CallerUID(c) {
		writeError(c, http.StatusNotFound, booking.ErrNotFound.Error())
		return
	}
	writeJSON(c, http.StatusOK, bookingResponse(b))
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	list, err := h.booking.ListByCustomer(c.Request.Context(), types.ID(middleware.CallerUID(c)))
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

func (h *BookingHandler) Cancel(c *gin.Context) {
	err := h.booking.Cancel(c.Request.Context(), booking.CancelCommand{
		BookingID:  types.ID(c.Param("id")),
		CustomerID: types.ID(middleware.CallerUID(c)),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": booking.StatusCancelled})
}

type draftReq struct {
	Step  int           `json:"step"`
	Draft booking.Draft `json:"draft"`
}

// SaveDraft stores the caller's in-progress wizard state.
func (h *BookingHandler) SaveDraft(c *gin.Context) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Step < int(booking.StepServiceType) || req.Step > int(booking.StepCustomerInfo) {
		writeError(c, http.StatusBadRequest, "invalid step")
		return
	}
	err := h.drafts.Save(c.Request.Context(), types.ID(middleware.CallerUID(c)), booking.Step(req.Step), req.Draft)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "saved"})
}

// GetDraft returns the saved wizard state, or a fresh one.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	step, draft, found, err := h.drafts.Load(c.Request.Context(), types.ID(middleware.CallerUID(c)))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"step": step, "draft": draft, "found": found})
}

func (h *BookingHandler) ClearDraft(c *gin.Context) {
	if err := h.drafts.Clear(c.Request.Context(), types.ID(middleware.CallerUID(c))); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "cleared"})
}

func bookingResponse(b *booking.Booking) gin.H {
	resp := gin.H{
		"id":              b.ID,
		"customer_id":     b.CustomerID,
		"customer_name":   b.CustomerName,
		"customer_phone":  b.CustomerPhone,
		"service_type":    b.ServiceType,
		"pickup_location": b.PickupLocation,
		"pickup_date":     b.PickupDate,
		"pickup_time":     b.PickupTime,
		"vehicle_type":    b.VehicleType,
		"status":          b.Status,
		"payment_status":  b.PaymentStatus,
		"created_at":      b.CreatedAt.Format(time.RFC3339),
	}
	if b.Destination != nil {
		resp["destination"] = *b.Destination
	}
	if b.DurationHours != nil {
		resp["duration_hours"] = *b.DurationHours
	}
	if b.DurationDays != nil {
		resp["duration_days"] = *b.DurationDays
	}
	if b.DriverID != nil {
		resp["driver_id"] = *b.DriverID
	}
	if b.DriverName != nil {
		resp["driver_name"] = *b.DriverName
	}
	return resp
}
