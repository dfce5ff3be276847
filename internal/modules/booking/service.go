// README: Booking service: creation, driver claim, and lifecycle transitions.
package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"drivehire/internal/types"
)

var (
	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("booking not found")
	ErrInvalidState      = errors.New("invalid state transition")
	ErrConflict          = errors.New("booking state conflict")
	ErrAlreadyTaken      = errors.New("booking already taken")
	ErrDriverNotVerified = errors.New("driver documents not verified")
	ErrNotBookingDriver  = errors.New("booking assigned to another driver")
)

// DriverGate answers whether a driver may claim trips. Implemented by the
// profile service; checked before any write is attempted.
type DriverGate interface {
	DocumentsVerified(ctx context.Context, driverID types.ID) (bool, error)
}

type Service struct {
	store *Store
	gate  DriverGate
}

func NewService(store *Store, gate DriverGate) *Service {
	return &Service{store: store, gate: gate}
}

type CreateCommand struct {
	CustomerID     types.ID
	CustomerName   string
	CustomerPhone  string
	ServiceType    ServiceType
	TripType       TripType
	PickupLocation string
	Destination    string
	PickupDate     string
	PickupTime     string
	Duration       string // raw form value; hours or days per service type
	VehicleType    string
}

type ClaimCommand struct {
	BookingID  types.ID
	DriverID   types.ID
	DriverName string
}

type StartCommand struct {
	BookingID types.ID
	DriverID  types.ID
}

type CompleteCommand struct {
	BookingID types.ID
	DriverID  types.ID
}

type CancelCommand struct {
	BookingID  types.ID
	CustomerID types.ID
}

// Create persists a new booking in pending status with no driver. Validation
// mirrors the wizard's step guards; a request that skipped the wizard gets the
// same checks server-side.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.CustomerID == "" || !cmd.ServiceType.Valid() {
		return nil, ErrBadRequest
	}
	if cmd.PickupLocation == "" {
		return nil, ErrBadRequest
	}
	if cmd.TripType == TripOutstation && cmd.Destination == "" {
		return nil, ErrBadRequest
	}
	if cmd.PickupDate == "" || cmd.PickupTime == "" || cmd.VehicleType == "" {
		return nil, ErrBadRequest
	}
	if cmd.CustomerName == "" || digitCount(cmd.CustomerPhone) < 10 {
		return nil, ErrBadRequest
	}

	var destination *string
	if cmd.TripType == TripOutstation {
		destination = &cmd.Destination
	}

	var durationHours, durationDays *int
	if cmd.ServiceType.UsesDuration() && cmd.Duration != "" {
		if n, err := strconv.Atoi(cmd.Duration); err == nil && n > 0 {
			if cmd.ServiceType == ServiceHourly {
				durationHours = &n
			} else {
				durationDays = &n
			}
		}
	}

	b := &Booking{
		ID:             newID(),
		CustomerID:     cmd.CustomerID,
		CustomerName:   cmd.CustomerName,
		CustomerPhone:  cmd.CustomerPhone,
		ServiceType:    cmd.ServiceType,
		PickupLocation: cmd.PickupLocation,
		Destination:    destination,
		PickupDate:     cmd.PickupDate,
		PickupTime:     cmd.PickupTime,
		DurationHours:  durationHours,
		DurationDays:   durationDays,
		VehicleType:    cmd.VehicleType,
		Status:         StatusPending,
		PaymentStatus:  PaymentPending,
		CreatedAt:      time.Now(),
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Claim assigns an open-pool booking to a verified driver. Losing the race is
// an expected outcome, reported as ErrAlreadyTaken so the caller can refresh
// and try another trip.
func (s *Service) Claim(ctx context.Context, cmd ClaimCommand) error {
	if cmd.BookingID == "" || cmd.DriverID == "" {
		return ErrBadRequest
	}
	verified, err := s.gate.DocumentsVerified(ctx, cmd.DriverID)
	if err != nil {
		return err
	}
	if !verified {
		return ErrDriverNotVerified
	}

	ok, err := s.store.Claim(ctx, cmd.BookingID, cmd.DriverID, cmd.DriverName)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	// Zero rows: either the booking is gone or another driver won.
	if _, err := s.store.Get(ctx, cmd.BookingID); err != nil {
		return err
	}
	return ErrAlreadyTaken
}

// Start moves an assigned booking into in_progress. No UI triggers this today;
// it is exposed for the assigned driver as part of the lifecycle.
func (s *Service) Start(ctx context.Context, cmd StartCommand) error {
	return s.driverTransition(ctx, cmd.BookingID, cmd.DriverID, StatusInProgress)
}

// Complete finishes a trip from assigned or in_progress.
func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) error {
	return s.driverTransition(ctx, cmd.BookingID, cmd.DriverID, StatusCompleted)
}

func (s *Service) driverTransition(ctx context.Context, id, driverID types.ID, to Status) error {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if b.DriverID == nil || *b.DriverID != driverID {
		return ErrNotBookingDriver
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, id, b.Status, to)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	return nil
}

// Cancel is customer-initiated and allowed only before the trip starts.
// Driver fields are left as-is.
func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	b, err := s.store.Get(ctx, cmd.BookingID)
	if err != nil {
		return err
	}
	if cmd.CustomerID != "" && b.CustomerID != cmd.CustomerID {
		return ErrNotFound
	}
	if !CanTransition(b.Status, StatusCancelled) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, cmd.BookingID, b.Status, StatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID types.ID) ([]Booking, error) {
	return s.store.ListByCustomer(ctx, customerID)
}

func (s *Service) ListForDriver(ctx context.Context, driverID types.ID) ([]Booking, error) {
	return s.store.ListForDriver(ctx, driverID)
}

func digitCount(s string) int {
	n := 0
	for _, c := range s {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
