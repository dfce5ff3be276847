// README: Booking aggregate, enums, and the trip status transition table.
package booking

import (
	"time"

	"drivehire/internal/types"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type ServiceType string

const (
	ServiceHourly  ServiceType = "hourly"
	ServiceDaily   ServiceType = "daily"
	ServiceWeekly  ServiceType = "weekly"
	ServiceMonthly ServiceType = "monthly"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceHourly, ServiceDaily, ServiceWeekly, ServiceMonthly:
		return true
	}
	return false
}

// UsesDuration reports whether the service type takes a duration field
// (hours for hourly, days for daily). Weekly and monthly have fixed spans.
func (s ServiceType) UsesDuration() bool {
	return s == ServiceHourly || s == ServiceDaily
}

type TripType string

const (
	TripInsideCity TripType = "inside-city"
	TripOutstation TripType = "outstation"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking is the durable record created on wizard submission. Destination is
// nil for inside-city trips. Exactly one of DurationHours/DurationDays is set
// for hourly/daily service; both are nil otherwise.
type Booking struct {
	ID             types.ID
	CustomerID     types.ID
	CustomerName   string
	CustomerPhone  string
	ServiceType    ServiceType
	PickupLocation string
	Destination    *string
	PickupDate     string // YYYY-MM-DD
	PickupTime     string // HH:MM, 24-hour
	DurationHours  *int
	DurationDays   *int
	VehicleType    string
	DriverID       *types.ID
	DriverName     *string
	Status         Status
	PaymentStatus  PaymentStatus
	CreatedAt      time.Time
}

// AllowedTransitions is the trip lifecycle as code. Cancellation is only
// reachable before the trip starts.
var AllowedTransitions = map[Status][]Status{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
