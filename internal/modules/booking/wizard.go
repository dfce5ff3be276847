// README: Four-step booking wizard: per-step guards, back navigation, submit.
package booking

import (
	"context"
	"errors"
	"sync"

	"drivehire/internal/tariff"
	"drivehire/internal/types"
)

type Step int

const (
	StepServiceType Step = iota + 1
	StepTripDetails
	StepSchedule
	StepCustomerInfo
)

const lastStep = StepCustomerInfo

var (
	ErrIncompleteStep = errors.New("step requirements not met")
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// Draft is the transient wizard state. It is never persisted as a booking;
// abandonment simply discards it.
type Draft struct {
	ServiceType    ServiceType `json:"service_type"`
	TripType       TripType    `json:"trip_type"`
	PickupLocation string      `json:"pickup_location"`
	Destination    string      `json:"destination"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	Duration       string      `json:"duration"`
	VehicleType    string      `json:"vehicle_type"`
	CustomerName   string      `json:"customer_name"`
	CustomerPhone  string      `json:"customer_phone"`
}

// NewDraft returns the wizard's initial state. Trip type defaults to
// inside-city, matching the booking form.
func NewDraft() Draft {
	return Draft{TripType: TripInsideCity}
}

// StepComplete is the advancement guard for one step.
func (d Draft) StepComplete(step Step) bool {
	switch step {
	case StepServiceType:
		return d.ServiceType.Valid()
	case StepTripDetails:
		return d.PickupLocation != "" && (d.TripType == TripInsideCity || d.Destination != "")
	case StepSchedule:
		return d.Date != "" && d.Time != "" && d.VehicleType != ""
	case StepCustomerInfo:
		return d.CustomerName != "" && digitCount(d.CustomerPhone) >= 10
	}
	return false
}

// Submitter persists a completed draft. *Service satisfies it.
type Submitter interface {
	Create(ctx context.Context, cmd CreateCommand) (*Booking, error)
}

// Wizard drives a single customer's booking flow. Forward movement requires
// the current step's guard; going back never re-validates.
type Wizard struct {
	mu         sync.Mutex
	customerID types.ID
	step       Step
	draft      Draft
	inFlight   bool
	submitter  Submitter
}

func NewWizard(submitter Submitter, customerID types.ID) *Wizard {
	return &Wizard{
		customerID: customerID,
		step:       StepServiceType,
		draft:      NewDraft(),
		submitter:  submitter,
	}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Edit mutates draft fields. Field-level edits are always allowed; guards
// apply only when advancing.
func (w *Wizard) Edit(fn func(*Draft)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.draft)
}

// Restore replaces the wizard state, e.g. from a saved draft.
func (w *Wizard) Restore(step Step, draft Draft) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if step < StepServiceType || step > lastStep {
		step = StepServiceType
	}
	w.step = step
	w.draft = draft
}

func (w *Wizard) CanProceed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.StepComplete(w.step)
}

func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step >= lastStep {
		return ErrIncompleteStep
	}
	if !w.draft.StepComplete(w.step) {
		return ErrIncompleteStep
	}
	w.step++
	return nil
}

func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepServiceType {
		w.step--
	}
}

// Pricing looks up the selected vehicle's tariff for display. A miss is not an
// error: the pricing panel is simply omitted and the step stays usable.
func (w *Wizard) Pricing() (tariff.Tariff, bool) {
	w.mu.Lock()
	vt := w.draft.VehicleType
	w.mu.Unlock()
	if vt == "" {
		return tariff.Tariff{}, false
	}
	return tariff.Lookup(vt)
}

// SubmitEnabled reports whether the terminal action is available.
func (w *Wizard) SubmitEnabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step == lastStep && w.draft.StepComplete(lastStep) && !w.inFlight
}

// Submit persists the draft as a booking. A second submit while one is in
// flight is suppressed. Success clears the draft and resets to step 1;
// failure leaves the draft unchanged so the user can retry.
func (w *Wizard) Submit(ctx context.Context) (*Booking, error) {
	w.mu.Lock()
	if w.step != lastStep || !w.draft.StepComplete(lastStep) {
		w.mu.Unlock()
		return nil, ErrIncompleteStep
	}
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	w.inFlight = true
	cmd := w.draft.createCommand(w.customerID)
	w.mu.Unlock()

	b, err := w.submitter.Create(ctx, cmd)

	w.mu.Lock()
	w.inFlight = false
	if err == nil {
		w.draft = NewDraft()
		w.step = StepServiceType
	}
	w.mu.Unlock()

	return b, err
}

func (d Draft) createCommand(customerID types.ID) CreateCommand {
	return CreateCommand{
		CustomerID:     customerID,
		CustomerName:   d.CustomerName,
		CustomerPhone:  d.CustomerPhone,
		ServiceType:    d.ServiceType,
		TripType:       d.TripType,
		PickupLocation: d.PickupLocation,
		Destination:    d.Destination,
		PickupDate:     d.Date,
		PickupTime:     d.Time,
		Duration:       d.Duration,
		VehicleType:    d.VehicleType,
	}
}
