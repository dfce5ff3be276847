package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type stubSubmitter struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{} // closed when Create begins, if non-nil
	release chan struct{} // Create blocks on this, if non-nil
}

func (s *stubSubmitter) Create(_ context.Context, cmd CreateCommand) (*Booking, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &Booking{ID: "b_test", CustomerID: cmd.CustomerID, Status: StatusPending}, nil
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func completeDraft(d *Draft) {
	d.ServiceType = ServiceHourly
	d.PickupLocation = "12 MG Road, Bengaluru"
	d.Date = "2026-09-01"
	d.Time = "09:30"
	d.Duration = "4"
	d.VehicleType = "etios"
	d.CustomerName = "Asha Rao"
	d.CustomerPhone = "9876543210"
}

func advanceToSubmit(t *testing.T, w *Wizard) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if err := w.Next(); err != nil {
			t.Fatalf("advance from step %d: %v", w.Step(), err)
		}
	}
}

func TestWizardGuardsHoldInOrder(t *testing.T) {
	w := NewWizard(&stubSubmitter{}, "c1")

	// Step 1: nothing set yet.
	if w.CanProceed() {
		t.Fatal("step 1 should be incomplete")
	}
	if err := w.Next(); err != ErrIncompleteStep {
		t.Fatalf("Next on incomplete step: %v", err)
	}

	// Filling schedule/customer fields without pickup must not unlock step 2.
	w.Edit(func(d *Draft) {
		d.ServiceType = ServiceHourly
		d.Date = "2026-09-01"
		d.Time = "10:00"
		d.VehicleType = "innova"
		d.CustomerName = "Asha Rao"
		d.CustomerPhone = "9876543210"
	})
	if err := w.Next(); err != nil {
		t.Fatalf("step 1 complete, Next failed: %v", err)
	}
	if w.CanProceed() {
		t.Fatal("step 2 should require a pickup location")
	}
	if err := w.Next(); err != ErrIncompleteStep {
		t.Fatalf("expected ErrIncompleteStep, got %v", err)
	}
	if w.SubmitEnabled() {
		t.Fatal("submit must stay disabled while step 2 is incomplete")
	}

	w.Edit(func(d *Draft) { d.PickupLocation = "12 MG Road" })
	if err := w.Next(); err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("step 3: %v", err)
	}
	if w.Step() != StepCustomerInfo {
		t.Fatalf("expected step 4, got %d", w.Step())
	}
	if !w.SubmitEnabled() {
		t.Fatal("submit should be enabled with all guards held")
	}
}

func TestWizardOutstationRequiresDestination(t *testing.T) {
	w := NewWizard(&stubSubmitter{}, "c1")
	w.Edit(func(d *Draft) {
		d.ServiceType = ServiceDaily
		d.TripType = TripOutstation
		d.PickupLocation = "12 MG Road"
	})
	if err := w.Next(); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if w.CanProceed() {
		t.Fatal("outstation trip without destination should be incomplete")
	}

	w.Edit(func(d *Draft) { d.Destination = "Mysuru" })
	if !w.CanProceed() {
		t.Fatal("destination set, step 2 should be complete")
	}

	// Inside-city never needs a destination.
	w.Edit(func(d *Draft) {
		d.TripType = TripInsideCity
		d.Destination = ""
	})
	if !w.CanProceed() {
		t.Fatal("inside-city should not require a destination")
	}
}

func TestWizardShortPhoneBlocksSubmit(t *testing.T) {
	w := NewWizard(&stubSubmitter{}, "c1")
	w.Edit(completeDraft)
	w.Edit(func(d *Draft) { d.CustomerPhone = "98765" })
	advanceToSubmit(t, w)
	if w.SubmitEnabled() {
		t.Fatal("phone under 10 digits must keep submit disabled")
	}
	if _, err := w.Submit(context.Background()); err != ErrIncompleteStep {
		t.Fatalf("expected ErrIncompleteStep, got %v", err)
	}
}

func TestWizardBackNeverValidates(t *testing.T) {
	w := NewWizard(&stubSubmitter{}, "c1")
	w.Edit(completeDraft)
	advanceToSubmit(t, w)

	// Blank out an earlier step's field, then walk back freely.
	w.Edit(func(d *Draft) { d.PickupLocation = "" })
	w.Back()
	w.Back()
	w.Back()
	if w.Step() != StepServiceType {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
	w.Back() // floor
	if w.Step() != StepServiceType {
		t.Fatal("Back below step 1 should be a no-op")
	}
}

func TestWizardSubmitSuccessResets(t *testing.T) {
	sub := &stubSubmitter{}
	w := NewWizard(sub, "c1")
	w.Edit(completeDraft)
	advanceToSubmit(t, w)

	b, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if b == nil || b.ID == "" {
		t.Fatal("expected a created booking")
	}
	if w.Step() != StepServiceType {
		t.Fatal("wizard should reset to step 1 after success")
	}
	if d := w.Draft(); d != NewDraft() {
		t.Fatalf("draft should be cleared, got %+v", d)
	}
}

func TestWizardSubmitFailureRetainsDraft(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("backend unavailable")}
	w := NewWizard(sub, "c1")
	w.Edit(completeDraft)
	advanceToSubmit(t, w)

	before := w.Draft()
	if _, err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected submit error")
	}
	if w.Step() != StepCustomerInfo {
		t.Fatal("failed submit must not move the wizard")
	}
	if w.Draft() != before {
		t.Fatal("failed submit must not change the draft")
	}

	// Manual retry succeeds once the backend recovers.
	sub.err = nil
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestWizardSecondSubmitSuppressed(t *testing.T) {
	sub := &stubSubmitter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := NewWizard(sub, "c1")
	w.Edit(completeDraft)
	advanceToSubmit(t, w)

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background())
		done <- err
	}()

	<-sub.started
	if w.SubmitEnabled() {
		t.Error("submit should report disabled while in flight")
	}
	if _, err := w.Submit(context.Background()); err != ErrSubmitInFlight {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(sub.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if sub.callCount() != 1 {
		t.Fatalf("expected exactly 1 create call, got %d", sub.callCount())
	}
}

func TestWizardPricingLookup(t *testing.T) {
	w := NewWizard(&stubSubmitter{}, "c1")

	if _, ok := w.Pricing(); ok {
		t.Fatal("no vehicle selected, no pricing")
	}

	w.Edit(func(d *Draft) { d.VehicleType = "crysta" })
	tf, ok := w.Pricing()
	if !ok || tf.DisplayName != "Crysta" {
		t.Fatalf("expected crysta tariff, got %+v ok=%v", tf, ok)
	}

	// A catalog miss omits pricing but never blocks the step.
	w.Edit(func(d *Draft) {
		d.VehicleType = "hovercraft"
		d.ServiceType = ServiceHourly
		d.Date = "2026-09-01"
		d.Time = "10:00"
	})
	if _, ok := w.Pricing(); ok {
		t.Fatal("unknown vehicle should miss the catalog")
	}
	w.Edit(func(d *Draft) { d.PickupLocation = "12 MG Road" })
	if err := w.Next(); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if !w.CanProceed() {
		t.Fatal("schedule step must not require a known tariff")
	}
}
