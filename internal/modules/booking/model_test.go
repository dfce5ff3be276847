package booking

import "testing"

// TestCanTransition verifies the trip lifecycle table without a database.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusPending, StatusAssigned, true},
		{StatusAssigned, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		// complete straight from assigned (no start recorded)
		{StatusAssigned, StatusCompleted, true},
		// cancellation only before the trip starts
		{StatusPending, StatusCancelled, true},
		{StatusAssigned, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		// terminal states have no outgoing transitions
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusAssigned, false},
		{StatusCancelled, StatusPending, false},
		// skipping states
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		// no going backwards
		{StatusAssigned, StatusPending, false},
		{StatusInProgress, StatusAssigned, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestServiceTypeValid(t *testing.T) {
	for _, s := range []ServiceType{ServiceHourly, ServiceDaily, ServiceWeekly, ServiceMonthly} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []ServiceType{"", "yearly", "Hourly"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestServiceTypeUsesDuration(t *testing.T) {
	if !ServiceHourly.UsesDuration() || !ServiceDaily.UsesDuration() {
		t.Error("hourly and daily take a duration")
	}
	if ServiceWeekly.UsesDuration() || ServiceMonthly.UsesDuration() {
		t.Error("weekly and monthly have fixed spans")
	}
}
