// README: Night/early-morning surcharge bands and rupee formatting.
package tariff

import (
	"strconv"
	"strings"

	"drivehire/internal/types"
)

// Surcharge is the extra charged for a pickup time, with a display label.
type Surcharge struct {
	Amount      types.Money
	Description string
}

// NightSurcharge maps a 24-hour "HH:MM" pickup time to its surcharge band.
// Bands are half-open on the lower bound: exactly 05:00 falls in the 5am-8am
// band. Empty or malformed input yields a zero surcharge.
func NightSurcharge(timeOfDay string) Surcharge {
	none := Surcharge{Amount: types.INR(0)}
	if timeOfDay == "" {
		return none
	}
	hh, mm, ok := strings.Cut(timeOfDay, ":")
	if !ok {
		return none
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return none
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return none
	}
	m := hours*60 + minutes

	switch {
	case m >= 0 && m < 300:
		return Surcharge{Amount: types.INR(100), Description: "Early Morning Charge (12 AM - 5 AM): ₹100"}
	case m >= 300 && m < 480:
		return Surcharge{Amount: types.INR(50), Description: "Early Morning Charge (5 AM - 8 AM): ₹50"}
	case m >= 1320 && m < 1440:
		return Surcharge{Amount: types.INR(50), Description: "Late Night Charge (10 PM - 12 AM): ₹50"}
	}
	return none
}

// FormatINR renders a whole-rupee amount with the Indian grouping convention:
// the last three digits form one group, the rest pair off (₹12,34,567).
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}
