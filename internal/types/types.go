// README: Common value objects shared across modules.
package types

// ID identifies users, bookings and other records.
type ID string

// Money is an amount in a currency's minor unit. Tariffs are quoted in whole
// rupees, so Amount carries rupees directly.
type Money struct {
	Amount   int64
	Currency string
}

// INR wraps a whole-rupee amount.
func INR(amount int64) Money {
	return Money{Amount: amount, Currency: "INR"}
}
