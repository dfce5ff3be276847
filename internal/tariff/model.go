// README: Vehicle tariff definitions for local and outstation duty.
package tariff

// Package is a fixed hours/kms bundle offered on top of the minimum local
// package. Catalog entries list packages in ascending hour order.
type Package struct {
	Hours  int
	Kms    int
	Amount int64
}

// LocalTariff prices inside-city duty: a minimum package plus extras.
type LocalTariff struct {
	MinHours           int
	MinKms             int
	BaseAmount         int64
	ExtraPerHour       int64
	ExtraPerKm         int64
	AdditionalPackages []Package
}

// OutstationTariff prices per-day duty leaving the home city. DriverAllowance
// is the daily batta paid on top of the fare; zero means it is included.
type OutstationTariff struct {
	PerDayMinKms      int
	PerDayAmount      int64
	ExtraPerKm        int64
	DriverAllowance   int64
	ExtraPerHour      int64
	FoodAllowance     int64
	AccommodationNote string
}

// NightCharges is the per-category surcharge schedule, present only where the
// business quotes one.
type NightCharges struct {
	EarlyMorningRate1 int64
	EarlyMorningRate2 int64
	Description       string
}

// Tariff is one vehicle/service category. All amounts are whole rupees.
type Tariff struct {
	VehicleType string
	DisplayName string
	Local       LocalTariff
	Outstation  OutstationTariff
	Night       *NightCharges
}
