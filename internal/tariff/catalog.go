// README: Static tariff catalog; immutable after process startup.
package tariff

const accommodationNote = "Proper accommodation required for drivers during night stays"

// catalog is the published rate card. Keys are unique and amounts non-negative;
// catalog_test.go asserts both.
var catalog = []Tariff{
	{
		VehicleType: "acting-driver",
		DisplayName: "Acting Driver (Hourly)",
		Local: LocalTariff{
			MinHours:     4,
			BaseAmount:   450,
			ExtraPerHour: 100,
			AdditionalPackages: []Package{
				{Hours: 6, Amount: 700},
			},
		},
		Outstation: OutstationTariff{
			PerDayAmount:      1300,
			DriverAllowance:   200,
			ExtraPerHour:      100,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
		Night: &NightCharges{
			EarlyMorningRate1: 100,
			EarlyMorningRate2: 50,
			Description:       "Early morning charges: 12am-5am ₹100, 5am-8am ₹50 & Late night charges: 10pm-12am ₹50",
		},
	},
	{
		VehicleType: "valet-parking",
		DisplayName: "Valet Parking",
		Local: LocalTariff{
			MinHours:     4,
			BaseAmount:   600,
			ExtraPerHour: 130,
		},
		Outstation: OutstationTariff{
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "etios",
		DisplayName: "Etios / Dzire",
		Local: LocalTariff{
			MinHours:     4,
			MinKms:       40,
			BaseAmount:   1400,
			ExtraPerHour: 280,
			ExtraPerKm:   14,
			AdditionalPackages: []Package{
				{Hours: 8, Kms: 80, Amount: 2800},
				{Hours: 12, Kms: 120, Amount: 4200},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      3500,
			ExtraPerKm:        14,
			DriverAllowance:   600,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "innova",
		DisplayName: "Innova",
		Local: LocalTariff{
			MinHours:     4,
			MinKms:       40,
			BaseAmount:   2000,
			ExtraPerHour: 400,
			ExtraPerKm:   20,
			AdditionalPackages: []Package{
				{Hours: 8, Kms: 80, Amount: 4000},
				{Hours: 12, Kms: 120, Amount: 6000},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      5000,
			ExtraPerKm:        20,
			DriverAllowance:   700,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "crysta",
		DisplayName: "Crysta",
		Local: LocalTariff{
			MinHours:     4,
			MinKms:       40,
			BaseAmount:   2200,
			ExtraPerHour: 440,
			ExtraPerKm:   22,
			AdditionalPackages: []Package{
				{Hours: 8, Kms: 80, Amount: 4400},
				{Hours: 12, Kms: 120, Amount: 6600},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      5500,
			ExtraPerKm:        22,
			DriverAllowance:   700,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "hycross",
		DisplayName: "Hycross",
		Local: LocalTariff{
			MinHours:     4,
			MinKms:       40,
			BaseAmount:   2400,
			ExtraPerHour: 500,
			ExtraPerKm:   25,
			AdditionalPackages: []Package{
				{Hours: 8, Kms: 80, Amount: 4800},
				{Hours: 12, Kms: 120, Amount: 7200},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      6250,
			ExtraPerKm:        25,
			DriverAllowance:   700,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "corolla",
		DisplayName: "Corolla Altis",
		Local: LocalTariff{
			MinHours:     4,
			MinKms:       40,
			BaseAmount:   2400,
			ExtraPerHour: 480,
			ExtraPerKm:   25,
			AdditionalPackages: []Package{
				{Hours: 8, Kms: 80, Amount: 4800},
				{Hours: 12, Kms: 120, Amount: 7200},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      6250,
			ExtraPerKm:        25,
			DriverAllowance:   600,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "tempo-12",
		DisplayName: "Tempo Traveller 12 Seater A/C",
		Local: LocalTariff{
			MinHours:     4,
			MinKms:       40,
			BaseAmount:   2500,
			ExtraPerHour: 500,
			ExtraPerKm:   25,
			AdditionalPackages: []Package{
				{Hours: 8, Kms: 80, Amount: 5000},
				{Hours: 12, Kms: 120, Amount: 7500},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      6250,
			ExtraPerKm:        25,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "tourister",
		DisplayName: "Mahindra Tourister",
		Local: LocalTariff{
			MinHours:     4,
			MinKms:       40,
			BaseAmount:   2500,
			ExtraPerHour: 500,
			ExtraPerKm:   25,
			AdditionalPackages: []Package{
				{Hours: 8, Kms: 80, Amount: 5000},
				{Hours: 12, Kms: 120, Amount: 7500},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      6250,
			ExtraPerKm:        25,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "minibus-20-nonac",
		DisplayName: "Mini Bus 20 Seater (Non A/C)",
		Local: LocalTariff{
			MinHours:     8,
			MinKms:       80,
			BaseAmount:   7500,
			ExtraPerHour: 750,
			ExtraPerKm:   35,
			AdditionalPackages: []Package{
				{Hours: 12, Kms: 120, Amount: 11250},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      300,
			PerDayAmount:      10500,
			ExtraPerKm:        35,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "minibus-20",
		DisplayName: "Mini Bus 20 Seater",
		Local: LocalTariff{
			MinHours:     8,
			MinKms:       80,
			BaseAmount:   8500,
			ExtraPerHour: 850,
			ExtraPerKm:   38,
			AdditionalPackages: []Package{
				{Hours: 12, Kms: 120, Amount: 12750},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      300,
			PerDayAmount:      11400,
			ExtraPerKm:        38,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "bus-25",
		DisplayName: "25 Seater Bus",
		Local: LocalTariff{
			MinHours:     8,
			MinKms:       80,
			BaseAmount:   12000,
			ExtraPerHour: 1200,
			ExtraPerKm:   40,
			AdditionalPackages: []Package{
				{Hours: 12, Kms: 120, Amount: 18000},
			},
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      300,
			PerDayAmount:      12000,
			ExtraPerKm:        40,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "camry",
		DisplayName: "Toyota Camry",
		Local: LocalTariff{
			MinHours:     8,
			MinKms:       80,
			BaseAmount:   8500,
			ExtraPerHour: 1100,
			ExtraPerKm:   75,
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      18750,
			ExtraPerKm:        75,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "benz-e-bmw-5",
		DisplayName: "Benz (E Class) / BMW (5 Series)",
		Local: LocalTariff{
			MinHours:     8,
			MinKms:       80,
			BaseAmount:   12000,
			ExtraPerHour: 1300,
			ExtraPerKm:   105,
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      26250,
			ExtraPerKm:        105,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "benz-s",
		DisplayName: "Benz (S Class)",
		Local: LocalTariff{
			MinHours:     8,
			MinKms:       80,
			BaseAmount:   19500,
			ExtraPerHour: 1500,
			ExtraPerKm:   160,
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      40000,
			ExtraPerKm:        160,
			DriverAllowance:   1000,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "bus-45",
		DisplayName: "Benz / Volvo Bus (45 Seater)",
		Local: LocalTariff{
			MinHours:     10,
			MinKms:       100,
			BaseAmount:   19500,
			ExtraPerHour: 1900,
			ExtraPerKm:   90,
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      300,
			PerDayAmount:      27000,
			ExtraPerKm:        90,
			DriverAllowance:   1300,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
	{
		VehicleType: "rolls-royce",
		DisplayName: "Rolls Royce",
		Local: LocalTariff{
			MinHours:     8,
			MinKms:       80,
			BaseAmount:   90000,
			ExtraPerHour: 10500,
			ExtraPerKm:   800,
		},
		Outstation: OutstationTariff{
			PerDayMinKms:      250,
			PerDayAmount:      200000,
			ExtraPerKm:        800,
			DriverAllowance:   1500,
			FoodAllowance:     200,
			AccommodationNote: accommodationNote,
		},
	},
}

// Lookup returns the tariff for a vehicle type. A miss means "tariff unknown";
// callers omit pricing and carry on.
func Lookup(vehicleType string) (Tariff, bool) {
	for _, t := range catalog {
		if t.VehicleType == vehicleType {
			return t, true
		}
	}
	return Tariff{}, false
}

// Catalog returns the full rate card in display order. The returned slice is
// a copy; the catalog itself never changes.
func Catalog() []Tariff {
	out := make([]Tariff, len(catalog))
	copy(out, catalog)
	return out
}
