// README: Tariff handlers: catalog listing, lookup, night surcharge quote.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drivehire/internal/tariff"
)

type TariffHandler struct{}

func NewTariffHandler() *TariffHandler {
	return &TariffHandler{}
}

type packageResp struct {
	Hours  int   `json:"hours"`
	Kms    int   `json:"kms"`
	Amount int64 `json:"amount"`
}

type localResp struct {
	MinHours           int           `json:"min_hours"`
	MinKms             int           `json:"min_kms"`
	BaseAmount         int64         `json:"base_amount"`
	ExtraPerHour       int64         `json:"extra_per_hour"`
	ExtraPerKm         int64         `json:"extra_per_km"`
	AdditionalPackages []packageResp `json:"additional_packages,omitempty"`
}

type outstationResp struct {
	PerDayMinKms      int    `json:"per_day_min_kms"`
	PerDayAmount      int64  `json:"per_day_amount"`
	ExtraPerKm        int64  `json:"extra_per_km"`
	DriverAllowance   int64  `json:"driver_allowance"`
	ExtraPerHour      int64  `json:"extra_per_hour"`
	FoodAllowance     int64  `json:"food_allowance"`
	AccommodationNote string `json:"accommodation_note,omitempty"`
}

type nightResp struct {
	EarlyMorningRate1 int64  `json:"early_morning_rate_1"`
	EarlyMorningRate2 int64  `json:"early_morning_rate_2"`
	Description       string `json:"description"`
}

type tariffResp struct {
	VehicleType string         `json:"vehicle_type"`
	DisplayName string         `json:"display_name"`
	Local       localResp      `json:"local"`
	Outstation  outstationResp `json:"outstation"`
	Night       *nightResp     `json:"night,omitempty"`
}

func (h *TariffHandler) List(c *gin.Context) {
	catalog := tariff.Catalog()
	out := make([]tariffResp, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, toTariffResp(t))
	}
	writeJSON(c, http.StatusOK, gin.H{"tariffs": out})
}

func (h *TariffHandler) Get(c *gin.Context) {
	t, ok := tariff.Lookup(c.Param("vehicleType"))
	if !ok {
		writeError(c, http.StatusNotFound, "unknown vehicle type")
		return
	}
	writeJSON(c, http.StatusOK, toTariffResp(t))
}

// NightSurcharge quotes the pickup-time surcharge. An empty or malformed
// time yields a zero surcharge, matching the calculator.
func (h *TariffHandler) NightSurcharge(c *gin.Context) {
	s := tariff.NightSurcharge(c.Query("time"))
	writeJSON(c, http.StatusOK, gin.H{
		"amount":      s.Amount.Amount,
		"formatted":   tariff.FormatINR(s.Amount.Amount),
		"description": s.Description,
	})
}

func toTariffResp(t tariff.Tariff) tariffResp {
	resp := tariffResp{
		VehicleType: t.VehicleType,
		DisplayName: t.DisplayName,
		Local: localResp{
			MinHours:     t.Local.MinHours,
			MinKms:       t.Local.MinKms,
			BaseAmount:   t.Local.BaseAmount,
			ExtraPerHour: t.Local.ExtraPerHour,
			ExtraPerKm:   t.Local.ExtraPerKm,
		},
		Outstation: outstationResp{
			PerDayMinKms:      t.Outstation.PerDayMinKms,
			PerDayAmount:      t.Outstation.PerDayAmount,
			ExtraPerKm:        t.Outstation.ExtraPerKm,
			DriverAllowance:   t.Outstation.DriverAllowance,
			ExtraPerHour:      t.Outstation.ExtraPerHour,
			FoodAllowance:     t.Outstation.FoodAllowance,
			AccommodationNote: t.Outstation.AccommodationNote,
		},
	}
	for _, p := range t.Local.AdditionalPackages {
		resp.Local.AdditionalPackages = append(resp.Local.AdditionalPackages, packageResp(p))
	}
	if t.Night != nil {
		resp.Night = &nightResp{
			EarlyMorningRate1: t.Night.EarlyMorningRate1,
			EarlyMorningRate2: t.Night.EarlyMorningRate2,
			Description:       t.Night.Description,
		}
	}
	return resp
}
