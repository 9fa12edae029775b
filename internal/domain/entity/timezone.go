package entity

import (
	"time"
	_ "time/tzdata"

	"worldtime-service/pkg/tzcalc"
)

// Timezone models
const (
	TZModelIANA  = "iana"
	TZModelFixed = "fixed"
)

// TimeZone is immutable reference data for one city in the catalog.
// ID is the IANA identifier; OffsetMinutes is the standard offset used by the
// fixed model.
type TimeZone struct {
	ID            string `json:"id" bson:"_id"`
	Name          string `json:"name" bson:"name"`
	City          string `json:"city" bson:"city"`
	OffsetMinutes int    `json:"offsetMinutes" bson:"offsetMinutes"`
	CountryCode   string `json:"countryCode" bson:"countryCode"`
}

// Location resolves the zone for conversions. The iana model loads the tz
// database entry and falls back to the fixed offset when it cannot be loaded.
func (tz TimeZone) Location(model string) *time.Location {
	if model != TZModelFixed && tz.ID != "" {
		if loc, err := time.LoadLocation(tz.ID); err == nil {
			return loc
		}
	}
	return tzcalc.FixedZone(tz.OffsetMinutes)
}

// OffsetLabel renders the catalog offset, e.g. "UTC+07:00".
func (tz TimeZone) OffsetLabel() string {
	return tzcalc.FormatOffset(tz.OffsetMinutes)
}
