package repository

import "worldtime-service/internal/domain/entity"

// DefaultCatalog is the built-in set of cities seeded into an empty store.
// Offsets are standard (non-DST) offsets in minutes.
var DefaultCatalog = []entity.TimeZone{
	{ID: "Pacific/Honolulu", Name: "Hawaii-Aleutian Standard Time", City: "Honolulu", OffsetMinutes: -600, CountryCode: "US"},
	{ID: "America/Anchorage", Name: "Alaska Standard Time", City: "Anchorage", OffsetMinutes: -540, CountryCode: "US"},
	{ID: "America/Los_Angeles", Name: "Pacific Standard Time", City: "Los Angeles", OffsetMinutes: -480, CountryCode: "US"},
	{ID: "America/Vancouver", Name: "Pacific Standard Time", City: "Vancouver", OffsetMinutes: -480, CountryCode: "CA"},
	{ID: "America/Denver", Name: "Mountain Standard Time", City: "Denver", OffsetMinutes: -420, CountryCode: "US"},
	{ID: "America/Chicago", Name: "Central Standard Time", City: "Chicago", OffsetMinutes: -360, CountryCode: "US"},
	{ID: "America/Mexico_City", Name: "Central Standard Time", City: "Mexico City", OffsetMinutes: -360, CountryCode: "MX"},
	{ID: "America/New_York", Name: "Eastern Standard Time", City: "New York", OffsetMinutes: -300, CountryCode: "US"},
	{ID: "America/Toronto", Name: "Eastern Standard Time", City: "Toronto", OffsetMinutes: -300, CountryCode: "CA"},
	{ID: "America/Bogota", Name: "Colombia Time", City: "Bogota", OffsetMinutes: -300, CountryCode: "CO"},
	{ID: "America/Sao_Paulo", Name: "Brasilia Time", City: "Sao Paulo", OffsetMinutes: -180, CountryCode: "BR"},
	{ID: "America/Argentina/Buenos_Aires", Name: "Argentina Time", City: "Buenos Aires", OffsetMinutes: -180, CountryCode: "AR"},
	{ID: "America/St_Johns", Name: "Newfoundland Standard Time", City: "St. John's", OffsetMinutes: -210, CountryCode: "CA"},
	{ID: "Atlantic/Reykjavik", Name: "Greenwich Mean Time", City: "Reykjavik", OffsetMinutes: 0, CountryCode: "IS"},
	{ID: "Europe/London", Name: "Greenwich Mean Time", City: "London", OffsetMinutes: 0, CountryCode: "GB"},
	{ID: "Europe/Lisbon", Name: "Western European Time", City: "Lisbon", OffsetMinutes: 0, CountryCode: "PT"},
	{ID: "Europe/Paris", Name: "Central European Time", City: "Paris", OffsetMinutes: 60, CountryCode: "FR"},
	{ID: "Europe/Berlin", Name: "Central European Time", City: "Berlin", OffsetMinutes: 60, CountryCode: "DE"},
	{ID: "Europe/Amsterdam", Name: "Central European Time", City: "Amsterdam", OffsetMinutes: 60, CountryCode: "NL"},
	{ID: "Africa/Lagos", Name: "West Africa Time", City: "Lagos", OffsetMinutes: 60, CountryCode: "NG"},
	{ID: "Africa/Cairo", Name: "Eastern European Time", City: "Cairo", OffsetMinutes: 120, CountryCode: "EG"},
	{ID: "Africa/Johannesburg", Name: "South Africa Standard Time", City: "Johannesburg", OffsetMinutes: 120, CountryCode: "ZA"},
	{ID: "Europe/Istanbul", Name: "Turkey Time", City: "Istanbul", OffsetMinutes: 180, CountryCode: "TR"},
	{ID: "Europe/Moscow", Name: "Moscow Standard Time", City: "Moscow", OffsetMinutes: 180, CountryCode: "RU"},
	{ID: "Asia/Riyadh", Name: "Arabia Standard Time", City: "Riyadh", OffsetMinutes: 180, CountryCode: "SA"},
	{ID: "Africa/Nairobi", Name: "East Africa Time", City: "Nairobi", OffsetMinutes: 180, CountryCode: "KE"},
	{ID: "Asia/Tehran", Name: "Iran Standard Time", City: "Tehran", OffsetMinutes: 210, CountryCode: "IR"},
	{ID: "Asia/Dubai", Name: "Gulf Standard Time", City: "Dubai", OffsetMinutes: 240, CountryCode: "AE"},
	{ID: "Asia/Karachi", Name: "Pakistan Standard Time", City: "Karachi", OffsetMinutes: 300, CountryCode: "PK"},
	{ID: "Asia/Kolkata", Name: "India Standard Time", City: "Mumbai", OffsetMinutes: 330, CountryCode: "IN"},
	{ID: "Asia/Kathmandu", Name: "Nepal Time", City: "Kathmandu", OffsetMinutes: 345, CountryCode: "NP"},
	{ID: "Asia/Dhaka", Name: "Bangladesh Standard Time", City: "Dhaka", OffsetMinutes: 360, CountryCode: "BD"},
	{ID: "Asia/Jakarta", Name: "Western Indonesia Time", City: "Jakarta", OffsetMinutes: 420, CountryCode: "ID"},
	{ID: "Asia/Bangkok", Name: "Indochina Time", City: "Bangkok", OffsetMinutes: 420, CountryCode: "TH"},
	{ID: "Asia/Singapore", Name: "Singapore Standard Time", City: "Singapore", OffsetMinutes: 480, CountryCode: "SG"},
	{ID: "Asia/Makassar", Name: "Central Indonesia Time", City: "Makassar", OffsetMinutes: 480, CountryCode: "ID"},
	{ID: "Asia/Shanghai", Name: "China Standard Time", City: "Shanghai", OffsetMinutes: 480, CountryCode: "CN"},
	{ID: "Asia/Hong_Kong", Name: "Hong Kong Time", City: "Hong Kong", OffsetMinutes: 480, CountryCode: "HK"},
	{ID: "Asia/Jayapura", Name: "Eastern Indonesia Time", City: "Jayapura", OffsetMinutes: 540, CountryCode: "ID"},
	{ID: "Asia/Tokyo", Name: "Japan Standard Time", City: "Tokyo", OffsetMinutes: 540, CountryCode: "JP"},
	{ID: "Asia/Seoul", Name: "Korea Standard Time", City: "Seoul", OffsetMinutes: 540, CountryCode: "KR"},
	{ID: "Australia/Adelaide", Name: "Australian Central Standard Time", City: "Adelaide", OffsetMinutes: 570, CountryCode: "AU"},
	{ID: "Australia/Sydney", Name: "Australian Eastern Standard Time", City: "Sydney", OffsetMinutes: 600, CountryCode: "AU"},
	{ID: "Pacific/Auckland", Name: "New Zealand Standard Time", City: "Auckland", OffsetMinutes: 720, CountryCode: "NZ"},
}
