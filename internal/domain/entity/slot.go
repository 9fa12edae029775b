package entity

import "time"

// SlotQuality grades a candidate slot by how many locations are working.
type SlotQuality string

const (
	SlotOptimal SlotQuality = "optimal"
	SlotPartial SlotQuality = "partial"
	SlotOutside SlotQuality = "outside"
)

// LocalSpan is a UTC span shown in one location's wall clock.
type LocalSpan struct {
	LocationID string `json:"locationId"`
	City       string `json:"city"`
	LocalDate  string `json:"localDate"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// OverlapWindow is a stretch of time when Participants are all working.
type OverlapWindow struct {
	StartUTC     time.Time   `json:"startUtc"`
	EndUTC       time.Time   `json:"endUtc"`
	Minutes      int         `json:"minutes"`
	Participants []string    `json:"participants"`
	Excluded     []string    `json:"excluded,omitempty"`
	Local        []LocalSpan `json:"local"`
}

// SlotSuggestion is one fixed-length candidate slot on the reference day.
type SlotSuggestion struct {
	StartUTC    time.Time   `json:"startUtc"`
	EndUTC      time.Time   `json:"endUtc"`
	Quality     SlotQuality `json:"quality"`
	Available   []string    `json:"available"`
	Unavailable []string    `json:"unavailable"`
	Local       []LocalSpan `json:"local"`
}

// OverlapReport is the result of a slot suggestion run. Common holds the
// windows where every location works; when it is empty BestPartial holds the
// longest window shared by the largest subset.
type OverlapReport struct {
	Date        string           `json:"date"`
	Reference   TimeZone         `json:"reference"`
	Common      []OverlapWindow  `json:"common"`
	BestPartial *OverlapWindow   `json:"bestPartial,omitempty"`
	Slots       []SlotSuggestion `json:"slots"`
}
