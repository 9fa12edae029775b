package usecase

import (
	"context"
	"fmt"
	"time"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/domain/repository"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/metrics"
	"worldtime-service/pkg/tzcalc"

	"github.com/google/uuid"
)

// Slot option defaults and bounds, in minutes.
const (
	DefaultSlotStep     = 60
	DefaultSlotDuration = 60
	MinSlotStep         = 5
)

// SlotOptions controls a slot suggestion run. Zero values take defaults:
// today in the reference zone, the first location's zone, hourly 60 minute slots.
type SlotOptions struct {
	Date                string `form:"date"`
	ReferenceTimezoneID string `form:"reference"`
	StepMinutes         int    `form:"step"`
	DurationMinutes     int    `form:"duration"`
}

// MeetingPlanner converts meetings across locations and finds shared working time
type MeetingPlanner struct {
	timezoneRepo repository.TimezoneRepository
	clock        clock.Clock
	tzModel      string
	logger       logger.Logger
	metrics      *metrics.Metrics
}

// NewMeetingPlanner creates a new meeting planner
func NewMeetingPlanner(
	timezoneRepo repository.TimezoneRepository,
	clk clock.Clock,
	tzModel string,
	logger logger.Logger,
	m *metrics.Metrics,
) *MeetingPlanner {
	return &MeetingPlanner{
		timezoneRepo: timezoneRepo,
		clock:        clk,
		tzModel:      tzModel,
		logger:       logger,
		metrics:      m,
	}
}

// TZModel reports the timezone model in use.
func (p *MeetingPlanner) TZModel() string {
	return p.tzModel
}

// ConvertMeetingAcrossLocations projects the meeting into every location, in input order
func (p *MeetingPlanner) ConvertMeetingAcrossLocations(ctx context.Context, query entity.MeetingQuery, locations []entity.Location) (*entity.MeetingPlan, error) {
	if err := query.Validate(); err != nil {
		p.countError("convert")
		return nil, err
	}

	source, err := p.timezoneRepo.GetByID(ctx, query.TimezoneID)
	if err != nil {
		p.countError("convert")
		return nil, fmt.Errorf("failed to resolve meeting timezone: %w", err)
	}

	plan, err := ConvertMeeting(query, *source, locations, p.tzModel)
	if err != nil {
		p.countError("convert")
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.MeetingConversions.Inc()
	}
	p.logger.Debug("Meeting converted",
		"timezone", query.TimezoneID,
		"date", query.Date,
		"time", query.Time,
		"locations", len(locations))

	return plan, nil
}

// ResolveLocations looks up inline locations for a stateless request, keeping their order
func (p *MeetingPlanner) ResolveLocations(ctx context.Context, inputs []entity.LocationInput) ([]entity.Location, error) {
	now := p.clock.Now()
	locations := make([]entity.Location, 0, len(inputs))
	for _, in := range inputs {
		hours, err := entity.NewWorkingHours(in.WorkingHours.Start, in.WorkingHours.End)
		if err != nil {
			return nil, err
		}
		tz, err := p.timezoneRepo.GetByID(ctx, in.TimezoneID)
		if err != nil {
			return nil, err
		}
		locations = append(locations, entity.Location{
			ID:           uuid.NewString(),
			TimeZone:     *tz,
			WorkingHours: hours,
			AddedAt:      now,
		})
	}
	return locations, nil
}

// ConvertMeeting is the pure conversion behind ConvertMeetingAcrossLocations.
// The query must already be validated.
func ConvertMeeting(query entity.MeetingQuery, source entity.TimeZone, locations []entity.Location, tzModel string) (*entity.MeetingPlan, error) {
	clk, err := tzcalc.ParseClock(query.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidMeeting, err)
	}

	sourceLoc := source.Location(tzModel)
	start, err := tzcalc.WallClockToInstant(query.Date, clk, sourceLoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidMeeting, err)
	}
	end := start.Add(query.Duration())
	ref := start.In(sourceLoc)

	conversions := make([]entity.MeetingConversion, 0, len(locations))
	for _, loc := range locations {
		conversions = append(conversions, convertForLocation(start, end, ref, loc, tzModel))
	}

	return &entity.MeetingPlan{
		Query:       query,
		Source:      source,
		StartUTC:    start,
		EndUTC:      end,
		Conversions: conversions,
	}, nil
}

func convertForLocation(start, end, ref time.Time, loc entity.Location, tzModel string) entity.MeetingConversion {
	zone := loc.TimeZone.Location(tzModel)
	localStart := start.In(zone)
	localEnd := end.In(zone)
	window := loc.WorkingHours.Window()

	status := entity.StatusOutside
	if window.Contains(tzcalc.ClockOf(localStart)) {
		status = entity.StatusWorking
	}

	meeting := tzcalc.Interval{Start: start, End: end}
	fully := tzcalc.SetCovers(tzcalc.WindowIntervals(window, localStart, zone), meeting)

	return entity.MeetingConversion{
		Location:     loc,
		LocalDate:    localStart.Format(tzcalc.DateLayout),
		LocalTime:    tzcalc.FormatClock(localStart),
		LocalEndTime: tzcalc.FormatClock(localEnd),
		DayOffset:    tzcalc.DayOffset(ref, localStart),
		UTCOffset:    tzcalc.FormatOffset(tzcalc.OffsetMinutesAt(start, zone)),
		Status:       status,
		FullyWithin:  fully,
	}
}

// SuggestMeetingSlots intersects the locations' working hours over the reference day
func (p *MeetingPlanner) SuggestMeetingSlots(ctx context.Context, locations []entity.Location, opts SlotOptions) (*entity.OverlapReport, error) {
	if len(locations) == 0 {
		p.countError("suggest")
		return nil, fmt.Errorf("%w: at least one location is required", entity.ErrInvalidSlotOptions)
	}

	reference := locations[0].TimeZone
	if opts.ReferenceTimezoneID != "" {
		tz, err := p.timezoneRepo.GetByID(ctx, opts.ReferenceTimezoneID)
		if err != nil {
			p.countError("suggest")
			return nil, fmt.Errorf("failed to resolve reference timezone: %w", err)
		}
		reference = *tz
	}
	if opts.Date == "" {
		opts.Date = p.clock.Now().In(reference.Location(p.tzModel)).Format(tzcalc.DateLayout)
	}

	report, err := SuggestSlots(locations, reference, opts, p.tzModel)
	if err != nil {
		p.countError("suggest")
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.SlotSuggestions.Inc()
	}
	p.logger.Debug("Meeting slots suggested",
		"date", report.Date,
		"reference", reference.ID,
		"common", len(report.Common),
		"locations", len(locations))

	return report, nil
}

// SuggestSlots is the pure interval intersection behind SuggestMeetingSlots.
// opts.Date must be set.
func SuggestSlots(locations []entity.Location, reference entity.TimeZone, opts SlotOptions, tzModel string) (*entity.OverlapReport, error) {
	step, duration, err := slotLengths(opts)
	if err != nil {
		return nil, err
	}

	refLoc := reference.Location(tzModel)
	dayStart, err := tzcalc.WallClockToInstant(opts.Date, 0, refLoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidSlotOptions, err)
	}
	localDay := dayStart.In(refLoc)
	dayEnd := time.Date(localDay.Year(), localDay.Month(), localDay.Day()+1, 0, 0, 0, 0, refLoc).UTC()
	bounds := tzcalc.Interval{Start: dayStart, End: dayEnd}

	zones := make([]*time.Location, len(locations))
	sets := make([][]tzcalc.Interval, len(locations))
	for i, loc := range locations {
		zones[i] = loc.TimeZone.Location(tzModel)
		sets[i] = tzcalc.WindowIntervals(loc.WorkingHours.Window(), dayStart.In(zones[i]), zones[i])
	}

	report := &entity.OverlapReport{
		Date:      opts.Date,
		Reference: reference,
		Common:    []entity.OverlapWindow{},
	}

	common := tzcalc.ClipSet(sets[0], bounds)
	for _, set := range sets[1:] {
		common = tzcalc.IntersectSets(common, set)
	}
	for _, iv := range common {
		report.Common = append(report.Common, overlapWindow(iv, locations, zones, allIndexes(len(locations))))
	}

	if len(report.Common) == 0 {
		if best, ok := tzcalc.BestCoverage(sets, bounds); ok {
			w := overlapWindow(best.Interval, locations, zones, best.Members)
			report.BestPartial = &w
		}
	}

	for t := bounds.Start; !t.Add(duration).After(bounds.End); t = t.Add(step) {
		slot := tzcalc.Interval{Start: t, End: t.Add(duration)}
		suggestion := entity.SlotSuggestion{
			StartUTC:    slot.Start,
			EndUTC:      slot.End,
			Available:   []string{},
			Unavailable: []string{},
			Local:       localSpans(slot, locations, zones),
		}
		for i, set := range sets {
			if tzcalc.SetCovers(set, slot) {
				suggestion.Available = append(suggestion.Available, locations[i].ID)
			} else {
				suggestion.Unavailable = append(suggestion.Unavailable, locations[i].ID)
			}
		}
		switch len(suggestion.Available) {
		case len(locations):
			suggestion.Quality = entity.SlotOptimal
		case 0:
			suggestion.Quality = entity.SlotOutside
		default:
			suggestion.Quality = entity.SlotPartial
		}
		report.Slots = append(report.Slots, suggestion)
	}

	return report, nil
}

func slotLengths(opts SlotOptions) (step, duration time.Duration, err error) {
	stepMin, durMin := opts.StepMinutes, opts.DurationMinutes
	if stepMin == 0 {
		stepMin = DefaultSlotStep
	}
	if durMin == 0 {
		durMin = DefaultSlotDuration
	}
	if stepMin < MinSlotStep || stepMin > tzcalc.MinutesPerDay {
		return 0, 0, fmt.Errorf("%w: step must be between %d and %d minutes", entity.ErrInvalidSlotOptions, MinSlotStep, tzcalc.MinutesPerDay)
	}
	if durMin < 1 || durMin > tzcalc.MinutesPerDay {
		return 0, 0, fmt.Errorf("%w: duration must be between 1 and %d minutes", entity.ErrInvalidSlotOptions, tzcalc.MinutesPerDay)
	}
	return time.Duration(stepMin) * time.Minute, time.Duration(durMin) * time.Minute, nil
}

func overlapWindow(iv tzcalc.Interval, locations []entity.Location, zones []*time.Location, members []int) entity.OverlapWindow {
	in := make(map[int]bool, len(members))
	w := entity.OverlapWindow{
		StartUTC:     iv.Start,
		EndUTC:       iv.End,
		Minutes:      int(iv.Duration() / time.Minute),
		Participants: make([]string, 0, len(members)),
	}
	for _, m := range members {
		in[m] = true
		w.Participants = append(w.Participants, locations[m].ID)
	}
	for i, loc := range locations {
		if !in[i] {
			w.Excluded = append(w.Excluded, loc.ID)
		}
	}
	w.Local = localSpans(iv, locations, zones)
	return w
}

func localSpans(iv tzcalc.Interval, locations []entity.Location, zones []*time.Location) []entity.LocalSpan {
	spans := make([]entity.LocalSpan, 0, len(locations))
	for i, loc := range locations {
		start := iv.Start.In(zones[i])
		spans = append(spans, entity.LocalSpan{
			LocationID: loc.ID,
			City:       loc.TimeZone.City,
			LocalDate:  start.Format(tzcalc.DateLayout),
			Start:      tzcalc.FormatClock(start),
			End:        tzcalc.FormatClock(iv.End.In(zones[i])),
		})
	}
	return spans
}

func allIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (p *MeetingPlanner) countError(operation string) {
	if p.metrics != nil {
		p.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
