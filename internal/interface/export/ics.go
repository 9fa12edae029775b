package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/entity"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// ICSRenderer renders the meeting as a single-event iCalendar file.
type ICSRenderer struct {
	clock  clock.Clock
	newUID func() string
}

// NewICSRenderer creates a new iCalendar renderer. clk stamps DTSTAMP.
func NewICSRenderer(clk clock.Clock) *ICSRenderer {
	return &ICSRenderer{
		clock:  clk,
		newUID: uuid.NewString,
	}
}

// CanHandle reports whether format is ics or ical
func (r *ICSRenderer) CanHandle(format string) bool {
	return format == "ics" || format == "ical"
}

// Render encodes the meeting as a VEVENT with UTC start and end
func (r *ICSRenderer) Render(ctx context.Context, plan *entity.MeetingPlan) (*entity.ExportFile, error) {
	if plan == nil {
		return nil, fmt.Errorf("nothing to render")
	}

	source := plan.Source.City
	if source == "" {
		source = plan.Source.ID
	}

	event := ical.NewComponent(ical.CompEvent)
	event.Props.SetText(ical.PropUID, r.newUID())
	event.Props.SetDateTime(ical.PropDateTimeStamp, r.clock.Now().UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, plan.StartUTC.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, plan.EndUTC.UTC())
	event.Props.SetText(ical.PropSummary, fmt.Sprintf("Meeting (%s %s %s)", plan.Query.Date, plan.Query.Time, source))
	event.Props.SetText(ical.PropDescription, describe(plan))

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//worldtime-service//EN")
	cal.Children = append(cal.Children, event)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode meeting to iCal format: %w", err)
	}

	return &entity.ExportFile{
		Filename:    fileName(plan, "ics"),
		ContentType: "text/calendar; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func describe(plan *entity.MeetingPlan) string {
	lines := make([]string, 0, len(plan.Conversions))
	for _, c := range plan.Conversions {
		lines = append(lines, fmt.Sprintf("%s: %s %s-%s (%s)",
			c.Location.TimeZone.City, c.LocalDate, c.LocalTime, c.LocalEndTime, c.Status))
	}
	return strings.Join(lines, "\n")
}
