package main

import (
	"fmt"
	"strings"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/usecase"
	"worldtime-service/pkg/tzcalc"

	"github.com/spf13/cobra"
)

var (
	slotOpts usecase.SlotOptions
	slotsAll bool
)

var slotsCmd = &cobra.Command{
	Use:   "slots LOCATION...",
	Short: "Suggest meeting slots inside everyone's working hours",
	Example: `  worldtime slots --date 2024-03-01 Asia/Jakarta Europe/London America/New_York=08:00-16:00`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSlots,
}

func init() {
	slotsCmd.Flags().StringVar(&slotOpts.Date, "date", "", "Day to plan, YYYY-MM-DD in the reference zone (default today)")
	slotsCmd.Flags().StringVar(&slotOpts.ReferenceTimezoneID, "reference", "", "Reference zone (default the first location)")
	slotsCmd.Flags().IntVar(&slotOpts.StepMinutes, "step", usecase.DefaultSlotStep, "Minutes between candidate slots")
	slotsCmd.Flags().IntVar(&slotOpts.DurationMinutes, "duration", usecase.DefaultSlotDuration, "Meeting length in minutes")
	slotsCmd.Flags().BoolVar(&slotsAll, "all", false, "List outside slots too")
}

func runSlots(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	locations, err := a.locations(ctx, args)
	if err != nil {
		return err
	}

	report, err := a.planner.SuggestMeetingSlots(ctx, locations, slotOpts)
	if err != nil {
		return err
	}

	st := newStyles()
	out := cmd.OutOrStdout()
	cities := make(map[string]string, len(locations))
	for _, loc := range locations {
		cities[loc.ID] = loc.TimeZone.City
	}

	if len(report.Common) > 0 {
		for _, w := range report.Common {
			fmt.Fprint(out, windowTable(fmt.Sprintf("Shared working time (%d min)", w.Minutes), w).View(st))
		}
	} else {
		fmt.Fprintln(out, st.Outside.Render("No time falls inside everyone's working hours."))
		if w := report.BestPartial; w != nil {
			title := fmt.Sprintf("Best partial overlap (%d of %d, %d min)", len(w.Participants), len(locations), w.Minutes)
			fmt.Fprint(out, windowTable(title, *w).View(st))
			fmt.Fprintln(out, st.Muted.Render("Not available: "+cityList(w.Excluded, cities)))
		}
	}
	fmt.Fprintln(out)

	// Slot starts are shown on the reference zone's clock.
	ref := report.Reference.Location(tzModel)
	t := newTable(fmt.Sprintf("Slots on %s (%s)", report.Date, report.Reference.City), "Start", "Quality", "Available", "Unavailable")
	for _, s := range report.Slots {
		if s.Quality == entity.SlotOutside && !slotsAll {
			continue
		}
		quality := st.Muted.Render(string(s.Quality))
		if s.Quality == entity.SlotOptimal {
			quality = st.Working.Render(string(s.Quality))
		}
		t.AddRow(tzcalc.FormatClock(s.StartUTC.In(ref)), quality, cityList(s.Available, cities), cityList(s.Unavailable, cities))
	}
	fmt.Fprint(out, t.View(st))
	return nil
}

func windowTable(title string, w entity.OverlapWindow) *table {
	t := newTable(title, "City", "Date", "From", "To")
	for _, span := range w.Local {
		t.AddRow(span.City, span.LocalDate, span.Start, span.End)
	}
	return t
}

func cityList(ids []string, cities map[string]string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, cities[id])
	}
	return strings.Join(names, ", ")
}
