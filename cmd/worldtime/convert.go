package main

import (
	"fmt"
	"strconv"

	"worldtime-service/internal/domain/entity"

	"github.com/spf13/cobra"
)

var (
	convertDate     string
	convertTime     string
	convertFrom     string
	convertDuration int
)

var convertCmd = &cobra.Command{
	Use:   "convert LOCATION...",
	Short: "Convert a meeting time into each location",
	Example: `  worldtime convert --date 2024-03-01 --time 14:00 --from Asia/Jakarta \
    Europe/London America/New_York`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertDate, "date", "", "Meeting date, YYYY-MM-DD (required)")
	convertCmd.Flags().StringVar(&convertTime, "time", "", "Meeting time, HH:MM (required)")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Zone the meeting time is given in (required)")
	convertCmd.Flags().IntVar(&convertDuration, "duration", entity.DefaultMeetingMinutes, "Meeting length in minutes")
	_ = convertCmd.MarkFlagRequired("date")
	_ = convertCmd.MarkFlagRequired("time")
	_ = convertCmd.MarkFlagRequired("from")
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	locations, err := a.locations(ctx, args)
	if err != nil {
		return err
	}

	plan, err := a.planner.ConvertMeetingAcrossLocations(ctx, entity.MeetingQuery{
		Date:            convertDate,
		Time:            convertTime,
		TimezoneID:      convertFrom,
		DurationMinutes: convertDuration,
	}, locations)
	if err != nil {
		return err
	}

	st := newStyles()
	title := fmt.Sprintf("%s %s in %s (%d min)", plan.Query.Date, plan.Query.Time, plan.Source.City, plan.Query.DurationMinutes)
	t := newTable(title, "City", "Date", "Time", "Offset", "Day", "Status")
	for _, c := range plan.Conversions {
		status := st.status(c.Status)
		if c.Status == entity.StatusWorking && !c.FullyWithin {
			status += st.Muted.Render(" (runs over)")
		}
		t.AddRow(
			c.Location.TimeZone.City,
			c.LocalDate,
			c.LocalTime+"-"+c.LocalEndTime,
			c.UTCOffset,
			dayOffsetLabel(c.DayOffset),
			status,
		)
	}
	fmt.Fprint(cmd.OutOrStdout(), t.View(st))
	return nil
}

func dayOffsetLabel(offset int) string {
	switch {
	case offset > 0:
		return "+" + strconv.Itoa(offset)
	case offset < 0:
		return strconv.Itoa(offset)
	default:
		return ""
	}
}
