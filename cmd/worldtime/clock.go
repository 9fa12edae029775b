package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	clockInterval time.Duration
	clockOnce     bool
)

var clockCmd = &cobra.Command{
	Use:   "clock LOCATION...",
	Short: "Show a live world clock until interrupted",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClock,
}

func init() {
	clockCmd.Flags().DurationVar(&clockInterval, "interval", usecase.DefaultClockInterval, "Refresh interval")
	clockCmd.Flags().BoolVar(&clockOnce, "once", false, "Print one reading and exit")
}

func runClock(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	locations, err := a.locations(ctx, args)
	if err != nil {
		return err
	}

	st := newStyles()
	out := cmd.OutOrStdout()
	wc := usecase.NewWorldClock(clock.System{}, clockInterval, tzModel, a.log)

	if clockOnce {
		fmt.Fprint(out, clockTable(wc.Snapshot(locations), st).View(st))
		return nil
	}

	first := true
	return wc.Run(ctx, func() []entity.Location { return locations }, func(readings []entity.ClockReading) error {
		if !first {
			// move the cursor back over the previous table
			fmt.Fprintf(out, "\033[%dA", len(readings)+3)
		}
		first = false
		_, err := fmt.Fprint(out, clockTable(readings, st).View(st))
		return err
	})
}

func clockTable(readings []entity.ClockReading, st styles) *table {
	t := newTable("World clock", "City", "Date", "Time", "Offset", "Status")
	for _, r := range readings {
		t.AddRow(r.Location.TimeZone.City, r.LocalDate, r.LocalTime, r.UTCOffset, st.status(r.Status))
	}
	return t
}
