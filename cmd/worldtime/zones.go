package main

import (
	"fmt"
	"strings"

	"worldtime-service/internal/domain/entity"

	"github.com/spf13/cobra"
)

var zonesLimit int

var zonesCmd = &cobra.Command{
	Use:   "zones [query]",
	Short: "Search the timezone catalog by city, name, zone id or country code",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runZones,
}

func init() {
	zonesCmd.Flags().IntVarP(&zonesLimit, "limit", "n", 50, "Maximum number of results")
}

func runZones(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	var zones []entity.TimeZone
	if len(args) == 0 {
		zones, err = a.timezones.List(ctx)
		if len(zones) > zonesLimit {
			zones = zones[:zonesLimit]
		}
	} else {
		zones, err = a.timezones.Search(ctx, args[0], zonesLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to search catalog: %w", err)
	}

	title := "Timezones"
	if len(args) > 0 {
		title = fmt.Sprintf("Timezones matching %q", strings.TrimSpace(args[0]))
	}
	t := newTable(title, "Zone", "City", "Name", "Offset", "Country")
	for _, tz := range zones {
		t.AddRow(tz.ID, tz.City, tz.Name, tz.OffsetLabel(), tz.CountryCode)
	}
	fmt.Fprint(cmd.OutOrStdout(), t.View(newStyles()))
	return nil
}
