// Command worldtime compares timezones from the terminal: catalog search,
// meeting conversion, slot suggestion and a live world clock.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/domain/repository"
	"worldtime-service/internal/infrastructure/persistence"
	timezoneRepo "worldtime-service/internal/interface/repository"
	"worldtime-service/internal/usecase"
	"worldtime-service/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	tzModel  string
	logLevel string
	noColor  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "worldtime",
	Short: "Compare timezones and plan meetings across them",
	Long: `worldtime compares the local time of several cities, converts a meeting
time into each of them and suggests slots that fall inside everyone's
working hours.

Locations are IANA zone ids, optionally followed by working hours:
  Europe/London            uses 09:00-17:00
  Asia/Tokyo=08:30-18:00
  America/New_York=22:00-06:00  (overnight shift)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if tzModel != entity.TZModelIANA && tzModel != entity.TZModelFixed {
			return fmt.Errorf("--tz-model must be %q or %q", entity.TZModelIANA, entity.TZModelFixed)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tzModel, "tz-model", entity.TZModelIANA, "Timezone model: iana (DST aware) or fixed (catalog offsets)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(clockCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires the use cases over an in-memory catalog.
type app struct {
	timezones repository.TimezoneRepository
	planner   *usecase.MeetingPlanner
	log       logger.Logger
}

func newApp(ctx context.Context) (*app, error) {
	log := logger.NewLogger(logLevel)

	db, err := persistence.OpenGorm("sqlite", "", "file:worldtime-cli?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if err := timezoneRepo.MigrateTimezones(ctx, db, timezoneRepo.DefaultCatalog); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	timezones := timezoneRepo.NewGormTimezoneRepository(db)
	return &app{
		timezones: timezones,
		planner:   usecase.NewMeetingPlanner(timezones, clock.System{}, tzModel, log, nil),
		log:       log,
	}, nil
}

// parseLocationArg reads "Zone/Id" or "Zone/Id=HH:MM-HH:MM".
func parseLocationArg(arg string) (entity.LocationInput, error) {
	zone, hours, hasHours := strings.Cut(strings.TrimSpace(arg), "=")
	if zone == "" {
		return entity.LocationInput{}, fmt.Errorf("empty location %q", arg)
	}

	in := entity.LocationInput{TimezoneID: zone}
	if hasHours {
		start, end, ok := strings.Cut(hours, "-")
		if !ok {
			return entity.LocationInput{}, fmt.Errorf("%w: %q, want HH:MM-HH:MM", entity.ErrInvalidWorkingHours, hours)
		}
		in.WorkingHours = entity.WorkingHours{Start: start, End: end}
	}
	return in, nil
}

func parseLocationArgs(args []string) ([]entity.LocationInput, error) {
	inputs := make([]entity.LocationInput, 0, len(args))
	for _, arg := range args {
		in, err := parseLocationArg(arg)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func (a *app) locations(ctx context.Context, args []string) ([]entity.Location, error) {
	inputs, err := parseLocationArgs(args)
	if err != nil {
		return nil, err
	}
	return a.planner.ResolveLocations(ctx, inputs)
}
