package export

import (
	"context"
	"fmt"
	"strings"

	"worldtime-service/internal/domain/entity"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFRenderer renders a meeting schedule table as PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// CanHandle reports whether format is pdf
func (r *PDFRenderer) CanHandle(format string) bool {
	return format == "pdf"
}

// Render lays the meeting out as a schedule table, one row per location
func (r *PDFRenderer) Render(ctx context.Context, plan *entity.MeetingPlan) (*entity.ExportFile, error) {
	if plan == nil {
		return nil, fmt.Errorf("nothing to render")
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Meeting schedule", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	source := plan.Source.City
	if source == "" {
		source = plan.Source.ID
	}
	m.AddRow(20,
		col.New(8).Add(
			text.New(fmt.Sprintf("%s %s in %s", plan.Query.Date, plan.Query.Time, source), props.Text{Top: 0}),
			text.New(fmt.Sprintf("Duration: %d minutes", plan.Query.DurationMinutes), props.Text{Top: 5}),
			text.New("UTC: "+plan.StartUTC.Format("2006-01-02 15:04")+" - "+plan.EndUTC.Format("15:04"), props.Text{Top: 10}),
		),
		col.New(4),
	)

	header := props.Text{Style: fontstyle.Bold, Size: 9}
	m.AddRow(10,
		text.NewCol(3, "City", header),
		text.NewCol(3, "Timezone", header),
		text.NewCol(2, "Date", header),
		text.NewCol(2, "Time", header),
		text.NewCol(2, "Status", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, c := range plan.Conversions {
		cell := props.Text{Size: 9}
		status := "Outside hours"
		if c.Status == entity.StatusWorking {
			status = "Working hours"
		}
		m.AddRow(8,
			text.NewCol(3, c.Location.TimeZone.City, cell),
			text.NewCol(3, fmt.Sprintf("%s (%s)", c.Location.TimeZone.ID, c.UTCOffset), cell),
			text.NewCol(2, c.LocalDate, cell),
			text.NewCol(2, c.LocalTime+" - "+c.LocalEndTime, cell),
			text.NewCol(2, status, props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return &entity.ExportFile{
		Filename:    fileName(plan, "pdf"),
		ContentType: "application/pdf",
		Data:        doc.GetBytes(),
	}, nil
}

func fileName(plan *entity.MeetingPlan, ext string) string {
	stamp := strings.ReplaceAll(plan.Query.Date+"-"+plan.Query.Time, ":", "")
	return fmt.Sprintf("meeting-%s.%s", stamp, ext)
}
