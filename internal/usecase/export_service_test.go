package usecase

import (
	"context"
	"errors"
	"testing"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	format string
	err    error
	render func(plan *entity.MeetingPlan)
}

func (r *stubRenderer) CanHandle(format string) bool { return format == r.format }

func (r *stubRenderer) Render(ctx context.Context, plan *entity.MeetingPlan) (*entity.ExportFile, error) {
	if r.render != nil {
		r.render(plan)
	}
	if r.err != nil {
		return nil, r.err
	}
	return &entity.ExportFile{Filename: "meeting." + r.format, ContentType: "text/plain", Data: []byte(plan.Source.City)}, nil
}

type stubRouter struct {
	renderers []MeetingRenderer
}

func (r *stubRouter) Register(renderer MeetingRenderer) {
	r.renderers = append(r.renderers, renderer)
}

func (r *stubRouter) GetRenderer(format string) MeetingRenderer {
	for _, renderer := range r.renderers {
		if renderer.CanHandle(format) {
			return renderer
		}
	}
	return nil
}

func newExportFixture(t *testing.T, renderer *stubRenderer) (*ExportService, *ComparisonSession, *SessionManager) {
	t.Helper()
	planner, repo, m := newTestPlanner(entity.TZModelFixed)
	sessions := NewSessionManager(repo, planner.clock, 0, logger.NewNopLogger(), m)
	router := &stubRouter{}
	router.Register(renderer)

	s := sessions.Create()
	_, err := sessions.AddLocation(context.Background(), s.ID, "Europe/London", "", "")
	require.NoError(t, err)

	return NewExportService(planner, router, logger.NewNopLogger(), m), s, sessions
}

func TestExportRendersSessionMeeting(t *testing.T) {
	var seen *entity.MeetingPlan
	svc, s, _ := newExportFixture(t, &stubRenderer{format: "ics", render: func(p *entity.MeetingPlan) { seen = p }})

	file, err := svc.Export(context.Background(), s, " ICS ", jakartaQuery())
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", string(file.Data))
	require.NotNil(t, seen)
	require.Len(t, seen.Conversions, 1)
	assert.Equal(t, "07:00", seen.Conversions[0].LocalTime)
	assert.False(t, s.Busy().Busy())
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.metrics.Exports.WithLabelValues("ics")))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc, s, _ := newExportFixture(t, &stubRenderer{format: "ics"})

	_, err := svc.Export(context.Background(), s, "docx", jakartaQuery())
	assert.ErrorIs(t, err, entity.ErrUnsupportedExport)
}

func TestExportRejectsConcurrentExport(t *testing.T) {
	var nested error
	svc, s, _ := newExportFixture(t, &stubRenderer{format: "pdf"})
	svc.router.Register(&stubRenderer{format: "ics", render: func(*entity.MeetingPlan) {
		_, nested = svc.Export(context.Background(), s, "pdf", jakartaQuery())
	}})

	_, err := svc.Export(context.Background(), s, "ics", jakartaQuery())
	require.NoError(t, err)
	assert.ErrorIs(t, nested, entity.ErrBusy)

	require.True(t, s.Busy().TryAcquire())
	_, err = svc.Export(context.Background(), s, "pdf", jakartaQuery())
	assert.ErrorIs(t, err, entity.ErrBusy)
	s.Busy().Release()

	_, err = svc.Export(context.Background(), s, "pdf", jakartaQuery())
	assert.NoError(t, err)
}

func TestExportReleasesGuardOnFailure(t *testing.T) {
	svc, s, _ := newExportFixture(t, &stubRenderer{format: "pdf", err: errors.New("disk full")})

	_, err := svc.Export(context.Background(), s, "pdf", jakartaQuery())
	assert.ErrorContains(t, err, "disk full")
	assert.False(t, s.Busy().Busy())

	q := jakartaQuery()
	q.Time = "25:00"
	_, err = svc.Export(context.Background(), s, "pdf", q)
	assert.ErrorIs(t, err, entity.ErrInvalidMeeting)
	assert.False(t, s.Busy().Busy())
}
