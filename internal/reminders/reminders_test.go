package reminders

import (
	"context"
	"testing"
	"time"

	"physio-agenda/internal/domain/appointments"
	"physio-agenda/internal/platform/logger"

	"github.com/stretchr/testify/assert"
)

type stubAgenda struct {
	byDate map[string][]appointments.Appointment
}

func (s *stubAgenda) List(_ context.Context, date string) ([]appointments.Appointment, error) {
	return s.byDate[date], nil
}

type captureLogger struct {
	infos  []map[string]any
	errors []map[string]any
}

func (c *captureLogger) With(map[string]any) logger.Logger { return c }
func (c *captureLogger) Debug(string, map[string]any)      {}
func (c *captureLogger) Info(_ string, f map[string]any)   { c.infos = append(c.infos, f) }
func (c *captureLogger) Warn(string, map[string]any)       {}
func (c *captureLogger) Error(_ string, f map[string]any)  { c.errors = append(c.errors, f) }

func TestRunDailyLogsOnlyConfirmed(t *testing.T) {
	agenda := &stubAgenda{byDate: map[string][]appointments.Appointment{
		"2024-01-20": {
			{Date: "2024-01-20", Time: "10:00", PatientName: "María González", Status: appointments.StatusConfirmed},
			{Date: "2024-01-20", Time: "14:00", PatientName: "Carlos Rodríguez", Status: appointments.StatusPending},
			{Date: "2024-01-20", Time: "16:00", PatientName: "Ana Martínez", Status: appointments.StatusCancelled},
		},
	}}

	log := &captureLogger{}
	s := NewScheduler(agenda, log)
	s.now = func() time.Time {
		return time.Date(2024, time.January, 20, 7, 0, 0, 0, time.UTC)
	}

	s.runDaily()

	assert.Empty(t, log.errors)

	// Un recordatorio (solo la confirmada) + el resumen final.
	assert.Len(t, log.infos, 2)
	assert.Equal(t, "María González", log.infos[0]["patient"])

	summary := log.infos[len(log.infos)-1]
	assert.Equal(t, 3, summary["total"])
	assert.Equal(t, 1, summary["confirmed"])
}

func TestRunDailyEmptyDay(t *testing.T) {
	log := &captureLogger{}
	s := NewScheduler(&stubAgenda{byDate: map[string][]appointments.Appointment{}}, log)
	s.now = func() time.Time {
		return time.Date(2024, time.February, 1, 7, 0, 0, 0, time.UTC)
	}

	s.runDaily()

	assert.Empty(t, log.errors)
	assert.Len(t, log.infos, 1)
	assert.Equal(t, 0, log.infos[0]["total"])
}
