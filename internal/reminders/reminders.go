// Package reminders corre un job diario que repasa la agenda del día y
// loguea las citas confirmadas, para que el fisioterapeuta arranque la
// mañana con el resumen en los logs (o en el canal que lea los logs).
package reminders

import (
	"context"
	"time"

	"physio-agenda/internal/domain/appointments"
	"physio-agenda/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// AgendaSource es lo único que el job necesita de la agenda.
type AgendaSource interface {
	List(ctx context.Context, date string) ([]appointments.Appointment, error)
}

type Scheduler struct {
	cron   *cron.Cron
	agenda AgendaSource
	log    logger.Logger
	now    func() time.Time
}

func NewScheduler(agenda AgendaSource, log logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		agenda: agenda,
		log:    log,
		now:    time.Now,
	}
}

// Start registra el job de las 07:00 y arranca el cron en background.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 7 * * *", s.runDaily)
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop frena el cron y espera a que termine el job en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := s.now().Format("2006-01-02")

	all, err := s.agenda.List(ctx, today)
	if err != nil {
		s.log.Error("reminders: no se pudo leer la agenda del día", map[string]any{
			"date":  today,
			"error": err.Error(),
		})
		return
	}

	confirmed := 0
	for _, a := range all {
		if a.Status != appointments.StatusConfirmed {
			continue
		}
		confirmed++
		s.log.Info("recordatorio de cita", map[string]any{
			"date":    a.Date,
			"time":    a.Time,
			"patient": a.PatientName,
			"type":    a.Type,
		})
	}

	s.log.Info("resumen de agenda del día", map[string]any{
		"date":      today,
		"total":     len(all),
		"confirmed": confirmed,
	})
}
