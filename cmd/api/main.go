package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"physio-agenda/internal/adapters/auth/gate"
	fileadapter "physio-agenda/internal/adapters/storage/file"
	pg "physio-agenda/internal/adapters/storage/postgres"
	"physio-agenda/internal/domain/appointments"
	"physio-agenda/internal/platform/logger"
	"physio-agenda/internal/ports/auth"
	"physio-agenda/internal/reminders"
	"physio-agenda/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional; en prod las vars vienen del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	verifier := buildVerifier(log)

	h, err := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DataDir:      os.Getenv("DATA_DIR"),
		SeedDemoData: envBool("SEED_DEMO_DATA"),
		Logger:       log,
	})
	if err != nil {
		log.Error("router init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	startReminders(log)

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// buildVerifier arma el verifier contra el gate remoto si está
// configurado por env. Sin AUTH_GATE_URL el server corre en modo dev
// (X-Debug-User-ID).
func buildVerifier(log logger.Logger) auth.AuthVerifier {
	baseURL := strings.TrimSpace(os.Getenv("AUTH_GATE_URL"))
	if baseURL == "" {
		log.Warn("auth gate not configured, running in dev mode", nil)
		return nil
	}

	client, err := gate.NewClient(gate.Config{
		BaseURL:      baseURL,
		APIKey:       os.Getenv("AUTH_GATE_API_KEY"),
		APIKeyHeader: os.Getenv("AUTH_GATE_API_KEY_HEADER"),
	})
	if err != nil {
		log.Error("auth gate config invalid", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	return gate.NewVerifier(client)
}

// startReminders levanta el cron diario de recordatorios. Solo tiene
// sentido con persistencia real (DB_DSN o DATA_DIR): el job abre su
// propia vista de lectura sobre la agenda.
func startReminders(log logger.Logger) {
	if !envBool("REMINDERS_ENABLED") {
		return
	}

	agenda, err := reminderAgenda()
	if err != nil {
		log.Error("reminders init failed", map[string]any{"error": err.Error()})
		return
	}
	if agenda == nil {
		log.Warn("reminders enabled but no DB_DSN/DATA_DIR, skipping", nil)
		return
	}

	sched := reminders.NewScheduler(agenda, log)
	if err := sched.Start(); err != nil {
		log.Error("reminders start failed", map[string]any{"error": err.Error()})
		return
	}
	log.Info("reminders scheduler started", nil)
}

func reminderAgenda() (reminders.AgendaSource, error) {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			return nil, err
		}
		return appointments.NewService(pg.NewAppointmentsRepo(db)), nil
	}

	if dataDir := strings.TrimSpace(os.Getenv("DATA_DIR")); dataDir != "" {
		store, err := fileadapter.NewStore(dataDir)
		if err != nil {
			return nil, err
		}
		repo, err := fileadapter.NewAppointmentsRepo(store, nil)
		if err != nil {
			return nil, err
		}
		return appointments.NewService(repo), nil
	}

	return nil, nil
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes"
}
