package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	_ "physio-agenda/docs"
	fileadapter "physio-agenda/internal/adapters/storage/file"
	mem "physio-agenda/internal/adapters/storage/memory"
	pg "physio-agenda/internal/adapters/storage/postgres"
	"physio-agenda/internal/domain/appointments"
	"physio-agenda/internal/domain/intake"
	"physio-agenda/internal/domain/patients"
	"physio-agenda/internal/domain/reports"
	"physio-agenda/internal/domain/schedule"
	"physio-agenda/internal/middleware"
	"physio-agenda/internal/platform/logger"
	"physio-agenda/internal/ports/auth"
	"physio-agenda/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Backend de persistencia, en orden de prioridad:
	// - DB (o env DB_DSN): Postgres.
	// - DataDir (o env DATA_DIR): archivos JSON en disco.
	// - Nada: in-memory.
	DB      *sql.DB
	DataDir string

	// SeedDemoData precarga las fichas y citas de demo cuando el backend
	// arranca vacío (file o memory; Postgres nunca se siembra).
	SeedDemoData bool

	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(opts.Logger))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		patientRepo patients.Repository
		apptRepo    appointments.Repository
		intakeRepo  intake.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = os.Getenv("DATA_DIR")
	}

	var seedPatients []patients.Patient
	var seedAppts []appointments.Appointment
	if opts.SeedDemoData {
		seedPatients = seed.Patients()
		seedAppts = seed.Appointments()
	}

	switch {
	case db != nil:
		patientRepo = pg.NewPatientsRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
		intakeRepo = pg.NewIntakeRepo(db)

	case dataDir != "":
		store, err := fileadapter.NewStore(dataDir)
		if err != nil {
			return nil, err
		}
		patientRepo, err = fileadapter.NewPatientsRepo(store, seedPatients)
		if err != nil {
			return nil, err
		}
		apptRepo, err = fileadapter.NewAppointmentsRepo(store, seedAppts)
		if err != nil {
			return nil, err
		}
		// El intake siempre es un INSERT directo; sin base va a memoria.
		intakeRepo = mem.NewIntakeRepo()

	default:
		patientRepo = mem.NewPatientsRepo()
		apptRepo = mem.NewAppointmentsRepo()
		intakeRepo = mem.NewIntakeRepo()

		ctx := context.Background()
		for _, p := range seedPatients {
			_ = patientRepo.Create(ctx, p)
		}
		for _, a := range seedAppts {
			_ = apptRepo.Create(ctx, a)
		}
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientRepo)
	apptsSvc := appointments.NewService(apptRepo)
	reportsSvc := reports.NewService(patientsSvc, apptsSvc)

	// Rutas por módulo. Con verifier configurado, todo lo que no sea
	// health/swagger/intake exige sesión.
	r.Group(func(api chi.Router) {
		if opts.AuthVerifier != nil {
			api.Use(middleware.RequireAuth)
		}

		patients.RegisterRoutes(api, patientsSvc)
		appointments.RegisterRoutes(api, apptsSvc, patientsSvc)
		schedule.RegisterRoutes(api, apptsSvc)
		reports.RegisterRoutes(api, reportsSvc)
	})

	// El formulario público de alta no pasa por auth.
	intake.RegisterRoutes(r, intakeRepo, opts.Logger)

	return r, nil
}
