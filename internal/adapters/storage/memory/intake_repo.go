package memory

import (
	"context"
	"sync"

	"physio-agenda/internal/domain/intake"
)

// intakeRepo acumula registros en memoria. Sirve para dev y tests; en
// producción el intake escribe en Postgres.
type intakeRepo struct {
	mu   sync.Mutex
	rows []intake.Registration
}

func NewIntakeRepo() intake.Repository {
	return &intakeRepo{}
}

func (r *intakeRepo) Insert(ctx context.Context, reg intake.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Append sin deduplicar: cada envío es una fila.
	r.rows = append(r.rows, reg)
	return nil
}
