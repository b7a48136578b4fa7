package appointments

import "context"

// Repository persiste la colección de citas. Las implementaciones devuelven
// ErrNotFound cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	ListByDate(ctx context.Context, date string) ([]Appointment, error)
	Delete(ctx context.Context, id string) error
}
