package patients

import "context"

// Repository persiste la colección de pacientes. Las implementaciones
// devuelven ErrNotFound cuando el id no existe.
type Repository interface {
	Create(ctx context.Context, p Patient) error
	Update(ctx context.Context, p Patient) error
	GetByID(ctx context.Context, id string) (Patient, error)
	List(ctx context.Context) ([]Patient, error)
	Delete(ctx context.Context, id string) error
}
