package intake

import "context"

// Registration es el alta de paciente que llega por el endpoint relacional.
// Los nombres de campo son los del formulario original, en castellano.
type Registration struct {
	Nombre   string
	Cedula   string
	Telefono string
	Correo   string
}

// Repository inserta una fila por registro. Sin clave de idempotencia:
// dos envíos iguales crean dos filas.
type Repository interface {
	Insert(ctx context.Context, reg Registration) error
}
