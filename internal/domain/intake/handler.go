package intake

import (
	"encoding/json"
	"net/http"

	"physio-agenda/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, repo Repository, log logger.Logger) {
	r.Post("/intake/pacientes", registerPatientHandler(repo, log))
}

type registrationRequest struct {
	Nombre   string `json:"nombre"`
	Cedula   string `json:"cedula"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
}

// registerPatientHandler godoc
// @Summary Alta de paciente (intake relacional)
// @Description Inserta una fila en la tabla pacientes. Sin validación de entrada más allá de lo que exija la base, sin clave de idempotencia: envíos duplicados crean filas duplicadas. Cualquier error devuelve un 500 genérico; el detalle solo se loguea del lado del servidor.
// @Tags intake
// @Accept json
// @Produce json
// @Param payload body registrationRequest true "Datos del paciente"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /intake/pacientes [post]
func registerPatientHandler(repo Repository, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, log, err)
			return
		}

		err := repo.Insert(r.Context(), Registration{
			Nombre:   req.Nombre,
			Cedula:   req.Cedula,
			Telefono: req.Telefono,
			Correo:   req.Correo,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"mensaje": "Paciente guardado con éxito",
		})
	}
}

// writeError loguea el detalle y responde siempre el mismo 500 genérico:
// el cliente nunca ve el error subyacente.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	if log != nil {
		log.Error("intake insert failed", map[string]any{"error": err.Error()})
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "Error al guardar el paciente",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
