package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

// SurveyResponse es la respuesta cruda del cuestionario de un usuario.
// Data conserva el payload original de 50 digitos; Features es el mismo
// vector ya parseado, listo para el clasificador y para consultas vectoriales.
type SurveyResponse struct {
	EmailID   string          `json:"email_id"`
	Data      string          `json:"data"`
	Features  pgvector.Vector `json:"-"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PersonalInfo agrupa los datos personales declarados por el usuario.
// Es de escritura por su propio endpoint y de solo lectura desde el chat.
type PersonalInfo struct {
	EmailID          string    `json:"email_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	MaritalStatus    bool      `json:"marital_status"`
	EmploymentStatus bool      `json:"employment_status"`
	Education        bool      `json:"education"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ChatTurn es un par (mensaje del usuario, respuesta del sistema).
type ChatTurn struct {
	Message  string `json:"message"`
	Response string `json:"response"`
}

// ChatHistory es la secuencia ordenada de turnos de una sesion.
// La posee el caller: viaja en cada request/response y el servidor
// no la persiste hasta que la conversacion termina.
type ChatHistory []ChatTurn

// ChatRecord es la transcripcion persistida al terminar una conversacion.
type ChatRecord struct {
	ID        string          `json:"id"`
	EmailID   string          `json:"email_id"`
	History   ChatHistory     `json:"history"`
	Inference CategoryProfile `json:"inference"`
	CreatedAt time.Time       `json:"created_at"`
}

// ChatResult es la salida de un turno de conversacion.
// Stop=true marca el paso ACTIVE -> STOPPED; no hay transicion de vuelta.
type ChatResult struct {
	Response string      `json:"response"`
	History  ChatHistory `json:"history"`
	Stop     bool        `json:"stop"`
}
