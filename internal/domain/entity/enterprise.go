package entity

import "github.com/google/uuid"

// Enterprise representa una empresa registrada (tabla enterprise).
type Enterprise struct {
	ID          int       // asignado por la base de datos al insertar
	UUID        uuid.UUID // identificador secundario, inmutable una vez asignado
	RazonSocial string
	RFC         string // registro federal de contribuyentes
	Telefono    string
	Contacto    string
	Correo      string
}

// EnsureUUID asigna un UUID aleatorio solo si aún no tiene uno.
// Debe llamarse justo antes de la primera persistencia.
func (e *Enterprise) EnsureUUID() {
	if e.UUID == uuid.Nil {
		e.UUID = uuid.New()
	}
}
