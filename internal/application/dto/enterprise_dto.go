package dto

import "github.com/google/uuid"

// CreateEnterpriseRequest entrada para crear una empresa.
// Punteros para distinguir campo ausente/null de cadena vacía: solo se exige presencia.
type CreateEnterpriseRequest struct {
	UUID        *string `json:"uuid,omitempty"` // opcional; si falta se genera al persistir
	RazonSocial *string `json:"razonSocial" validate:"required"`
	RFC         *string `json:"rfc" validate:"required"`
	Telefono    *string `json:"telefono" validate:"required"`
	Contacto    *string `json:"contacto" validate:"required"`
	Correo      *string `json:"correo" validate:"required"`
}

// EnterpriseResponse salida de una empresa.
type EnterpriseResponse struct {
	ID          int       `json:"id"`
	UUID        uuid.UUID `json:"uuid"`
	RazonSocial string    `json:"razonSocial"`
	RFC         string    `json:"rfc"`
	Telefono    string    `json:"telefono"`
	Contacto    string    `json:"contacto"`
	Correo      string    `json:"correo"`
}
