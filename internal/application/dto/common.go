package dto

import "time"

// MessageResponse sobre fijo {message, code, timestamp} para respuestas sin datos.
type MessageResponse struct {
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}
