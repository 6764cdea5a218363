package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gregdev/enterprises-api/internal/application/dto"
)

// Códigos del sobre de respuesta.
const (
	CodeSuccess    = "AC200"
	CodeBadRequest = "AC400"
	CodeNotFound   = "AC404"
	CodeInternal   = "AC500"
)

const msgInternal = "An internal server error occurred."

// outcome enumera los resultados que el handler traduce a (status, message, code).
type outcome int

const (
	outcomeCreated outcome = iota
	outcomeDeleted
	outcomeNotFound
	outcomeInvalidUUID
	outcomeMissingFields
	outcomeInvalidID
	outcomeInvalidBody
	outcomeReadFailure  // lecturas puntuales: 502, contrato heredado por clientes existentes
	outcomeWriteFailure // escrituras y listado: 500
)

type outcomeDef struct {
	status  int
	message string
	code    string
}

var outcomes = map[outcome]outcomeDef{
	outcomeCreated:       {fiber.StatusOK, "Record created successfully", CodeSuccess},
	outcomeDeleted:       {fiber.StatusOK, "Record deleted successfully", CodeSuccess},
	outcomeNotFound:      {fiber.StatusNotFound, "Record not found", CodeNotFound},
	outcomeInvalidUUID:   {fiber.StatusBadRequest, "Invalid UUID format", CodeBadRequest},
	outcomeMissingFields: {fiber.StatusBadRequest, "All fields are required.", CodeBadRequest},
	outcomeInvalidID:     {fiber.StatusBadRequest, "Invalid ID format", CodeBadRequest},
	outcomeInvalidBody:   {fiber.StatusBadRequest, "Invalid request body", CodeBadRequest},
	outcomeReadFailure:   {fiber.StatusBadGateway, msgInternal, CodeInternal},
	outcomeWriteFailure:  {fiber.StatusInternalServerError, msgInternal, CodeInternal},
}

func respond(c *fiber.Ctx, o outcome) error {
	s := outcomes[o]
	return writeEnvelope(c, s.status, s.message, s.code)
}

func writeEnvelope(c *fiber.Ctx, status int, message, code string) error {
	return c.Status(status).JSON(dto.MessageResponse{
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UTC(),
	})
}
