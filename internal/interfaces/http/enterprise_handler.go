package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gregdev/enterprises-api/internal/application/dto"
	"github.com/gregdev/enterprises-api/internal/application/usecase"
	"github.com/gregdev/enterprises-api/internal/domain"
	"github.com/gregdev/enterprises-api/pkg/logger"
)

// EnterpriseHandler maneja las peticiones HTTP para el recurso Enterprise.
// Es dueño de la validación de presencia y del mapeo resultado -> status/sobre.
type EnterpriseHandler struct {
	uc       *usecase.EnterpriseUseCase
	validate *validator.Validate
	log      *logger.Logger
}

// NewEnterpriseHandler construye el handler inyectando el caso de uso.
func NewEnterpriseHandler(uc *usecase.EnterpriseUseCase, log *logger.Logger) *EnterpriseHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &EnterpriseHandler{uc: uc, validate: validator.New(), log: log}
}

// Test godoc
// @Summary      Prueba de vida
// @Tags         enterprise
// @Produce      plain
// @Success      200  {string}  string  "Ok"
// @Router       /api/test [get]
func (h *EnterpriseHandler) Test(c *fiber.Ctx) error {
	return c.SendString("Ok")
}

// List godoc
// @Summary      Listar empresas (ID descendente)
// @Tags         enterprise
// @Produce      json
// @Success      200  {array}   dto.EnterpriseResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /api/enterprise [get]
func (h *EnterpriseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("listar empresas")
		return respond(c, outcomeWriteFailure)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         enterprise
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.EnterpriseResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      502  {object}  dto.MessageResponse
// @Router       /api/enterprise/{id} [get]
func (h *EnterpriseHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respond(c, outcomeInvalidID)
	}
	out, err := h.uc.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respond(c, outcomeNotFound)
		}
		h.log.Error().Err(err).Int("id", id).Msg("obtener empresa")
		return respond(c, outcomeReadFailure)
	}
	return c.JSON(out)
}

// GetByUUID godoc
// @Summary      Obtener empresa por UUID
// @Tags         enterprise
// @Produce      json
// @Param        uuid  path  string  true  "UUID de la empresa"
// @Success      200  {object}  dto.EnterpriseResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      502  {object}  dto.MessageResponse
// @Router       /api/enterprise/uuid/{uuid} [get]
func (h *EnterpriseHandler) GetByUUID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return respond(c, outcomeInvalidUUID)
	}
	out, err := h.uc.FindByUUID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respond(c, outcomeNotFound)
		}
		h.log.Error().Err(err).Str("uuid", id.String()).Msg("obtener empresa por uuid")
		return respond(c, outcomeReadFailure)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa
// @Tags         enterprise
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEnterpriseRequest  true  "Datos de la empresa"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /api/enterprise [post]
func (h *EnterpriseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEnterpriseRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, outcomeInvalidBody)
	}
	if err := h.validate.Struct(in); err != nil {
		return respond(c, outcomeMissingFields)
	}
	if _, err := h.uc.Save(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return respond(c, outcomeInvalidUUID)
		}
		h.log.Error().Err(err).Msg("crear empresa")
		return respond(c, outcomeWriteFailure)
	}
	return respond(c, outcomeCreated)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         enterprise
// @Produce      json
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /api/enterprise/{id} [delete]
func (h *EnterpriseHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respond(c, outcomeInvalidID)
	}
	ctx := c.UserContext()
	if _, err := h.uc.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respond(c, outcomeNotFound)
		}
		h.log.Error().Err(err).Int("id", id).Msg("buscar empresa a eliminar")
		return respond(c, outcomeWriteFailure)
	}
	if err := h.uc.Delete(ctx, id); err != nil {
		// otra petición pudo borrarla entre la búsqueda y el DELETE
		if errors.Is(err, domain.ErrNotFound) {
			return respond(c, outcomeNotFound)
		}
		h.log.Error().Err(err).Int("id", id).Msg("eliminar empresa")
		return respond(c, outcomeWriteFailure)
	}
	return respond(c, outcomeDeleted)
}
