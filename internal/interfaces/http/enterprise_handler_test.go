package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregdev/enterprises-api/internal/application/usecase"
	"github.com/gregdev/enterprises-api/internal/domain/entity"
	"github.com/gregdev/enterprises-api/internal/domain/repository"
	"github.com/gregdev/enterprises-api/internal/infrastructure/memory"
	apphttp "github.com/gregdev/enterprises-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var errDB = errors.New("conexión perdida")

// failingRepo delega en el repositorio en memoria salvo en las operaciones marcadas para fallar.
type failingRepo struct {
	*memory.EnterpriseRepo
	failGet    bool
	failCreate bool
	failDelete bool
	failList   bool
}

var _ repository.EnterpriseRepository = (*failingRepo)(nil)

func (r *failingRepo) GetByID(ctx context.Context, id int) (*entity.Enterprise, error) {
	if r.failGet {
		return nil, errDB
	}
	return r.EnterpriseRepo.GetByID(ctx, id)
}

func (r *failingRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*entity.Enterprise, error) {
	if r.failGet {
		return nil, errDB
	}
	return r.EnterpriseRepo.GetByUUID(ctx, id)
}

func (r *failingRepo) Create(ctx context.Context, e *entity.Enterprise) error {
	if r.failCreate {
		return errDB
	}
	return r.EnterpriseRepo.Create(ctx, e)
}

func (r *failingRepo) Delete(ctx context.Context, id int) error {
	if r.failDelete {
		return errDB
	}
	return r.EnterpriseRepo.Delete(ctx, id)
}

func (r *failingRepo) List(ctx context.Context) ([]*entity.Enterprise, error) {
	if r.failList {
		return nil, errDB
	}
	return r.EnterpriseRepo.List(ctx)
}

func buildTestApp(repo repository.EnterpriseRepository) *fiber.App {
	return apphttp.NewApp(apphttp.RouterDeps{
		EnterpriseUC: usecase.NewEnterpriseUseCase(repo),
		ServiceName:  "enterprises-api-test",
		BasePath:     "/api",
	})
}

func acmeBody() map[string]any {
	return map[string]any{
		"razonSocial": "Acme",
		"rfc":         "ACM010101",
		"telefono":    "555",
		"contacto":    "Jane",
		"correo":      "j@acme.com",
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.([]byte)
		if !ok {
			var err error
			raw, err = json.Marshal(body)
			require.NoError(t, err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

type envelope struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

type record struct {
	ID          int    `json:"id"`
	UUID        string `json:"uuid"`
	RazonSocial string `json:"razonSocial"`
	RFC         string `json:"rfc"`
	Telefono    string `json:"telefono"`
	Contacto    string `json:"contacto"`
	Correo      string `json:"correo"`
}

// assertEnvelope verifica status, código y mensaje del sobre estándar.
func assertEnvelope(t *testing.T, resp *http.Response, data []byte, status int, code, message string) {
	t.Helper()
	assert.Equal(t, status, resp.StatusCode, "status inesperado; body=%s", data)
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env), "el cuerpo debe ser un sobre JSON")
	assert.Equal(t, code, env.Code)
	assert.Equal(t, message, env.Message)
	assert.NotEmpty(t, env.Timestamp, "el sobre siempre lleva timestamp")
}

func listRecords(t *testing.T, app *fiber.App) []record {
	t.Helper()
	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []record
	require.NoError(t, json.Unmarshal(data, &list))
	return list
}

func createAcme(t *testing.T, app *fiber.App) {
	t.Helper()
	resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", acmeBody())
	assertEnvelope(t, resp, data, http.StatusOK, "AC200", "Record created successfully")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas básicas
// ──────────────────────────────────────────────────────────────────────────────

func TestTest_DevuelveOk(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodGet, "/api/test", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ok", string(data))
}

func TestRutaInexistente_SobreAC404(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodGet, "/api/nada", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var env envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "AC404", env.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear + consultar
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_CrearYObtenerPorID(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	createAcme(t, app)

	list := listRecords(t, app)
	require.Len(t, list, 1)
	id := list[0].ID

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise/"+strconv.Itoa(id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Acme", got.RazonSocial)
	assert.Equal(t, "ACM010101", got.RFC)
	assert.Equal(t, "555", got.Telefono)
	assert.Equal(t, "Jane", got.Contacto)
	assert.Equal(t, "j@acme.com", got.Correo)
	parsed, err := uuid.Parse(got.UUID)
	require.NoError(t, err, "el uuid generado debe ser válido")
	assert.NotEqual(t, uuid.Nil, parsed)

	// el uuid es estable entre lecturas
	_, again := doRequest(t, app, http.MethodGet, "/api/enterprise/"+strconv.Itoa(id), nil)
	var second record
	require.NoError(t, json.Unmarshal(again, &second))
	assert.Equal(t, got.UUID, second.UUID)
}

func TestCrearDosVeces_IDsYUUIDsDistintos(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	createAcme(t, app)
	createAcme(t, app)

	list := listRecords(t, app)
	require.Len(t, list, 2)
	assert.NotEqual(t, list[0].ID, list[1].ID)
	assert.NotEqual(t, list[0].UUID, list[1].UUID)
}

func TestCrear_RespetaUUIDRecibido(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	body := acmeBody()
	body["uuid"] = "6f1c2d3e-4a5b-4c6d-8e7f-901234567890"

	resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", body)
	assertEnvelope(t, resp, data, http.StatusOK, "AC200", "Record created successfully")

	resp, _ = doRequest(t, app, http.MethodGet, "/api/enterprise/uuid/6f1c2d3e-4a5b-4c6d-8e7f-901234567890", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCrear_CampoFaltante(t *testing.T) {
	for _, field := range []string{"razonSocial", "rfc", "telefono", "contacto", "correo"} {
		t.Run(field, func(t *testing.T) {
			app := buildTestApp(memory.NewEnterpriseRepository())
			body := acmeBody()
			delete(body, field)

			resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", body)

			assertEnvelope(t, resp, data, http.StatusBadRequest, "AC400", "All fields are required.")
			assert.Empty(t, listRecords(t, app), "no debe persistirse ninguna fila")
		})
	}
}

func TestCrear_CampoNull(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	body := acmeBody()
	body["correo"] = nil

	resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", body)

	assertEnvelope(t, resp, data, http.StatusBadRequest, "AC400", "All fields are required.")
	assert.Empty(t, listRecords(t, app))
}

func TestCrear_CadenaVaciaCuentaComoPresente(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	body := acmeBody()
	body["telefono"] = ""

	resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", body)

	assertEnvelope(t, resp, data, http.StatusOK, "AC200", "Record created successfully")
	list := listRecords(t, app)
	require.Len(t, list, 1)
	assert.Equal(t, "", list[0].Telefono)
}

func TestCrear_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", []byte(`{"razonSocial":`))

	assertEnvelope(t, resp, data, http.StatusBadRequest, "AC400", "Invalid request body")
}

func TestCrear_UUIDInvalido(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	body := acmeBody()
	body["uuid"] = "not-a-uuid"

	resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", body)

	assertEnvelope(t, resp, data, http.StatusBadRequest, "AC400", "Invalid UUID format")
	assert.Empty(t, listRecords(t, app))
}

func TestCrear_FalloAlGuardar_500(t *testing.T) {
	app := buildTestApp(&failingRepo{EnterpriseRepo: memory.NewEnterpriseRepository(), failCreate: true})

	resp, data := doRequest(t, app, http.MethodPost, "/api/enterprise", acmeBody())

	assertEnvelope(t, resp, data, http.StatusInternalServerError, "AC500", "An internal server error occurred.")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestObtenerPorID_NoExiste(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise/-1", nil)

	assertEnvelope(t, resp, data, http.StatusNotFound, "AC404", "Record not found")
}

func TestObtenerPorID_IDNoNumerico(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise/abc", nil)

	assertEnvelope(t, resp, data, http.StatusBadRequest, "AC400", "Invalid ID format")
}

func TestObtenerPorID_FalloDeAlmacenamiento_502(t *testing.T) {
	app := buildTestApp(&failingRepo{EnterpriseRepo: memory.NewEnterpriseRepository(), failGet: true})

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise/1", nil)

	assertEnvelope(t, resp, data, http.StatusBadGateway, "AC500", "An internal server error occurred.")
}

func TestObtenerPorUUID_Malformado(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise/uuid/not-a-uuid", nil)

	assertEnvelope(t, resp, data, http.StatusBadRequest, "AC400", "Invalid UUID format")
}

func TestObtenerPorUUID_NoExiste(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise/uuid/"+uuid.NewString(), nil)

	assertEnvelope(t, resp, data, http.StatusNotFound, "AC404", "Record not found")
}

func TestObtenerPorUUID_FalloDeAlmacenamiento_502(t *testing.T) {
	app := buildTestApp(&failingRepo{EnterpriseRepo: memory.NewEnterpriseRepository(), failGet: true})

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise/uuid/"+uuid.NewString(), nil)

	assertEnvelope(t, resp, data, http.StatusBadGateway, "AC500", "An internal server error occurred.")
}

func TestObtenerPorUUID_IgualQuePorID(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	createAcme(t, app)
	created := listRecords(t, app)[0]

	_, byID := doRequest(t, app, http.MethodGet, "/api/enterprise/"+strconv.Itoa(created.ID), nil)
	resp, byUUID := doRequest(t, app, http.MethodGet, "/api/enterprise/uuid/"+created.UUID, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, string(byID), string(byUUID))
}

func TestListar_OrdenDescendente(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	for i := 0; i < 3; i++ {
		createAcme(t, app)
	}

	list := listRecords(t, app)

	require.Len(t, list, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestListar_VacioDevuelveArreglo(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(data))
}

func TestListar_FalloDeAlmacenamiento_500(t *testing.T) {
	app := buildTestApp(&failingRepo{EnterpriseRepo: memory.NewEnterpriseRepository(), failList: true})

	resp, data := doRequest(t, app, http.MethodGet, "/api/enterprise", nil)

	assertEnvelope(t, resp, data, http.StatusInternalServerError, "AC500", "An internal server error occurred.")
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_LuegoObtener404(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())
	createAcme(t, app)
	id := strconv.Itoa(listRecords(t, app)[0].ID)

	resp, data := doRequest(t, app, http.MethodDelete, "/api/enterprise/"+id, nil)
	assertEnvelope(t, resp, data, http.StatusOK, "AC200", "Record deleted successfully")

	resp, data = doRequest(t, app, http.MethodGet, "/api/enterprise/"+id, nil)
	assertEnvelope(t, resp, data, http.StatusNotFound, "AC404", "Record not found")
}

func TestEliminar_NoExiste(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodDelete, "/api/enterprise/42", nil)

	assertEnvelope(t, resp, data, http.StatusNotFound, "AC404", "Record not found")
}

func TestEliminar_IDNoNumerico(t *testing.T) {
	app := buildTestApp(memory.NewEnterpriseRepository())

	resp, data := doRequest(t, app, http.MethodDelete, "/api/enterprise/xyz", nil)

	assertEnvelope(t, resp, data, http.StatusBadRequest, "AC400", "Invalid ID format")
}

func TestEliminar_FalloEnBusqueda_500(t *testing.T) {
	app := buildTestApp(&failingRepo{EnterpriseRepo: memory.NewEnterpriseRepository(), failGet: true})

	resp, data := doRequest(t, app, http.MethodDelete, "/api/enterprise/1", nil)

	assertEnvelope(t, resp, data, http.StatusInternalServerError, "AC500", "An internal server error occurred.")
}

func TestEliminar_FalloEnDelete_500(t *testing.T) {
	repo := &failingRepo{EnterpriseRepo: memory.NewEnterpriseRepository()}
	app := buildTestApp(repo)
	createAcme(t, app)
	repo.failDelete = true

	resp, data := doRequest(t, app, http.MethodDelete, "/api/enterprise/1", nil)

	assertEnvelope(t, resp, data, http.StatusInternalServerError, "AC500", "An internal server error occurred.")
	assert.Len(t, listRecords(t, app), 1, "la fila sigue existiendo")
}
