package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurantes-api/internal/domain"
	apphttp "github.com/jhoicas/restaurantes-api/internal/interfaces/http"
	"github.com/jhoicas/restaurantes-api/pkg/logger"
)

func respond(t *testing.T, debug bool, err error) (int, map[string]any) {
	t.Helper()
	f := apphttp.NewErrorFormatter(debug, logger.Nop())
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return f.Respond(c, err) })

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, testErr)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorFormatter_InternoSinDebug(t *testing.T) {
	status, body := respond(t, false, errors.New("conexión rechazada"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "Error interno del servidor", body["message"])
	assert.Equal(t, "Contacte al administrador", body["error"])
}

func TestErrorFormatter_InternoConDebug(t *testing.T) {
	_, body := respond(t, true, errors.New("conexión rechazada"))
	assert.Equal(t, "conexión rechazada", body["error"])
}

func TestErrorFormatter_Conflicto(t *testing.T) {
	status, body := respond(t, false, fmt.Errorf("insert producto: %w", domain.ErrConflict))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestErrorFormatter_NoEncontradoEnvuelto(t *testing.T) {
	status, body := respond(t, false, fmt.Errorf("cargar: %w", domain.ErrCategoryNotFound))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Categoría no encontrada", body["message"])
}
