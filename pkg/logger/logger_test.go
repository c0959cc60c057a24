package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurantes-api/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Component("productos").Info().Int64("id", 7).Msg("producto creado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "productos", entry["component"])
	assert.Equal(t, "producto creado", entry["message"])
	assert.EqualValues(t, 7, entry["id"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("ignorado")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("registrado")
	assert.Contains(t, buf.String(), "registrado")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Output: &buf})

	log.Debug().Msg("detalle")
	log.Info().Msg("resumen")
	assert.NotContains(t, buf.String(), "detalle")
	assert.Contains(t, buf.String(), "resumen")
}
