package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurantes-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, config.DBDriverPostgres, cfg.DB.Driver)
	assert.Equal(t, config.StorageDriverLocal, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 25, cfg.DB.MaxConns)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "MEMORY")
	t.Setenv("STORAGE_PUBLIC_URL", "https://cdn.example.com/storage/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.DBDriverMemory, cfg.DB.Driver)
	assert.Equal(t, "https://cdn.example.com/storage", cfg.Storage.PublicURL, "la barra final se elimina")
}

func TestLoad_S3SinBucket_RetornaError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "s3")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DriverInvalido_RetornaError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "admin", Password: "p@ss:word", DBName: "restaurantes", SSLMode: "disable"}
	assert.Equal(t, "postgres://admin:p%40ss%3Aword@db:5432/restaurantes?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
