package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers soportados para persistencia y almacenamiento de archivos.
const (
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"

	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env   string // development, staging, production
	Name  string
	Debug bool // expone el detalle de errores internos en respuestas 500
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig configuración del almacenamiento de imágenes de productos.
type StorageConfig struct {
	Driver    string // local | s3
	LocalRoot string // raíz del disco público local
	PublicURL string // URL base con la que se sirve LocalRoot
	S3        S3Config
}

// S3Config bucket compatible con S3 (AWS, Cloudflare R2, MinIO).
type S3Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// SwaggerConfig ubicación del documento OpenAPI servido en /docs.
type SwaggerConfig struct {
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:   getString(v, "APP_ENV", "development"),
			Name:  getString(v, "APP_NAME", "restaurantes-api"),
			Debug: getBool(v, "APP_DEBUG", false),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", DBDriverPostgres)),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "restaurantes"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 8),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(getString(v, "STORAGE_DRIVER", StorageDriverLocal)),
			LocalRoot: getString(v, "STORAGE_LOCAL_ROOT", "./storage/app/public"),
			PublicURL: strings.TrimRight(getString(v, "STORAGE_PUBLIC_URL", "http://localhost:8080/storage"), "/"),
			S3: S3Config{
				Endpoint:      getString(v, "S3_ENDPOINT", ""),
				Region:        getString(v, "S3_REGION", "auto"),
				Bucket:        getString(v, "S3_BUCKET", ""),
				AccessKey:     getString(v, "S3_ACCESS_KEY", ""),
				SecretKey:     getString(v, "S3_SECRET_KEY", ""),
				PublicBaseURL: strings.TrimRight(getString(v, "S3_PUBLIC_BASE_URL", ""), "/"),
			},
		},
		Swagger: SwaggerConfig{
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DBDriverPostgres, DBDriverMemory:
	default:
		return fmt.Errorf("DB_DRIVER inválido: %q", c.DB.Driver)
	}
	switch c.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverS3:
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET es requerido con STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q", c.Storage.Driver)
	}
	if c.HTTP.BodyLimitMB <= 0 {
		c.HTTP.BodyLimitMB = 8
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
