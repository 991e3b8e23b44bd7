package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Poll    PollConfig
	MockAPI MockAPIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP de la vista local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig backend REST de EstoqueSpy.
// URL vacía = modo offline con datos en memoria.
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// Offline indica que no hay backend configurado.
func (c BackendConfig) Offline() bool { return c.URL == "" }

// PollConfig intervalos de polling por recurso.
type PollConfig struct {
	ProductsInterval  time.Duration
	MovementsInterval time.Duration
}

// MockAPIConfig backend simulado (cmd/mockapi).
type MockAPIConfig struct {
	Host string
	Port int
	Seed bool // cargar datos de ejemplo al iniciar
}

// Addr devuelve la dirección de escucha (host:port).
func (c MockAPIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, PRODUCTS_POLL_INTERVAL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
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
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "estoquespy"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			URL:     strings.TrimSpace(getString(v, "BACKEND_URL", "")),
			Timeout: getDuration(v, "BACKEND_TIMEOUT", 10*time.Second),
		},
		Poll: PollConfig{
			ProductsInterval:  getDuration(v, "PRODUCTS_POLL_INTERVAL", 2*time.Second),
			MovementsInterval: getDuration(v, "MOVEMENTS_POLL_INTERVAL", 3*time.Second),
		},
		MockAPI: MockAPIConfig{
			Host: getString(v, "MOCKAPI_HOST", "0.0.0.0"),
			Port: getInt(v, "MOCKAPI_PORT", 3001),
			Seed: getBool(v, "MOCKAPI_SEED", true),
		},
	}

	if cfg.Poll.ProductsInterval <= 0 || cfg.Poll.MovementsInterval <= 0 {
		return nil, fmt.Errorf("config: los intervalos de polling deben ser positivos")
	}
	if cfg.Backend.Timeout <= 0 {
		return nil, fmt.Errorf("config: BACKEND_TIMEOUT debe ser positivo")
	}
	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
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

// getDuration acepta "2s", "1500ms" o un entero en milisegundos ("2000").
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
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
