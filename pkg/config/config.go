package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Session    SessionConfig
	Simulation SimulationConfig
	Log        LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsProduction indica si la aplicación corre en producción.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig firma y vigencia de los tokens de sesión anónima.
type SessionConfig struct {
	Secret            string
	ExpirationMinutes int
	Issuer            string
}

// TTL vigencia de la sesión y de su estado en memoria.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationMinutes) * time.Minute
}

// SimulationConfig retardos simulados y semilla del validador de CFDI.
type SimulationConfig struct {
	CFDIDelay       time.Duration
	CFDISingleDelay time.Duration
	AnalysisDelay   time.Duration
	Seed            uint64 // 0 = semilla por tiempo
}

// LogConfig nivel de logging (debug, info, warn, error).
type LogConfig struct {
	Level string
}

// devSecret firma usada fuera de producción cuando SESSION_SECRET no está definido.
const devSecret = "smartax-dev-secret"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, SIM_CFDI_DELAY_MS, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "smartax-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			Secret:            getString(v, "SESSION_SECRET", ""),
			ExpirationMinutes: getInt(v, "SESSION_EXPIRATION_MINUTES", 120),
			Issuer:            getString(v, "SESSION_ISSUER", "smartax-api"),
		},
		Simulation: SimulationConfig{
			CFDIDelay:       getMillis(v, "SIM_CFDI_DELAY_MS", 1000),
			CFDISingleDelay: getMillis(v, "SIM_CFDI_SINGLE_DELAY_MS", 2000),
			AnalysisDelay:   getMillis(v, "SIM_ANALYSIS_DELAY_MS", 3000),
			Seed:            uint64(getInt(v, "SIM_RANDOM_SEED", 0)),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.Session.Secret == "" && !cfg.App.IsProduction() {
		cfg.Session.Secret = devSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa valores obligatorios y rangos.
func (c *Config) Validate() error {
	var errs []error
	if c.Session.Secret == "" {
		errs = append(errs, fmt.Errorf("config: SESSION_SECRET es obligatorio en producción"))
	}
	if c.Session.ExpirationMinutes <= 0 {
		errs = append(errs, fmt.Errorf("config: SESSION_EXPIRATION_MINUTES debe ser positivo"))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port))
	}
	if c.Simulation.CFDIDelay < 0 || c.Simulation.CFDISingleDelay < 0 || c.Simulation.AnalysisDelay < 0 {
		errs = append(errs, fmt.Errorf("config: los retardos simulados no pueden ser negativos"))
	}
	return errors.Join(errs...)
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

func getMillis(v *viper.Viper, key string, def int) time.Duration {
	return time.Duration(getInt(v, key, def)) * time.Millisecond
}
