package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App AppConfig
	Log LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APP_NAME, LOG_LEVEL.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fruteria"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
