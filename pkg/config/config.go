package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env, archivo y flags).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Store  StoreConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// StoreConfig configuración del almacén de stock.
type StoreConfig struct {
	FilePath          string // archivo JSON con la tabla de stock
	LowStockThreshold int    // umbral por defecto para el listado de stock bajo
}

// ReportConfig configuración de la exportación del reporte.
type ReportConfig struct {
	PDFPath string // vacío = no se genera PDF
}

// flagKeys asocia cada flag de la CLI con la clave de configuración que sobreescribe.
var flagKeys = map[string]string{
	"file":       "INVENTORY_FILE",
	"threshold":  "LOW_STOCK_THRESHOLD",
	"report-pdf": "REPORT_PDF_PATH",
	"log-level":  "LOG_LEVEL",
	"env":        "APP_ENV",
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, INVENTORY_FILE, LOW_STOCK_THRESHOLD, etc.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags igual que Load pero los flags modificados por el usuario tienen prioridad sobre env y archivo.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			FilePath:          getString(v, "INVENTORY_FILE", "inventory.json"),
			LowStockThreshold: getInt(v, "LOW_STOCK_THRESHOLD", inventory.DefaultLowStockThreshold),
		},
		Report: ReportConfig{
			PDFPath: getString(v, "REPORT_PDF_PATH", ""),
		},
	}

	if cfg.Store.FilePath == "" {
		return nil, fmt.Errorf("config: INVENTORY_FILE vacío")
	}
	return cfg, nil
}

// RegisterFlags declara en fs los flags que LoadWithFlags sabe enlazar.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("file", "inventory.json", "archivo JSON de inventario")
	fs.Int("threshold", inventory.DefaultLowStockThreshold, "umbral de stock bajo")
	fs.String("report-pdf", "", "ruta de salida del reporte PDF (opcional)")
	fs.String("log-level", "info", "nivel de log: trace, debug, info, warn, error")
	fs.String("env", "development", "entorno: development o production")
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
