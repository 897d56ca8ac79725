package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Barcode BarcodeConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig configuración del almacenamiento.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int // 0 = valor por defecto del pool
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

// JWTConfig verificación de los tokens emitidos por el proveedor de identidad.
type JWTConfig struct {
	Secret       string
	Issuer       string   // vacío = no se verifica iss
	AllowedRoles []string // JWT_ALLOWED_ROLES separados por coma; vacío = cualquier rol
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

// BarcodeConfig parámetros de generación y render de códigos.
type BarcodeConfig struct {
	EANPrefix string // prefijo por defecto de los EAN-13 generados
	Width     int    // px del PNG EAN-13
	Height    int
	QRSize    int // px (lado) del PNG QR
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, BARCODE_EAN_PREFIX, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-repuestos"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", "postgres")),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario_repuestos"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 0),
		},
		JWT: JWTConfig{
			Secret:       getString(v, "JWT_SECRET", ""),
			Issuer:       getString(v, "JWT_ISSUER", ""),
			AllowedRoles: getList(v, "JWT_ALLOWED_ROLES"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Barcode: BarcodeConfig{
			EANPrefix: getString(v, "BARCODE_EAN_PREFIX", barcode.DefaultPrefix),
			Width:     getInt(v, "BARCODE_WIDTH", 380),
			Height:    getInt(v, "BARCODE_HEIGHT", 150),
			QRSize:    getInt(v, "BARCODE_QR_SIZE", 256),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza valores que romperían la generación de códigos o el arranque.
func (c *Config) Validate() error {
	if err := barcode.ValidatePrefix(c.Barcode.EANPrefix); err != nil {
		return fmt.Errorf("config: BARCODE_EAN_PREFIX %q: %w", c.Barcode.EANPrefix, err)
	}
	// Un EAN-13 ocupa 95 módulos; el PNG no puede ser más angosto.
	if c.Barcode.Width < 95 || c.Barcode.Height <= 0 {
		return fmt.Errorf("config: BARCODE_WIDTH/BARCODE_HEIGHT inválidos (%dx%d)", c.Barcode.Width, c.Barcode.Height)
	}
	// Un QR versión 40 ocupa 177 módulos por lado.
	if c.Barcode.QRSize < 177 {
		return fmt.Errorf("config: BARCODE_QR_SIZE inválido (%d)", c.Barcode.QRSize)
	}
	switch c.DB.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("config: DB_DRIVER %q no soportado", c.DB.Driver)
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

// getList separa por comas y descarta vacíos.
func getList(v *viper.Viper, key string) []string {
	var out []string
	for _, s := range strings.Split(getString(v, key, ""), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
