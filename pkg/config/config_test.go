package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "789", cfg.Barcode.EANPrefix)
	assert.Equal(t, 380, cfg.Barcode.Width)
	assert.Equal(t, 256, cfg.Barcode.QRSize)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.JWT.AllowedRoles)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "Memory")
	t.Setenv("BARCODE_EAN_PREFIX", "750")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_ALLOWED_ROLES", "authenticated, service_role,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.DB.Driver)
	assert.Equal(t, "750", cfg.Barcode.EANPrefix)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"authenticated", "service_role"}, cfg.JWT.AllowedRoles)
}

func TestLoad_EnteroIlegibleUsaDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BARCODE_WIDTH", "ancho")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 380, cfg.Barcode.Width)
}

func TestLoad_ConfiguracionInvalida(t *testing.T) {
	cases := map[string][2]string{
		"prefijo con letras":    {"BARCODE_EAN_PREFIX", "78A"},
		"prefijo de 12 dígitos": {"BARCODE_EAN_PREFIX", "789123456789"},
		"ancho menor a 95":      {"BARCODE_WIDTH", "60"},
		"QR menor a 177":        {"BARCODE_QR_SIZE", "100"},
		"driver desconocido":    {"DB_DRIVER", "mongo"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(kv[0], kv[1])
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:1", DBName: "repuestos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3A1@db:5432/repuestos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

// chdir cambia el directorio de trabajo y lo restaura al terminar la prueba
// (equivalente a testing.T.Chdir, no disponible en Go 1.21).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
