package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

// staticSource fuente de stock en memoria para los comandos.
type staticSource struct {
	entries, exits []domaininv.MovementQuantity
	err            error
}

func (s staticSource) EntryQuantities(_ context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	return filterRows(s.entries, f), s.err
}

func (s staticSource) ExitQuantities(_ context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	return filterRows(s.exits, f), s.err
}

func filterRows(rows []domaininv.MovementQuantity, f domaininv.QuantityFilter) []domaininv.MovementQuantity {
	var out []domaininv.MovementQuantity
	for _, r := range rows {
		if f.PartNumber == "" || f.Match.Matches(r.PartNumber, f.PartNumber) {
			out = append(out, r)
		}
	}
	return out
}

// run ejecuta el CLI con los argumentos dados y devuelve stdout y el error.
func run(t *testing.T, source inventory.StockSource, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(&RootOptions{
		openSource: func(context.Context) (inventory.StockSource, func(), error) {
			if source == nil {
				return nil, nil, errors.New("sin backend")
			}
			return source, func() {}, nil
		},
	})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ──────────────────────────────────────────────────────────────────────────────
// Estructura
// ──────────────────────────────────────────────────────────────────────────────

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "repuestosctl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, path := range [][]string{
		{"ean", "generate"}, {"ean", "validate"}, {"ean", "check-digit"}, {"ean", "png"}, {"ean", "labels"},
		{"qr"}, {"stock"},
	} {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			sub, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestFormatoInvalido(t *testing.T) {
	_, err := run(t, nil, "--format", "yaml", "ean", "generate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// EAN-13
// ──────────────────────────────────────────────────────────────────────────────

func TestEANGenerate_Texto(t *testing.T) {
	out, err := run(t, nil, "ean", "generate", "--prefix", "750", "-n", "2")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 2)
	for _, code := range lines {
		assert.Len(t, code, 13)
		assert.True(t, strings.HasPrefix(code, "750"))
	}
}

func TestEANGenerate_PrefijoInvalido(t *testing.T) {
	out, err := run(t, nil, "--format", "json", "ean", "generate", "--prefix", "78A")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "INVALID_PREFIX", resp.Error.Code)
}

func TestEANValidate(t *testing.T) {
	out, err := run(t, nil, "ean", "validate", "7891234567895")
	require.NoError(t, err)
	assert.Contains(t, out, "válido")

	_, err = run(t, nil, "ean", "validate", "7891234567894")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = run(t, nil, "ean", "validate", "789123")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEANCheckDigit_JSON(t *testing.T) {
	out, err := run(t, nil, "--format", "json", "ean", "check-digit", "789123456789")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			CheckDigit int    `json:"check_digit"`
			Code       string `json:"code"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 5, resp.Data.CheckDigit)
	assert.Equal(t, "7891234567895", resp.Data.Code)
}

func TestEANPNG_EscribeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codigo.png")
	_, err := run(t, nil, "ean", "png", "7891234567895", "-o", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestEANPNG_AnchoInsuficiente(t *testing.T) {
	_, err := run(t, nil, "ean", "png", "7891234567895", "--width", "50", "-o", filepath.Join(t.TempDir(), "x.png"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestQR_EscribeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.png")
	_, err := run(t, nil, "qr", "https://repuestos.test/p/FLT-001", "-o", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func rowsFixture() staticSource {
	return staticSource{
		entries: []domaininv.MovementQuantity{
			{ID: "e1", PartNumber: "FLT-001", Value: decimal.NewFromInt(5)},
			{ID: "e2", PartNumber: "FLT-001", Value: "10"},
			{ID: "e3", PartNumber: "AMR-9", Value: 4},
		},
		exits: []domaininv.MovementQuantity{
			{ID: "s1", PartNumber: "FLT-001", Value: "3"},
		},
	}
}

func TestStock_PorNumeroDeParte(t *testing.T) {
	out, err := run(t, rowsFixture(), "--format", "json", "stock", "flt")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Stock string `json:"stock"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "12", resp.Data.Stock)
}

func TestStock_Total(t *testing.T) {
	out, err := run(t, rowsFixture(), "stock")
	require.NoError(t, err)
	assert.Contains(t, out, "(total)\t16")
}

func TestStock_Todos(t *testing.T) {
	out, err := run(t, rowsFixture(), "stock", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "AMR-9\t4")
	assert.Contains(t, out, "FLT-001\t12")
}

func TestStock_FalloDelBackend(t *testing.T) {
	src := rowsFixture()
	src.err = errors.New("conexión rechazada")
	out, err := run(t, src, "stock", "FLT-001")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "FETCH_FAILED")
}
