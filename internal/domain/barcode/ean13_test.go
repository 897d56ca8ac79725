package barcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia:
//
//	payload "789123456001"
//	suma = 7·1+8·3+9·1+1·3+2·1+3·3+4·1+5·3+6·1+0·3+0·1+1·3 = 82
//	verificador = (10 - 82 mod 10) mod 10 = 8  →  "7891234560018"
// ──────────────────────────────────────────────────────────────────────────────

const (
	testPayload  = "789123456001"
	testFullCode = "7891234560018"
)

// seqDigits devuelve los dígitos en orden y vuelve a empezar al agotarse.
type seqDigits struct {
	digits []int
	pos    int
}

func (s *seqDigits) Digit() int {
	d := s.digits[s.pos%len(s.digits)]
	s.pos++
	return d
}

func TestCheckDigit_VectorExacto(t *testing.T) {
	d, err := barcode.CheckDigit(testPayload)
	require.NoError(t, err)
	assert.Equal(t, 8, d)
}

func TestCheckDigit_Determinista(t *testing.T) {
	for i := 0; i < 5; i++ {
		d, err := barcode.CheckDigit(testPayload)
		require.NoError(t, err)
		assert.Equal(t, 8, d, "el mismo payload siempre produce el mismo dígito")
	}
}

func TestCheckDigit_SumaMultiploDeDiez(t *testing.T) {
	// 000000000000 suma 0 → verificador 0 (no 10)
	d, err := barcode.CheckDigit("000000000000")
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestCheckDigit_PayloadInvalido(t *testing.T) {
	casos := []string{"", "12345678901", "1234567890123", "12345678901a", " 23456789012", "１２３４５６７８９０１２"}
	for _, c := range casos {
		t.Run(fmt.Sprintf("%q", c), func(t *testing.T) {
			_, err := barcode.CheckDigit(c)
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
		})
	}
}

// ── Validate ──────────────────────────────────────────────────────────────────

func TestValidate_CodigoCorrecto(t *testing.T) {
	ok, err := barcode.Validate(testFullCode)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_VerificadorIncorrecto(t *testing.T) {
	ok, err := barcode.Validate("7891234560017")
	require.NoError(t, err, "un verificador incorrecto no es un error de formato")
	assert.False(t, ok)
}

func TestValidate_Longitud(t *testing.T) {
	for _, c := range []string{"", "789123456001", "78912345600180"} {
		_, err := barcode.Validate(c)
		assert.ErrorIs(t, err, domain.ErrInvalidLength, "código %q", c)
	}
}

func TestValidate_Digitos(t *testing.T) {
	// 13 caracteres (14 bytes con la é): es un problema de dígitos, no de longitud.
	for _, c := range []string{"78912345600a8", "789123456001é", "７89123456001８"} {
		_, err := barcode.Validate(c)
		assert.ErrorIs(t, err, domain.ErrInvalidDigits, "código %q", c)
		assert.NotErrorIs(t, err, domain.ErrInvalidLength, "código %q", c)
	}
}

func TestValidate_LongitudCuentaCaracteres(t *testing.T) {
	_, err := barcode.Validate("78912345600éé")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDigits)

	_, err = barcode.Validate("789123456001éé")
	assert.ErrorIs(t, err, domain.ErrInvalidLength)
	assert.Contains(t, err.Error(), ": 14")
}

func TestValidate_DualDeCheckDigit(t *testing.T) {
	payloads := []string{"000000000000", "999999999999", "400638133393", "590123412345", testPayload}
	for _, p := range payloads {
		d, err := barcode.CheckDigit(p)
		require.NoError(t, err)
		ok, err := barcode.Validate(fmt.Sprintf("%s%d", p, d))
		require.NoError(t, err)
		assert.True(t, ok, "payload %s", p)
	}
}

// ── Generator ─────────────────────────────────────────────────────────────────

func TestGenerate_FuenteDeterminista(t *testing.T) {
	g := barcode.NewGenerator(&seqDigits{digits: []int{1, 2, 3, 4, 5, 6, 0, 0, 1}})
	code, err := g.Generate("789")
	require.NoError(t, err)
	assert.Equal(t, testFullCode, code)
}

func TestGenerate_PrefijoVacioUsaDefault(t *testing.T) {
	g := barcode.NewGenerator(&seqDigits{digits: []int{0}})
	code, err := g.Generate("")
	require.NoError(t, err)
	assert.Equal(t, "789000000000", code[:12])
}

func TestGenerate_AleatorioSiempreValido(t *testing.T) {
	g := barcode.NewGenerator(nil)
	for i := 0; i < 500; i++ {
		code, err := g.Generate(barcode.DefaultPrefix)
		require.NoError(t, err)
		require.Len(t, code, barcode.CodeLength)
		assert.Equal(t, barcode.DefaultPrefix, code[:3])
		ok, err := barcode.Validate(code)
		require.NoError(t, err)
		require.True(t, ok, "código generado inválido: %s", code)
	}
}

func TestGenerate_PrefijoDeOnceDigitos(t *testing.T) {
	g := barcode.NewGenerator(&seqDigits{digits: []int{7}})
	code, err := g.Generate("78912345600")
	require.NoError(t, err)
	assert.Equal(t, "789123456007", code[:12])
	ok, _ := barcode.Validate(code)
	assert.True(t, ok)
}

func TestGenerate_PrefijoLargoSeRechaza(t *testing.T) {
	g := barcode.NewGenerator(nil)
	for _, p := range []string{"789123456001", "7891234560018"} {
		_, err := g.Generate(p)
		assert.ErrorIs(t, err, domain.ErrInvalidPrefix, "prefijo %q", p)
	}
}

func TestGenerate_PrefijoNoNumerico(t *testing.T) {
	g := barcode.NewGenerator(nil)
	_, err := g.Generate("78a")
	assert.True(t, errors.Is(err, domain.ErrInvalidPrefix))
}

func TestGenerate_FuenteFueraDeRango(t *testing.T) {
	g := barcode.NewGenerator(&seqDigits{digits: []int{10}})
	_, err := g.Generate("789")
	assert.Error(t, err)
}
