// Package barcode: generación y validación de códigos EAN-13.
// Ponderación estándar EAN/UPC: posiciones pares peso 1, impares peso 3;
// dígito verificador = (10 - (suma mod 10)) mod 10.
package barcode

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/jhoicas/Inventario-repuestos/internal/domain"
)

const (
	// DefaultPrefix prefijo GS1 de Brasil.
	DefaultPrefix = "789"
	// PayloadLength dígitos antes del verificador.
	PayloadLength = 12
	// CodeLength longitud total de un EAN-13.
	CodeLength = 13
)

// DigitSource entrega dígitos 0-9. Se inyecta para que las pruebas usen secuencias fijas.
type DigitSource interface {
	Digit() int
}

// RandomDigits fuente uniforme sobre math/rand/v2 (segura para uso concurrente).
type RandomDigits struct{}

// Digit devuelve un dígito aleatorio 0-9.
func (RandomDigits) Digit() int { return rand.Intn(10) }

// Generator produce códigos EAN-13 completando el prefijo con dígitos de la fuente.
type Generator struct {
	digits DigitSource
}

// NewGenerator construye el generador. Con src nil usa RandomDigits.
func NewGenerator(src DigitSource) *Generator {
	if src == nil {
		src = RandomDigits{}
	}
	return &Generator{digits: src}
}

// Generate completa prefix hasta 12 dígitos y agrega el verificador.
// prefix vacío usa DefaultPrefix. Un prefijo con 12 o más dígitos, o con caracteres
// no numéricos, se rechaza con ErrInvalidPrefix (nunca se trunca).
func (g *Generator) Generate(prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := ValidatePrefix(prefix); err != nil {
		return "", err
	}

	buf := make([]byte, 0, CodeLength)
	buf = append(buf, prefix...)
	for len(buf) < PayloadLength {
		d := g.digits.Digit()
		if d < 0 || d > 9 {
			return "", fmt.Errorf("barcode: la fuente devolvió %d, fuera de 0-9", d)
		}
		buf = append(buf, byte('0'+d))
	}

	check, err := CheckDigit(string(buf))
	if err != nil {
		return "", err
	}
	return string(append(buf, byte('0'+check))), nil
}

// ValidatePrefix exige solo dígitos y longitud menor a 12.
func ValidatePrefix(prefix string) error {
	if len(prefix) >= PayloadLength {
		return fmt.Errorf("%w: %d dígitos (máximo %d)", domain.ErrInvalidPrefix, len(prefix), PayloadLength-1)
	}
	if !allDigits(prefix) {
		return fmt.Errorf("%w: %q contiene caracteres no numéricos", domain.ErrInvalidPrefix, prefix)
	}
	return nil
}

// CheckDigit calcula el dígito verificador de una carga de exactamente 12 dígitos.
func CheckDigit(payload string) (int, error) {
	if len(payload) != PayloadLength || !allDigits(payload) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPayload, payload)
	}
	return checkDigit(payload), nil
}

// Validate verifica un EAN-13 completo. Los errores distinguen longitud y caracteres;
// un código bien formado con verificador incorrecto devuelve (false, nil).
func Validate(code string) (bool, error) {
	if n := utf8.RuneCountInString(code); n != CodeLength {
		return false, fmt.Errorf("%w: %d", domain.ErrInvalidLength, n)
	}
	if !allDigits(code) {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidDigits, code)
	}
	return checkDigit(code[:PayloadLength]) == int(code[PayloadLength]-'0'), nil
}

// checkDigit asume 12 dígitos ya validados.
func checkDigit(payload string) int {
	sum := 0
	for i := 0; i < PayloadLength; i++ {
		d := int(payload[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return (10 - sum%10) % 10
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
