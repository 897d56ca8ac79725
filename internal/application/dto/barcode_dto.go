package dto

// GenerateEANRequest body para POST /api/barcodes/ean13.
type GenerateEANRequest struct {
	Prefix string `json:"prefix,omitempty"` // vacío = prefijo configurado
	Count  int    `json:"count,omitempty"`  // 1 por defecto, máximo 100
}

// GenerateEANResponse códigos generados (Code = primero de la lista).
type GenerateEANResponse struct {
	Code  string   `json:"code"`
	Codes []string `json:"codes"`
}

// ValidateEANResponse resultado de validar un EAN-13.
type ValidateEANResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// CheckDigitResponse dígito verificador de una carga de 12 dígitos.
type CheckDigitResponse struct {
	Payload    string `json:"payload"`
	CheckDigit int    `json:"check_digit"`
	Code       string `json:"code"`
}

// LabelSheetRequest body para POST /api/barcodes/labels.
type LabelSheetRequest struct {
	Title string   `json:"title,omitempty"`
	Codes []string `json:"codes"`
}
