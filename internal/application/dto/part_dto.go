package dto

import "time"

// CreatePartRequest entrada para registrar un repuesto.
type CreatePartRequest struct {
	PartNumber string `json:"part_number"`
	PartName   string `json:"part_name"`
	IsOriginal *bool  `json:"is_original"` // nil = true
	Location   string `json:"location"`
	PhotoURL   string `json:"photo_url"`
	EANCode    string `json:"ean_code"`
}

// AssignEANRequest body para POST /api/parts/:id/ean.
type AssignEANRequest struct {
	Prefix string `json:"prefix,omitempty"`
}

// PartResponse salida de un repuesto.
type PartResponse struct {
	ID         string    `json:"id"`
	PartNumber string    `json:"part_number"`
	PartName   string    `json:"part_name"`
	IsOriginal bool      `json:"is_original"`
	Location   string    `json:"location,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	EANCode    string    `json:"ean_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by,omitempty"`
}

// PartListResponse lista paginada de repuestos.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
