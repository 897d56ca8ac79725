package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

// PartsRequestUseCase solicitudes de repuestos entre pisos.
type PartsRequestUseCase struct {
	repo  repository.PartsRequestRepository
	parts repository.PartRepository
	pdf   PickListGenerator
	now   func() time.Time
}

// NewPartsRequestUseCase construye el caso de uso. parts y pdf pueden ser nil si no se usa PickList.
func NewPartsRequestUseCase(repo repository.PartsRequestRepository, parts repository.PartRepository, pdf PickListGenerator) *PartsRequestUseCase {
	return &PartsRequestUseCase{repo: repo, parts: parts, pdf: pdf, now: time.Now}
}

// Create registra una solicitud pendiente.
func (uc *PartsRequestUseCase) Create(ctx context.Context, in dto.CreatePartsRequestRequest) (*dto.PartsRequestResponse, error) {
	partNumber := strings.TrimSpace(in.PartNumber)
	if partNumber == "" {
		return nil, fmt.Errorf("%w: part_number requerido", domain.ErrInvalidInput)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if !entity.IsValidLocation(in.Location) {
		return nil, fmt.Errorf("%w: location %q (válidas: %s)", domain.ErrInvalidInput, in.Location, strings.Join(entity.ValidLocations, ", "))
	}
	r := &entity.PartsRequest{
		ID:         uuid.New().String(),
		PartNumber: partNumber,
		Quantity:   in.Quantity,
		Location:   in.Location,
		Requester:  strings.TrimSpace(in.Requester),
		Status:     entity.PartsRequestPending,
		CreatedAt:  uc.now(),
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toPartsRequestResponse(r), nil
}

// List filtra por estado (vacío = todas).
func (uc *PartsRequestUseCase) List(ctx context.Context, status string) (*dto.PartsRequestListResponse, error) {
	switch status {
	case "", entity.PartsRequestPending, entity.PartsRequestCompleted:
	default:
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartsRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toPartsRequestResponse(r))
	}
	return &dto.PartsRequestListResponse{Items: items, Total: len(items)}, nil
}

// Complete marca la solicitud como atendida. Una solicitud ya completada devuelve ErrConflict.
func (uc *PartsRequestUseCase) Complete(ctx context.Context, id string) (*dto.PartsRequestResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if !r.Complete(uc.now()) {
		return nil, fmt.Errorf("%w: solicitud %s ya completada", domain.ErrConflict, id)
	}
	ok, err := uc.repo.MarkCompleted(ctx, r)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Otra sesión la completó entre la lectura y la escritura.
		return nil, fmt.Errorf("%w: solicitud %s ya completada", domain.ErrConflict, id)
	}
	return toPartsRequestResponse(r), nil
}

// PickList PDF con las solicitudes pendientes, enriquecidas con nombre y EAN del catálogo.
func (uc *PartsRequestUseCase) PickList(ctx context.Context) ([]byte, error) {
	pending, err := uc.repo.List(ctx, entity.PartsRequestPending)
	if err != nil {
		return nil, err
	}
	lines := make([]PickListLine, 0, len(pending))
	for _, r := range pending {
		line := PickListLine{
			PartNumber:  r.PartNumber,
			Quantity:    r.Quantity.String(),
			Location:    r.Location,
			Requester:   r.Requester,
			RequestedAt: r.CreatedAt,
		}
		if uc.parts != nil {
			p, err := uc.parts.GetByPartNumber(ctx, r.PartNumber)
			if err != nil {
				return nil, err
			}
			if p != nil {
				line.PartName = p.PartName
				line.EANCode = p.EANCode
			}
		}
		lines = append(lines, line)
	}
	return uc.pdf.PickList(ctx, "Solicitudes pendientes", lines)
}

func toPartsRequestResponse(r *entity.PartsRequest) *dto.PartsRequestResponse {
	return &dto.PartsRequestResponse{
		ID:          r.ID,
		PartNumber:  r.PartNumber,
		Quantity:    r.Quantity,
		Location:    r.Location,
		Requester:   r.Requester,
		Status:      r.Status,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}
