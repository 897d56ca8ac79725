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

// TrackingUseCase seguimiento de envíos a clientes.
type TrackingUseCase struct {
	repo repository.TrackingRepository
}

// NewTrackingUseCase construye el caso de uso.
func NewTrackingUseCase(repo repository.TrackingRepository) *TrackingUseCase {
	return &TrackingUseCase{repo: repo}
}

// Create registra un envío. order_number y tracking_code son obligatorios.
func (uc *TrackingUseCase) Create(ctx context.Context, in dto.CreateTrackingRequest) (*dto.TrackingResponse, error) {
	order := strings.TrimSpace(in.OrderNumber)
	code := strings.TrimSpace(in.TrackingCode)
	if order == "" || code == "" {
		return nil, fmt.Errorf("%w: order_number y tracking_code requeridos", domain.ErrInvalidInput)
	}
	if in.OrderValue.IsNegative() {
		return nil, fmt.Errorf("%w: order_value negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if s := strings.TrimSpace(in.Date); s != "" {
		d, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
		}
		date = d
	}
	r := &entity.TrackingRecord{
		ID:            uuid.New().String(),
		OrderNumber:   order,
		Customer:      strings.TrimSpace(in.Customer),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		OrderValue:    in.OrderValue,
		SaleLocation:  strings.TrimSpace(in.SaleLocation),
		TrackingCode:  code,
		TrackingLink:  strings.TrimSpace(in.TrackingLink),
		Transport:     strings.TrimSpace(in.Transport),
		Date:          date,
		CreatedAt:     now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return ToTrackingResponse(r), nil
}

// List más recientes primero, con paginación.
func (uc *TrackingUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.TrackingListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrackingResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *ToTrackingResponse(r))
	}
	return &dto.TrackingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Recent últimos n seguimientos.
func (uc *TrackingUseCase) Recent(ctx context.Context, n int) ([]dto.TrackingResponse, error) {
	list, err := uc.List(ctx, dto.PageRequest{Limit: n})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// ToTrackingResponse convierte la entidad al DTO.
func ToTrackingResponse(r *entity.TrackingRecord) *dto.TrackingResponse {
	return &dto.TrackingResponse{
		ID:            r.ID,
		OrderNumber:   r.OrderNumber,
		Customer:      r.Customer,
		InvoiceNumber: r.InvoiceNumber,
		OrderValue:    r.OrderValue,
		SaleLocation:  r.SaleLocation,
		TrackingCode:  r.TrackingCode,
		TrackingLink:  r.TrackingLink,
		Transport:     r.Transport,
		Date:          r.Date.Format(dto.DateLayout),
		CreatedAt:     r.CreatedAt,
	}
}
