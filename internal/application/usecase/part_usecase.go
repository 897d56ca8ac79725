package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

// PartUseCase casos de uso del catálogo de repuestos.
type PartUseCase struct {
	repo    repository.PartRepository
	entries repository.EntryRepository
	exits   repository.ExitRepository
	gen     *barcode.Generator
	prefix  string
}

// NewPartUseCase construye el caso de uso. prefix vacío = barcode.DefaultPrefix.
func NewPartUseCase(repo repository.PartRepository, entries repository.EntryRepository, exits repository.ExitRepository, gen *barcode.Generator, prefix string) *PartUseCase {
	if gen == nil {
		gen = barcode.NewGenerator(nil)
	}
	if prefix == "" {
		prefix = barcode.DefaultPrefix
	}
	return &PartUseCase{repo: repo, entries: entries, exits: exits, gen: gen, prefix: prefix}
}

// Create registra un repuesto. El EAN, si viene, debe ser un EAN-13 válido.
func (uc *PartUseCase) Create(ctx context.Context, userID string, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	partNumber := strings.TrimSpace(in.PartNumber)
	name := strings.TrimSpace(in.PartName)
	if partNumber == "" || name == "" {
		return nil, fmt.Errorf("%w: part_number y part_name requeridos", domain.ErrInvalidInput)
	}
	ean := strings.TrimSpace(in.EANCode)
	if ean != "" {
		if err := requireValidEAN(ean); err != nil {
			return nil, err
		}
	}
	existing, err := uc.repo.GetByPartNumber(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: part_number %s", domain.ErrDuplicate, partNumber)
	}

	original := true
	if in.IsOriginal != nil {
		original = *in.IsOriginal
	}
	p := &entity.Part{
		ID:         uuid.New().String(),
		PartNumber: partNumber,
		PartName:   name,
		IsOriginal: original,
		Location:   strings.TrimSpace(in.Location),
		PhotoURL:   strings.TrimSpace(in.PhotoURL),
		EANCode:    ean,
		CreatedAt:  time.Now(),
		CreatedBy:  userID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPartResponse(p), nil
}

// GetByID obtiene un repuesto; (nil, nil) si no existe.
func (uc *PartUseCase) GetByID(ctx context.Context, id string) (*dto.PartResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPartResponse(p), nil
}

// List lista repuestos con paginación.
func (uc *PartUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PartListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// AssignEAN genera un EAN-13 nuevo para el repuesto y lo guarda. Si ya tenía uno se reemplaza.
func (uc *PartUseCase) AssignEAN(ctx context.Context, id string, in dto.AssignEANRequest) (*dto.PartResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	prefix := strings.TrimSpace(in.Prefix)
	if prefix == "" {
		prefix = uc.prefix
	}
	code, err := uc.gen.Generate(prefix)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateEAN(ctx, id, code); err != nil {
		return nil, err
	}
	p.EANCode = code
	return toPartResponse(p), nil
}

// Delete elimina un repuesto sin movimientos. Con historial devuelve ErrConflict.
func (uc *PartUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	hasEntries, err := uc.entries.ExistsForPart(ctx, p.PartNumber)
	if err != nil {
		return err
	}
	hasExits, err := uc.exits.ExistsForPart(ctx, p.PartNumber)
	if err != nil {
		return err
	}
	if hasEntries || hasExits {
		return fmt.Errorf("%w: %s tiene movimientos registrados", domain.ErrConflict, p.PartNumber)
	}
	return uc.repo.Delete(ctx, id)
}

func requireValidEAN(code string) error {
	ok, err := barcode.Validate(code)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: ean_code %s con dígito verificador incorrecto", domain.ErrInvalidInput, code)
	}
	return nil
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	return &dto.PartResponse{
		ID:         p.ID,
		PartNumber: p.PartNumber,
		PartName:   p.PartName,
		IsOriginal: p.IsOriginal,
		Location:   p.Location,
		PhotoURL:   p.PhotoURL,
		EANCode:    p.EANCode,
		CreatedAt:  p.CreatedAt,
		CreatedBy:  p.CreatedBy,
	}
}
