package inventory

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
	"github.com/jhoicas/Inventario-repuestos/pkg/logger"
)

// Secciones de movimientos.
const (
	SectionEntry = "entry"
	SectionExit  = "exit"
)

// MovementUseCase registro y consulta de entradas y salidas.
// Los movimientos no se editan ni se borran: el stock se deriva de ellos.
type MovementUseCase struct {
	entries repository.EntryRepository
	exits   repository.ExitRepository
	log     *logger.Logger
	now     func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(entries repository.EntryRepository, exits repository.ExitRepository, log *logger.Logger) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{entries: entries, exits: exits, log: log.Component("movements"), now: time.Now}
}

// WithClock reemplaza el reloj (pruebas).
func (uc *MovementUseCase) WithClock(now func() time.Time) *MovementUseCase {
	uc.now = now
	return uc
}

// RegisterEntry registra una entrada de repuestos.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, userID string, in dto.RegisterEntryRequest) (*dto.EntryResponse, error) {
	partNumber := strings.TrimSpace(in.PartNumber)
	if err := validateMovement(partNumber, in.Quantity.IsPositive()); err != nil {
		return nil, err
	}
	date, err := uc.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	e := &entity.ProductEntry{
		ID:            uuid.New().String(),
		PartNumber:    partNumber,
		Quantity:      in.Quantity,
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		Supplier:      strings.TrimSpace(in.Supplier),
		Inspector:     strings.TrimSpace(in.Inspector),
		Date:          date,
		CreatedAt:     uc.now(),
		CreatedBy:     userID,
	}
	if err := uc.entries.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("registrar entrada: %w", err)
	}
	uc.log.Info().Str("part_number", e.PartNumber).Str("quantity", e.Quantity.String()).Msg("entrada registrada")
	return ToEntryResponse(e), nil
}

// RegisterExit registra una salida. No se verifica stock: puede quedar negativo.
func (uc *MovementUseCase) RegisterExit(ctx context.Context, userID string, in dto.RegisterExitRequest) (*dto.ExitResponse, error) {
	partNumber := strings.TrimSpace(in.PartNumber)
	if err := validateMovement(partNumber, in.Quantity.IsPositive()); err != nil {
		return nil, err
	}
	date, err := uc.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	e := &entity.ProductExit{
		ID:                    uuid.New().String(),
		PartNumber:            partNumber,
		Quantity:              in.Quantity,
		Reason:                strings.TrimSpace(in.Reason),
		Responsible:           strings.TrimSpace(in.Responsible),
		OrderNumber:           in.OrderNumber,
		DocumentType:          in.DocumentType,
		DocumentNumber:        in.DocumentNumber,
		Sector:                in.Sector,
		VehicleName:           in.VehicleName,
		VehiclePlate:          in.VehiclePlate,
		WithdrawalResponsible: in.WithdrawalResponsible,
		PurchaseResponsible:   in.PurchaseResponsible,
		Date:                  date,
		CreatedAt:             uc.now(),
		CreatedBy:             userID,
	}
	if err := uc.exits.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("registrar salida: %w", err)
	}
	uc.log.Info().Str("part_number", e.PartNumber).Str("quantity", e.Quantity.String()).Msg("salida registrada")
	return ToExitResponse(e), nil
}

// Search busca movimientos de una sección por subcadena del campo filter_type.
// Término vacío devuelve lista vacía. En salidas solo se admite partNumber.
func (uc *MovementUseCase) Search(ctx context.Context, in dto.MovementSearchRequest) (*dto.MovementSearchResponse, error) {
	section, err := parseSection(in.Section)
	if err != nil {
		return nil, err
	}
	filterType := in.FilterType
	if filterType == "" {
		filterType = repository.FilterPartNumber
	}
	switch filterType {
	case repository.FilterPartNumber:
	case repository.FilterInvoiceNumber, repository.FilterSupplier:
		if section == SectionExit {
			return nil, fmt.Errorf("%w: filter_type %q no aplica a salidas", domain.ErrInvalidInput, filterType)
		}
	default:
		return nil, fmt.Errorf("%w: filter_type %q desconocido", domain.ErrInvalidInput, filterType)
	}

	out := &dto.MovementSearchResponse{Section: section, Entries: []dto.EntryResponse{}, Exits: []dto.ExitResponse{}}
	term := strings.TrimSpace(in.Term)
	if term == "" {
		return out, nil
	}
	q := repository.MovementSearch{FilterType: filterType, Term: term}
	if in.Date != "" {
		d, err := time.Parse(dto.DateLayout, in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Date)
		}
		q.Date = &d
	}

	if section == SectionEntry {
		list, err := uc.entries.Search(ctx, q)
		if err != nil {
			return nil, domain.NewFetchError(CollectionEntries, err)
		}
		for _, e := range list {
			out.Entries = append(out.Entries, *ToEntryResponse(e))
		}
		out.Total = len(out.Entries)
		return out, nil
	}
	list, err := uc.exits.Search(ctx, q)
	if err != nil {
		return nil, domain.NewFetchError(CollectionExits, err)
	}
	for _, e := range list {
		out.Exits = append(out.Exits, *ToExitResponse(e))
	}
	out.Total = len(out.Exits)
	return out, nil
}

// LastRecord devuelve el movimiento más reciente de la sección (vacío si no hay).
func (uc *MovementUseCase) LastRecord(ctx context.Context, section string) (*dto.LastRecordResponse, error) {
	section, err := parseSection(section)
	if err != nil {
		return nil, err
	}
	out := &dto.LastRecordResponse{Section: section}
	if section == SectionEntry {
		e, err := uc.entries.Last(ctx)
		if err != nil {
			return nil, domain.NewFetchError(CollectionEntries, err)
		}
		if e != nil {
			out.Entry = ToEntryResponse(e)
		}
		return out, nil
	}
	e, err := uc.exits.Last(ctx)
	if err != nil {
		return nil, domain.NewFetchError(CollectionExits, err)
	}
	if e != nil {
		out.Exit = ToExitResponse(e)
	}
	return out, nil
}

func (uc *MovementUseCase) parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		y, m, d := uc.now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, formato esperado AAAA-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func validateMovement(partNumber string, positive bool) error {
	if partNumber == "" {
		return fmt.Errorf("%w: part_number requerido", domain.ErrInvalidInput)
	}
	if !positive {
		return fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
	}
	return nil
}

func parseSection(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", SectionEntry, "entries":
		return SectionEntry, nil
	case SectionExit, "exits":
		return SectionExit, nil
	}
	return "", fmt.Errorf("%w: section %q", domain.ErrInvalidInput, s)
}

// ToEntryResponse convierte la entidad al DTO.
func ToEntryResponse(e *entity.ProductEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:            e.ID,
		PartNumber:    e.PartNumber,
		Quantity:      e.Quantity,
		InvoiceNumber: e.InvoiceNumber,
		Supplier:      e.Supplier,
		Inspector:     e.Inspector,
		Date:          e.Date.Format(dto.DateLayout),
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToExitResponse convierte la entidad al DTO.
func ToExitResponse(e *entity.ProductExit) *dto.ExitResponse {
	return &dto.ExitResponse{
		ID:                    e.ID,
		PartNumber:            e.PartNumber,
		Quantity:              e.Quantity,
		Reason:                e.Reason,
		Responsible:           e.Responsible,
		OrderNumber:           e.OrderNumber,
		DocumentType:          e.DocumentType,
		DocumentNumber:        e.DocumentNumber,
		Sector:                e.Sector,
		VehicleName:           e.VehicleName,
		VehiclePlate:          e.VehiclePlate,
		WithdrawalResponsible: e.WithdrawalResponsible,
		PurchaseResponsible:   e.PurchaseResponsible,
		Date:                  e.Date.Format(dto.DateLayout),
		CreatedAt:             e.CreatedAt,
		CreatedBy:             e.CreatedBy,
	}
}
