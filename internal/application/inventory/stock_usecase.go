package inventory

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-repuestos/pkg/logger"
)

// StockUseCase calcula el stock de repuestos a partir de los movimientos crudos.
// Sin caché: cada llamada vuelve a leer entradas y salidas, porque otras sesiones
// registran movimientos en paralelo y el stock autoriza nuevas salidas.
type StockUseCase struct {
	source StockSource
	log    *logger.Logger
}

// NewStockUseCase construye el caso de uso. log nil = sin registro.
func NewStockUseCase(source StockSource, log *logger.Logger) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{source: source, log: log.Component("stock")}
}

// ComputeStock suma entradas y salidas de las partes que coinciden con partNumber según mode.
// partNumber vacío devuelve un resumen en cero sin consultar el backend.
// Si falla la lectura de cualquiera de las dos colecciones devuelve ErrFetchFailed
// (como *domain.FetchError) y nunca un resumen parcial.
func (uc *StockUseCase) ComputeStock(ctx context.Context, partNumber string, mode domaininv.MatchMode) (*dto.StockSummaryResponse, error) {
	partNumber = strings.TrimSpace(partNumber)
	if mode == "" {
		mode = domaininv.MatchContains
	}
	if partNumber == "" {
		out := toStockResponse(domaininv.EmptySummary(""))
		out.MatchMode = string(mode)
		return out, nil
	}

	entries, exits, err := uc.fetch(ctx, domaininv.QuantityFilter{PartNumber: partNumber, Match: mode})
	if err != nil {
		return nil, err
	}

	summary := domaininv.Summarize(partNumber, entries, exits)
	uc.reportUnparsed(summary)

	out := toStockResponse(summary)
	out.MatchMode = string(mode)
	return out, nil
}

// ComputeTotalStock aplica la misma regla sobre todos los movimientos.
func (uc *StockUseCase) ComputeTotalStock(ctx context.Context) (*dto.StockSummaryResponse, error) {
	entries, exits, err := uc.fetch(ctx, domaininv.QuantityFilter{})
	if err != nil {
		return nil, err
	}
	summary := domaininv.Summarize("", entries, exits)
	uc.reportUnparsed(summary)
	return toStockResponse(summary), nil
}

// ListStockByPart devuelve un resumen por número de parte, ordenado.
func (uc *StockUseCase) ListStockByPart(ctx context.Context) (*dto.StockListResponse, error) {
	entries, exits, err := uc.fetch(ctx, domaininv.QuantityFilter{})
	if err != nil {
		return nil, err
	}
	summaries := domaininv.SummarizeByPart(entries, exits)
	items := make([]dto.StockSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		uc.reportUnparsed(s)
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{Items: items, Total: len(items)}, nil
}

// fetch lee ambas colecciones en paralelo. El primer fallo cancela la otra lectura.
func (uc *StockUseCase) fetch(ctx context.Context, f domaininv.QuantityFilter) (entries, exits []domaininv.MovementQuantity, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.source.EntryQuantities(gctx, f)
		if err != nil {
			return domain.NewFetchError(CollectionEntries, err)
		}
		entries = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.source.ExitQuantities(gctx, f)
		if err != nil {
			return domain.NewFetchError(CollectionExits, err)
		}
		exits = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	// El llamador se fue mientras se leía: el resultado se descarta.
	if err := ctx.Err(); err != nil {
		return nil, nil, domain.NewFetchError(CollectionEntries+","+CollectionExits, err)
	}
	return entries, exits, nil
}

func (uc *StockUseCase) reportUnparsed(s domaininv.StockSummary) {
	if s.UnparsedQuantities == 0 {
		return
	}
	uc.log.Warn().
		Str("part_number", s.PartNumber).
		Int("unparsed_quantities", s.UnparsedQuantities).
		Msg("cantidades ilegibles contadas como 0")
}

func toStockResponse(s domaininv.StockSummary) *dto.StockSummaryResponse {
	return &dto.StockSummaryResponse{
		PartNumber:         s.PartNumber,
		Stock:              s.Stock,
		TotalEntries:       s.TotalEntries,
		TotalExits:         s.TotalExits,
		UnparsedQuantities: s.UnparsedQuantities,
	}
}
