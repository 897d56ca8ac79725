package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

type stockTestContext struct {
	src    *fakeSource
	result *dto.StockSummaryResponse
	err    error
}

func (c *stockTestContext) reset() {
	c.src = &fakeSource{}
	c.result = nil
	c.err = nil
}

func splitValues(part, csv string) []domaininv.MovementQuantity {
	var out []domaininv.MovementQuantity
	for _, v := range strings.Split(csv, ",") {
		out = append(out, q(part, strings.TrimSpace(v)))
	}
	return out
}

func (c *stockTestContext) entradasDeConCantidades(part, csv string) error {
	c.src.entries = append(c.src.entries, splitValues(part, csv)...)
	return nil
}

func (c *stockTestContext) salidasDeConCantidades(part, csv string) error {
	c.src.exits = append(c.src.exits, splitValues(part, csv)...)
	return nil
}

func (c *stockTestContext) elBackendDeSalidasNoResponde() error {
	c.src.exitErr = errors.New("timeout")
	return nil
}

func (c *stockTestContext) elBackendDeEntradasNoResponde() error {
	c.src.entryErr = errors.New("timeout")
	return nil
}

func (c *stockTestContext) calculoElStockDe(part string) error {
	c.result, c.err = inventory.NewStockUseCase(c.src, nil).ComputeStock(context.Background(), part, "")
	return nil
}

func (c *stockTestContext) checkDecimal(name, want string, got func(*dto.StockSummaryResponse) decimal.Decimal) error {
	if c.err != nil {
		return fmt.Errorf("se esperaba resultado, error: %v", c.err)
	}
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if g := got(c.result); !g.Equal(w) {
		return fmt.Errorf("%s: esperado %s, obtenido %s", name, w, g)
	}
	return nil
}

func (c *stockTestContext) elStockEs(want string) error {
	return c.checkDecimal("stock", want, func(r *dto.StockSummaryResponse) decimal.Decimal { return r.Stock })
}

func (c *stockTestContext) elTotalDeEntradasEs(want string) error {
	return c.checkDecimal("entradas", want, func(r *dto.StockSummaryResponse) decimal.Decimal { return r.TotalEntries })
}

func (c *stockTestContext) elTotalDeSalidasEs(want string) error {
	return c.checkDecimal("salidas", want, func(r *dto.StockSummaryResponse) decimal.Decimal { return r.TotalExits })
}

func (c *stockTestContext) hayCantidadesIlegibles(n int) error {
	if c.err != nil {
		return c.err
	}
	if c.result.UnparsedQuantities != n {
		return fmt.Errorf("ilegibles: esperado %d, obtenido %d", n, c.result.UnparsedQuantities)
	}
	return nil
}

func (c *stockTestContext) noSeConsultoElBackend() error {
	if n := c.src.calls.Load(); n != 0 {
		return fmt.Errorf("se hicieron %d consultas", n)
	}
	return nil
}

func (c *stockTestContext) elCalculoFallaConFetchFailed() error {
	if !errors.Is(c.err, domain.ErrFetchFailed) {
		return fmt.Errorf("se esperaba FETCH_FAILED, obtenido %v", c.err)
	}
	if c.result != nil {
		return errors.New("no debe haber resultado parcial")
	}
	return nil
}

func InitializeStockScenario(ctx *godog.ScenarioContext) {
	tc := &stockTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^entradas de "([^"]*)" con cantidades "([^"]*)"$`, tc.entradasDeConCantidades)
	ctx.Step(`^salidas de "([^"]*)" con cantidades "([^"]*)"$`, tc.salidasDeConCantidades)
	ctx.Step(`^el backend de salidas no responde$`, tc.elBackendDeSalidasNoResponde)
	ctx.Step(`^el backend de entradas no responde$`, tc.elBackendDeEntradasNoResponde)

	ctx.Step(`^calculo el stock de "([^"]*)"$`, tc.calculoElStockDe)

	ctx.Step(`^el stock es "([^"]*)"$`, tc.elStockEs)
	ctx.Step(`^el total de entradas es "([^"]*)"$`, tc.elTotalDeEntradasEs)
	ctx.Step(`^el total de salidas es "([^"]*)"$`, tc.elTotalDeSalidasEs)
	ctx.Step(`^hay (\d+) cantidades ilegibles$`, tc.hayCantidadesIlegibles)
	ctx.Step(`^no se consultó el backend$`, tc.noSeConsultoElBackend)
	ctx.Step(`^el cálculo falla con FETCH_FAILED$`, tc.elCalculoFallaConFetchFailed)
}

func TestStockFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeStockScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/stock.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
