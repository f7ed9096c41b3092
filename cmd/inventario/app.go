package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

const usage = "uso: inventario [--file F] [--threshold N] [--report-pdf P] [demo | add ITEM QTY | remove ITEM QTY | get ITEM | low | report]\n" +
	"los flags van antes del subcomando"

var errUsage = errors.New("argumentos inválidos")

// app agrupa las dependencias de una ejecución de la CLI.
type app struct {
	cfg   *config.Config
	stock *inventory.StockUseCase
	log   *logger.Logger
	fs    afero.Fs
	out   io.Writer
}

// run carga el inventario, ejecuta el subcomando y guarda si hubo cambios.
// Solo los errores de uso se devuelven; las fallas de validación y de E/S ya quedaron en el log.
func (a *app) run(ctx context.Context, args []string) error {
	cmd := "demo"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "demo", "add", "remove", "get", "low", "report":
	default:
		return fmt.Errorf("%w: subcomando desconocido %q", errUsage, cmd)
	}
	if err := checkArgs(cmd, args); err != nil {
		return err
	}

	_ = a.stock.Load(ctx)

	mutated := false
	switch cmd {
	case "demo":
		a.runDemo(ctx)
		mutated = true
	case "add", "remove":
		_ = a.stock.ApplyMovement(ctx, dto.StockMovementRequest{Type: cmd, Item: args[0], Quantity: args[1]})
		mutated = true
	case "get":
		fmt.Fprintf(a.out, "Stock de %s: %d\n", args[0], a.stock.Quantity(args[0]))
	case "low":
		fmt.Fprintf(a.out, "Items con stock bajo: %v\n", a.stock.LowStock(a.cfg.Store.LowStockThreshold))
	case "report":
		_ = a.stock.PrintReport(a.out)
	}

	a.exportPDF(ctx)
	if mutated {
		_ = a.stock.Save(ctx)
	}
	return nil
}

func checkArgs(cmd string, args []string) error {
	want := map[string]int{"demo": 0, "add": 2, "remove": 2, "get": 1, "low": 0, "report": 0}[cmd]
	if len(args) != want {
		return fmt.Errorf("%w: %s espera %d argumento(s), recibió %d", errUsage, cmd, want, len(args))
	}
	return nil
}

// runDemo secuencia de demostración: incluye llamadas inválidas que deben quedar rechazadas en el log.
func (a *app) runDemo(ctx context.Context) {
	_ = a.stock.Add("apple", 10)
	_ = a.stock.Add("banana", 8)

	_ = a.stock.ApplyMovement(ctx, dto.StockMovementRequest{Type: dto.MovementTypeAdd, Item: "", Quantity: "10"})
	_ = a.stock.ApplyMovement(ctx, dto.StockMovementRequest{Type: dto.MovementTypeAdd, Item: "123", Quantity: "ten"})
	_ = a.stock.Add("pear", -2)

	_ = a.stock.Remove("apple", 3)
	_ = a.stock.Remove("orange", 1)
	_ = a.stock.Remove("banana", -1)

	fmt.Fprintf(a.out, "Stock de apple: %d\n", a.stock.Quantity("apple"))
	fmt.Fprintf(a.out, "Stock de orange: %d\n", a.stock.Quantity("orange"))

	// pear nunca se agregó, no aparece en la lista
	fmt.Fprintf(a.out, "Items con stock bajo: %v\n", a.stock.LowStock(a.cfg.Store.LowStockThreshold))

	_ = a.stock.PrintReport(a.out)
}

// exportPDF escribe el reporte PDF si está configurado. Una falla se registra y no interrumpe la ejecución.
func (a *app) exportPDF(ctx context.Context) {
	path := a.cfg.Report.PDFPath
	if path == "" {
		return
	}
	doc, err := a.stock.ExportReportPDF(ctx)
	if err != nil {
		return
	}
	if err := afero.WriteFile(a.fs, path, doc, 0o644); err != nil {
		a.log.Error().Err(err).Str("path", path).Msg("no se pudo escribir el reporte PDF")
		return
	}
	a.log.Info().Str("path", path).Int("bytes", len(doc)).Msg("reporte PDF generado")
}
