// inventario mantiene el stock por item en un archivo JSON.
//
// Uso:
//
//	inventario [flags]                  ejecuta la secuencia de demostración
//	inventario [flags] add ITEM QTY     agrega stock
//	inventario [flags] remove ITEM QTY  retira stock
//	inventario [flags] get ITEM         consulta la cantidad de un item
//	inventario [flags] low              lista items con stock bajo
//	inventario [flags] report           imprime el reporte completo
//
// Los flags van antes del subcomando: todo lo que sigue al subcomando es
// posicional, así que "remove banana -1" entrega -1 como cantidad.
//
// Los diagnósticos se escriben en stderr; los resultados en stdout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/jsonfile"
	infrapdf "github.com/jhoicas/inventario-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

func main() {
	fs := newFlagSet()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración: "+err.Error())
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	}).WithStr("run_id", uuid.New().String())
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("file", cfg.Store.FilePath).
		Msg("iniciando aplicación")

	osFs := afero.NewOsFs()
	repo := jsonfile.NewStockRepository(osFs, cfg.Store.FilePath)
	pdfGenerator := infrapdf.NewMarotoReportGenerator("Reporte de inventario")
	stockUC := inventory.NewStockUseCase(repo, pdfGenerator, log)

	a := &app{
		cfg:   cfg,
		stock: stockUC,
		log:   log,
		fs:    osFs,
		out:   os.Stdout,
	}
	if err := a.run(context.Background(), fs.Args()); err != nil {
		log.Error().Err(err).Msg("uso inválido")
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

// newFlagSet declara los flags de la CLI. El parseo se detiene en el primer argumento
// posicional para que las cantidades negativas no se lean como flags.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("inventario", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	config.RegisterFlags(fs)
	return fs
}
