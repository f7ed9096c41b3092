package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventario", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "inventory.json", cfg.Store.FilePath)
	assert.Equal(t, 5, cfg.Store.LowStockThreshold)
	assert.Empty(t, cfg.Report.PDFPath)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "/tmp/stock.json")
	t.Setenv("LOW_STOCK_THRESHOLD", "12")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REPORT_PDF_PATH", "/tmp/stock.pdf")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stock.json", cfg.Store.FilePath)
	assert.Equal(t, 12, cfg.Store.LowStockThreshold)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/stock.pdf", cfg.Report.PDFPath)
}

func TestLoad_UmbralInvalidoUsaDefecto(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "cinco")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Store.LowStockThreshold)
}

func TestLoadWithFlags_FlagsTienenPrioridad(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "env.json")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--file", "flag.json"}))

	cfg, err := config.LoadWithFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "flag.json", cfg.Store.FilePath)
	// threshold no fue modificado por flag: gana la variable de entorno
	assert.Equal(t, 3, cfg.Store.LowStockThreshold)
}

func TestLoadWithFlags_ThresholdPorFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--threshold=-1"}))

	cfg, err := config.LoadWithFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Store.LowStockThreshold)
}
