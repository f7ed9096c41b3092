package inventory

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// StockUseCase almacén de stock en memoria con carga y guardado completos vía repositorio.
// No es seguro para uso concurrente: hay un único actor por proceso.
// Ningún error de validación es fatal: se registra en el log y la operación no modifica la tabla.
type StockUseCase struct {
	repo  repository.StockRepository
	pdf   ReportPDFGenerator
	log   *logger.Logger
	table *entity.StockTable
}

// NewStockUseCase construye el caso de uso con la tabla vacía. pdf puede ser nil.
func NewStockUseCase(repo repository.StockRepository, pdf ReportPDFGenerator, log *logger.Logger) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{
		repo:  repo,
		pdf:   pdf,
		log:   log,
		table: entity.NewStockTable(),
	}
}

// Add suma qty unidades al item. qty debe ser >= 0.
func (uc *StockUseCase) Add(item string, qty int) error {
	name, err := inventory.NormalizeItem(item)
	if err != nil {
		uc.log.Error().Err(err).Str("item", item).Msg("nombre de item inválido")
		return err
	}
	if qty < 0 {
		uc.log.Warn().Str("item", name).Int("qty", qty).Msg("no se puede agregar una cantidad negativa")
		return domain.ErrNegativeQuantity
	}

	current, _ := uc.table.Get(name)
	if qty > math.MaxInt-current {
		uc.log.Error().Str("item", name).Int("qty", qty).Int("current", current).Msg("la cantidad excede el máximo representable")
		return domain.ErrInvalidQuantity
	}
	total := current + qty
	uc.table.Set(name, total)
	uc.log.Info().Str("item", name).Int("qty", qty).Int("total", total).Msg("stock agregado")
	return nil
}

// Remove resta qty unidades al item; si el resultado es <= 0 la entrada se elimina.
// Un item ausente no es un error de uso: se registra como advertencia y devuelve ErrItemNotInStock.
func (uc *StockUseCase) Remove(item string, qty int) error {
	name, err := inventory.NormalizeItem(item)
	if err != nil {
		uc.log.Error().Err(err).Str("item", item).Msg("nombre de item inválido")
		return err
	}
	if qty < 0 {
		uc.log.Warn().Str("item", name).Int("qty", qty).Msg("no se puede retirar una cantidad negativa")
		return domain.ErrNegativeQuantity
	}

	current, ok := uc.table.Get(name)
	if !ok {
		uc.log.Warn().Str("item", name).Msg("item sin stock, no se puede retirar")
		return domain.ErrItemNotInStock
	}
	total := current - qty
	uc.log.Info().Str("item", name).Int("qty", qty).Int("total", total).Msg("stock retirado")
	if total <= 0 {
		uc.table.Delete(name)
		uc.log.Info().Str("item", name).Msg("item eliminado del stock (cantidad <= 0)")
		return nil
	}
	uc.table.Set(name, total)
	return nil
}

// Quantity devuelve la cantidad del item, o 0 si no existe o el nombre es inválido.
func (uc *StockUseCase) Quantity(item string) int {
	name, err := inventory.NormalizeItem(item)
	if err != nil {
		uc.log.Error().Err(err).Str("item", item).Msg("nombre de item inválido")
		return 0
	}
	q, _ := uc.table.Get(name)
	return q
}

// LowStock devuelve los items con cantidad <= threshold, en orden de la tabla.
// Con un umbral negativo el resultado siempre es vacío, ya que toda entrada es positiva.
func (uc *StockUseCase) LowStock(threshold int) []string {
	out := []string{}
	for _, e := range uc.table.Entries() {
		if e.Quantity <= threshold {
			out = append(out, e.Item)
		}
	}
	return out
}

// ApplyMovement registra un movimiento recibido como texto (ej. argumentos de CLI).
// Una cantidad no entera se rechaza con ErrInvalidQuantity sin modificar la tabla.
func (uc *StockUseCase) ApplyMovement(_ context.Context, in dto.StockMovementRequest) error {
	if _, err := inventory.NormalizeItem(in.Item); err != nil {
		uc.log.Error().Err(err).Str("item", in.Item).Msg("nombre de item inválido")
		return err
	}
	qty, err := inventory.ParseQuantity(in.Quantity)
	if err != nil {
		uc.log.Error().Err(err).Str("item", in.Item).Str("raw_qty", in.Quantity).Msg("cantidad inválida")
		return err
	}
	switch in.Type {
	case dto.MovementTypeAdd:
		return uc.Add(in.Item, qty)
	case dto.MovementTypeRemove:
		return uc.Remove(in.Item, qty)
	}
	uc.log.Error().Str("type", in.Type).Msg("tipo de movimiento desconocido")
	return domain.ErrInvalidInput
}

// Snapshot copia de las entradas actuales en orden.
func (uc *StockUseCase) Snapshot() []entity.StockEntry {
	return uc.table.Entries()
}

// Report construye el reporte estructurado de la tabla.
func (uc *StockUseCase) Report() dto.StockReportDTO {
	entries := uc.table.Entries()
	report := dto.StockReportDTO{
		GeneratedAt: time.Now(),
		Lines:       make([]dto.StockLineDTO, 0, len(entries)),
		ItemCount:   len(entries),
	}
	for _, e := range entries {
		report.Lines = append(report.Lines, dto.StockLineDTO{Item: e.Item, Quantity: e.Quantity})
		report.TotalUnits += e.Quantity
	}
	return report
}

// ExportReportPDF genera el reporte en PDF con el generador configurado.
func (uc *StockUseCase) ExportReportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrReportUnavailable
	}
	doc, err := uc.pdf.GenerateStockReportPDF(ctx, uc.Report())
	if err != nil {
		uc.log.Error().Err(err).Msg("no se pudo generar el reporte PDF")
		return nil, err
	}
	return doc, nil
}

// Load reemplaza la tabla con el contenido del repositorio. Ante cualquier falla la tabla queda vacía
// y el error se registra; se devuelve solo para que el llamador pueda inspeccionarlo.
func (uc *StockUseCase) Load(ctx context.Context) error {
	path := uc.repo.Location()
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		uc.table = entity.NewStockTable()
		switch {
		case errors.Is(err, domain.ErrStorageNotFound):
			uc.log.Warn().Str("path", path).Msg("archivo no encontrado, se inicia con stock vacío")
		case errors.Is(err, domain.ErrMalformedData):
			uc.log.Error().Err(err).Str("path", path).Msg("contenido JSON inválido, se inicia con stock vacío")
		default:
			uc.log.Error().Err(err).Str("path", path).Msg("error al cargar el inventario, se inicia con stock vacío")
		}
		return err
	}

	table := entity.NewStockTable()
	for _, e := range entries {
		name, err := inventory.NormalizeItem(e.Item)
		if err != nil {
			uc.log.Warn().Str("path", path).Str("item", e.Item).Msg("item con nombre inválido ignorado al cargar")
			continue
		}
		if e.Quantity <= 0 {
			uc.log.Warn().Str("path", path).Str("item", name).Int("qty", e.Quantity).Msg("item sin stock positivo ignorado al cargar")
			continue
		}
		// Dos claves del archivo que solo difieren en la forma Unicode son el mismo item: gana la última.
		if prev, dup := table.Get(name); dup {
			uc.log.Warn().Str("path", path).Str("item", name).Int("previous", prev).Int("qty", e.Quantity).
				Msg("claves equivalentes en forma NFC, se conserva la última")
		}
		uc.log.Trace().Str("path", path).Str("item", name).Int("qty", e.Quantity).Msg("item cargado")
		table.Set(name, e.Quantity)
	}
	uc.table = table
	uc.log.Info().Str("path", path).Int("items", table.Len()).Msg("inventario cargado")
	return nil
}

// Save persiste la tabla completa. Una falla se registra y se devuelve; la tabla en memoria no cambia.
func (uc *StockUseCase) Save(ctx context.Context) error {
	path := uc.repo.Location()
	if err := uc.repo.Save(ctx, uc.table.Entries()); err != nil {
		uc.log.Error().Err(err).Str("path", path).Msg("no se pudo guardar el inventario")
		return err
	}
	uc.log.Info().Str("path", path).Int("items", uc.table.Len()).Msg("inventario guardado")
	return nil
}
