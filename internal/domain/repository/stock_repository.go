package repository

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// StockRepository define el puerto de persistencia de la tabla de stock completa.
// Load devuelve las entradas en el orden en que están almacenadas, sin filtrar cantidades;
// domain.ErrStorageNotFound si no hay datos previos y domain.ErrMalformedData si el contenido
// no se puede interpretar.
type StockRepository interface {
	Load(ctx context.Context) ([]entity.StockEntry, error)
	Save(ctx context.Context, entries []entity.StockEntry) error
	// Location describe dónde se persiste (ruta de archivo) para los logs.
	Location() string
}
