package dto

import "time"

// Tipos de movimiento aceptados por StockMovementRequest.
const (
	MovementTypeAdd    = "add"
	MovementTypeRemove = "remove"
)

// StockMovementRequest entrada sin tipar (argumentos de CLI) para registrar un movimiento.
// Quantity se recibe como texto y se valida como entero en el caso de uso.
type StockMovementRequest struct {
	Type     string `json:"type"`
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
}

// StockLineDTO una línea del reporte de stock.
type StockLineDTO struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// StockReportDTO reporte completo de la tabla de stock, en orden de inserción.
type StockReportDTO struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Lines       []StockLineDTO `json:"lines"`
	ItemCount   int            `json:"item_count"`
	TotalUnits  int            `json:"total_units"`
}

// Empty indica si el reporte no tiene items.
func (r StockReportDTO) Empty() bool { return len(r.Lines) == 0 }
