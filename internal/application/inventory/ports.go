package inventory

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
)

// ReportPDFGenerator genera la representación PDF del reporte de stock.
type ReportPDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, report dto.StockReportDTO) ([]byte, error)
}
