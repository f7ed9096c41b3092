package inventory

import (
	"fmt"
	"io"
	"strings"
)

const (
	reportTitle  = "--- Reporte de inventario ---"
	reportFooter = "------------------------------"
	reportEmpty  = "  El stock está vacío."
)

// FormatReport devuelve el listado legible de todos los items, o el aviso de stock vacío.
func (uc *StockUseCase) FormatReport() string {
	var b strings.Builder
	b.WriteString("\n" + reportTitle + "\n")
	report := uc.Report()
	if report.Empty() {
		b.WriteString(reportEmpty + "\n")
	}
	for _, l := range report.Lines {
		fmt.Fprintf(&b, "  %s: %d\n", l.Item, l.Quantity)
	}
	b.WriteString(reportFooter + "\n\n")
	return b.String()
}

// PrintReport escribe FormatReport en w (normalmente stdout).
func (uc *StockUseCase) PrintReport(w io.Writer) error {
	_, err := io.WriteString(w, uc.FormatReport())
	return err
}
