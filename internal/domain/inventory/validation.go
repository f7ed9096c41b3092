package inventory

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventario-stock/internal/domain"
)

// DefaultLowStockThreshold umbral por defecto del listado de stock bajo.
const DefaultLowStockThreshold = 5

// NormalizeItem valida un nombre de item y lo lleva a forma NFC, para que "café" compuesto y
// descompuesto sean el mismo item. Solo "" y el UTF-8 inválido se rechazan; los espacios son parte del nombre.
func NormalizeItem(raw string) (string, error) {
	if raw == "" || !utf8.ValidString(raw) {
		return "", domain.ErrInvalidItem
	}
	return norm.NFC.String(raw), nil
}

// ParseQuantity interpreta una cantidad recibida como texto (CLI, archivos).
// Solo acepta literales enteros: "ten", "2.5" y "2.0" devuelven ErrInvalidQuantity.
// El signo no se valida aquí; las cantidades negativas las rechaza el caso de uso.
func ParseQuantity(raw string) (int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ErrInvalidQuantity
	}
	return quantityFromDecimal(d)
}

func quantityFromDecimal(d decimal.Decimal) (int, error) {
	if d.Exponent() < 0 || !d.IsInteger() {
		return 0, domain.ErrInvalidQuantity
	}
	n := d.IntPart()
	// IntPart desborda en silencio fuera de int64
	if !decimal.NewFromInt(n).Equal(d) || int64(int(n)) != n {
		return 0, domain.ErrInvalidQuantity
	}
	return int(n), nil
}
