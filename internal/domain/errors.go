package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidItem       = errors.New("nombre de item inválido: debe ser texto no vacío")
	ErrInvalidQuantity   = errors.New("cantidad inválida: debe ser un entero")
	ErrNegativeQuantity  = errors.New("cantidad negativa no permitida")
	ErrItemNotInStock    = errors.New("item sin stock")
	ErrStorageNotFound   = errors.New("archivo de inventario no encontrado")
	ErrMalformedData     = errors.New("contenido de inventario malformado")
	ErrReportUnavailable = errors.New("generador de reporte no configurado")
)
