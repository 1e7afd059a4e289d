package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNothingToUpdate = errors.New("no hay campos para actualizar")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")

	// Reposición de repuestos
	ErrDeliveredOrder = errors.New("no se puede eliminar un pedido entregado")
	ErrPartReferenced = errors.New("el repuesto tiene pedidos asociados")
	ErrUnknownPart    = errors.New("repuesto no encontrado")
)
