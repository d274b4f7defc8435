package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnsupportedType  = errors.New("tipo de registro no soportado")
	ErrUnknownField     = errors.New("campo desconocido")
	ErrMissingCustomer  = errors.New("la transacción no tiene cliente asociado")
	ErrCRMURLNotDefined = errors.New("URL base del CRM no configurada")
)
