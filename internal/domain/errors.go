package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrNotConfirmed  = errors.New("la cuenta no ha sido confirmada")
	ErrWrongPassword = errors.New("password incorrecto")
	ErrSelfDelete    = errors.New("no puedes eliminar tu propio usuario")

	// ErrDuplicateFolio se distingue de ErrDuplicate: el caller puede regenerar el folio y reintentar.
	ErrDuplicateFolio = errors.New("folio duplicado")
	// ErrFolioExhausted indica que el consecutivo de 5 dígitos del prefijo área+año se agotó.
	ErrFolioExhausted = errors.New("consecutivo de folio agotado")
)
