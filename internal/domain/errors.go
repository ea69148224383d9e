package domain

import "errors"

// Errores sentinela del dominio. Se comparan con errors.Is en los bordes.
var (
	// ErrInvalidVector indica un payload de respuestas malformado (fallo del cliente).
	ErrInvalidVector = errors.New("invalid response vector")

	// ErrNotFound indica que no hay datos persistidos para el email consultado.
	ErrNotFound = errors.New("not found")

	// ErrInference indica un fallo interno del clasificador (fallo del servidor).
	ErrInference = errors.New("inference failed")

	// ErrUnknownCategory indica una categoria fuera de la tabla de interpretacion.
	ErrUnknownCategory = errors.New("unknown personality category")
)
