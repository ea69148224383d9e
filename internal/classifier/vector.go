package classifier

import (
	"fmt"

	"mindful-ai/internal/domain"
)

// FeatureCount es el largo fijo del vector de respuestas del cuestionario.
const FeatureCount = 50

// ParseVector valida el payload crudo y lo convierte en el vector numerico
// que espera el clasificador. El orden de las posiciones se preserva: es el
// orden de features con el que fue entrenado el modelo.
func ParseVector(raw string) ([]float32, error) {
	if len(raw) != FeatureCount {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", domain.ErrInvalidVector, FeatureCount, len(raw))
	}

	features := make([]float32, FeatureCount)
	for i := 0; i < FeatureCount; i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: non-digit character %q at position %d", domain.ErrInvalidVector, c, i)
		}
		features[i] = float32(c - '0')
	}
	return features, nil
}
