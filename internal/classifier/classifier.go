package classifier

import (
	"fmt"

	"mindful-ai/internal/domain"
)

// Classifier mapea un vector de features a una categoria de personalidad.
type Classifier interface {
	Predict(features []float32) (int, error)
}

// LinearClassifier es un clasificador multiclase lineal: una fila de pesos
// e intercepto por categoria, prediccion por argmax del score. Los
// coeficientes se exportan del modelo entrenado y se cargan desde archivo.
type LinearClassifier struct {
	classes []classWeights
}

type classWeights struct {
	intercept float64
	weights   []float64
}

// Predict devuelve la categoria con mayor score para el vector dado.
// Es una funcion pura y determinista; ante empate gana el indice menor.
func (c *LinearClassifier) Predict(features []float32) (int, error) {
	if len(c.classes) == 0 {
		return 0, fmt.Errorf("%w: classifier has no classes loaded", domain.ErrInference)
	}
	if len(features) != len(c.classes[0].weights) {
		return 0, fmt.Errorf("%w: feature vector has %d entries, model expects %d",
			domain.ErrInference, len(features), len(c.classes[0].weights))
	}

	best := 0
	bestScore := c.score(0, features)
	for i := 1; i < len(c.classes); i++ {
		if s := c.score(i, features); s > bestScore {
			best = i
			bestScore = s
		}
	}
	return best, nil
}

func (c *LinearClassifier) score(class int, features []float32) float64 {
	s := c.classes[class].intercept
	for i, w := range c.classes[class].weights {
		s += w * float64(features[i])
	}
	return s
}
